package mirror

import (
	"testing"

	"github.com/pankajredekar/pos/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	// Every pooled connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func snapshot() Snapshot {
	milk := model.Product{ID: 1, Name: "Fresh Milk", Unit: "piece", UnitPrice: 89.75}
	rice := model.Product{ID: 2, Name: "Rice", Unit: "kilo", UnitPrice: 52.5}
	return Snapshot{
		Products: []model.Product{milk, rice},
		Tellers:  []model.Teller{{ID: 1, FirstName: "Anna", LastName: "Reyes"}},
		Sales: []model.SaleLine{
			{ID: 1, Product: milk, Quantity: 2},
			{ID: 2, Product: rice, Quantity: 5},
		},
	}
}

func TestInitialize(t *testing.T) {
	db := setupTestDB(t)
	m := New(db)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for _, table := range []string{"products", "tellers", "sale_lines", DefaultLogTable} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Table %s should exist", table)
		}
	}
}

func TestSync(t *testing.T) {
	db := setupTestDB(t)
	m := New(db)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	runID, err := m.Sync(snapshot())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if runID == "" {
		t.Error("Sync should return a run id")
	}

	var products []ProductRow
	if err := db.Order("id").Find(&products).Error; err != nil {
		t.Fatalf("Failed to query products: %v", err)
	}
	if len(products) != 2 || products[1].Name != "Rice" {
		t.Errorf("Unexpected products %+v", products)
	}

	var sale SaleRow
	if err := db.First(&sale, 2).Error; err != nil {
		t.Fatalf("Failed to query sale: %v", err)
	}
	if sale.ProductName != "Rice" || sale.Quantity != 5 || sale.ProductID != 2 {
		t.Errorf("Unexpected sale row %+v", sale)
	}

	latest, err := m.Log().Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(latest) != 3 {
		t.Fatalf("Expected 3 sync records, got %d", len(latest))
	}
	if latest[2].Table != "sale_lines" || latest[2].Rows != 2 {
		t.Errorf("Unexpected sale_lines record %+v", latest[2])
	}
}

func TestSyncReplacesPreviousCopy(t *testing.T) {
	db := setupTestDB(t)
	m := New(db)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if _, err := m.Sync(snapshot()); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	snap := snapshot()
	snap.Products = snap.Products[:1]
	snap.Sales = nil
	secondRun, err := m.Sync(snap)
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	var count int64
	if err := db.Model(&ProductRow{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count products: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 product after resync, got %d", count)
	}
	if err := db.Model(&SaleRow{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count sales: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no sales after resync, got %d", count)
	}

	latest, err := m.Log().Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest[0].RunID != secondRun {
		t.Errorf("Expected latest run %s, got %s", secondRun, latest[0].RunID)
	}

	total, err := m.Log().Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 6 {
		t.Errorf("Expected 6 sync records, got %d", total)
	}
}

func TestLatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	log := NewSyncLog(db, "_test_sync_log")
	if err := log.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	latest, err := log.Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest != nil {
		t.Errorf("Expected no records, got %+v", latest)
	}
}

func TestConnectUnsupported(t *testing.T) {
	if _, err := Connect("mysql://localhost/pos"); err == nil {
		t.Error("Unsupported URL should error")
	}
}
