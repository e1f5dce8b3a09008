package mirror

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pankajredekar/pos/internal/model"
	"gorm.io/gorm"
)

// DefaultLogTable holds the sync history
const DefaultLogTable = "_pos_sync_log"

const batchSize = 200

// Snapshot is the full content of the three tables at one moment
type Snapshot struct {
	Products []model.Product
	Tellers  []model.Teller
	Sales    []model.SaleLine
}

// Mirror replaces the SQL copy of the tables with a snapshot
type Mirror struct {
	db  *gorm.DB
	log *SyncLog
	now func() time.Time
}

// New creates a mirror over db
func New(db *gorm.DB) *Mirror {
	return &Mirror{db: db, log: NewSyncLog(db, DefaultLogTable), now: time.Now}
}

// Log returns the sync log
func (m *Mirror) Log() *SyncLog {
	return m.log
}

// Initialize creates the mirror and sync log tables
func (m *Mirror) Initialize() error {
	if err := m.db.AutoMigrate(&ProductRow{}, &TellerRow{}, &SaleRow{}); err != nil {
		return fmt.Errorf("failed to create mirror tables: %w", err)
	}
	return m.log.Initialize()
}

// Sync replaces every mirrored table with snap in one transaction and
// returns the run id.
func (m *Mirror) Sync(snap Snapshot) (string, error) {
	runID := uuid.NewString()
	at := m.now()

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := replace(tx, &ProductRow{}, productRows(snap.Products)); err != nil {
			return err
		}
		if err := replace(tx, &TellerRow{}, tellerRows(snap.Tellers)); err != nil {
			return err
		}
		if err := replace(tx, &SaleRow{}, saleRows(snap.Sales)); err != nil {
			return err
		}

		counts := []struct {
			table string
			rows  int
		}{
			{"products", len(snap.Products)},
			{"tellers", len(snap.Tellers)},
			{"sale_lines", len(snap.Sales)},
		}
		for _, c := range counts {
			if err := m.log.Record(tx, runID, c.table, c.rows, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

func replace[R any](tx *gorm.DB, table interface{}, rows []R) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
		return fmt.Errorf("failed to clear mirror table: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
		return fmt.Errorf("failed to copy rows: %w", err)
	}
	return nil
}
