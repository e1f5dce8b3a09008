package mirror

import "github.com/pankajredekar/pos/internal/model"

// ProductRow mirrors model.Product
type ProductRow struct {
	ID          int32  `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"size:250;index"`
	Description string `gorm:"size:250"`
	Category    string `gorm:"size:250"`
	Unit        string `gorm:"size:250"`
	UnitPrice   float32
}

func (ProductRow) TableName() string { return "products" }

// TellerRow mirrors model.Teller
type TellerRow struct {
	ID         int32  `gorm:"primaryKey;autoIncrement:false"`
	FirstName  string `gorm:"size:250"`
	MiddleName string `gorm:"size:250"`
	LastName   string `gorm:"size:250"`
}

func (TellerRow) TableName() string { return "tellers" }

// SaleRow mirrors model.SaleLine with the product snapshot flattened
type SaleRow struct {
	ID          int32  `gorm:"primaryKey;autoIncrement:false"`
	ProductID   int32  `gorm:"index"`
	ProductName string `gorm:"size:250"`
	Category    string `gorm:"size:250"`
	Unit        string `gorm:"size:250"`
	UnitPrice   float32
	Quantity    int32
}

func (SaleRow) TableName() string { return "sale_lines" }

func productRows(ps []model.Product) []ProductRow {
	rows := make([]ProductRow, len(ps))
	for i, p := range ps {
		rows[i] = ProductRow{ID: p.ID, Name: p.Name, Description: p.Description, Category: p.Category, Unit: p.Unit, UnitPrice: p.UnitPrice}
	}
	return rows
}

func tellerRows(ts []model.Teller) []TellerRow {
	rows := make([]TellerRow, len(ts))
	for i, t := range ts {
		rows[i] = TellerRow{ID: t.ID, FirstName: t.FirstName, MiddleName: t.MiddleName, LastName: t.LastName}
	}
	return rows
}

func saleRows(ls []model.SaleLine) []SaleRow {
	rows := make([]SaleRow, len(ls))
	for i, l := range ls {
		rows[i] = SaleRow{
			ID:          l.ID,
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Category:    l.Product.Category,
			Unit:        l.Product.Unit,
			UnitPrice:   l.Product.UnitPrice,
			Quantity:    l.Quantity,
		}
	}
	return rows
}
