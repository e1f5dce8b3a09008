package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/receipt"
	"github.com/pankajredekar/pos/internal/sale"
	"github.com/pankajredekar/pos/internal/store"
)

// ReceiptWriter appends a text receipt for a committed batch
type ReceiptWriter interface {
	Append(e receipt.Entry) error
}

// ProductFinder resolves product ids for line items
type ProductFinder interface {
	FindByID(id int32) (model.Product, error)
}

// ReceiptError reports a receipt that could not be written for a batch
// whose lines were stored. The sale stands.
type ReceiptError struct {
	Err error
}

func (e *ReceiptError) Error() string {
	return fmt.Sprintf("sale recorded but receipt not written: %v", e.Err)
}

func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// ErrBatchConflict is returned when sale rows were added after a batch began
var ErrBatchConflict = errors.New("sale table changed while the batch was open")

func saleLineID(l model.SaleLine) int32 { return l.ID }

func saleLineFields(l model.SaleLine) []string {
	return []string{l.Product.Name}
}

// SaleRepository records sale batches. Sale lines are only ever appended.
type SaleRepository struct {
	table    *store.Table[model.SaleLine]
	products ProductFinder
	receipts ReceiptWriter
	now      func() time.Time
}

// NewSaleRepository creates a sale repository. receipts may be nil to skip
// text receipts.
func NewSaleRepository(table *store.Table[model.SaleLine], products ProductFinder, receipts ReceiptWriter) *SaleRepository {
	return &SaleRepository{table: table, products: products, receipts: receipts, now: time.Now}
}

// Table returns the underlying table
func (r *SaleRepository) Table() *store.Table[model.SaleLine] {
	return r.table
}

// List returns every sale line in table order
func (r *SaleRepository) List() ([]model.SaleLine, error) {
	return r.table.ReadAll()
}

// FindByID returns the sale line with id, or ErrNotFound
func (r *SaleRepository) FindByID(id int32) (model.SaleLine, error) {
	lines, err := r.table.ReadAll()
	if err != nil {
		return model.SaleLine{}, err
	}
	return findByID(lines, id, saleLineID, "sale")
}

// Search returns sale lines whose product name contains text, ignoring case
func (r *SaleRepository) Search(text string) ([]model.SaleLine, error) {
	lines, err := r.table.ReadAll()
	if err != nil {
		return nil, err
	}
	return search(lines, text, saleLineFields), nil
}

// Begin opens a batch positioned after the current rows
func (r *SaleRepository) Begin() (*sale.Batch, error) {
	next, err := r.table.NextID(saleLineID)
	if err != nil {
		return nil, err
	}
	return sale.NewBatch(r.table.Count(), next), nil
}

// AddItem resolves productID and adds a line with a copy of the product.
// An unknown product yields ErrNotFound and leaves the batch unchanged.
func (r *SaleRepository) AddItem(b *sale.Batch, productID, qty int32) (model.SaleLine, error) {
	if err := sale.CheckQuantity(qty); err != nil {
		return model.SaleLine{}, err
	}
	p, err := r.products.FindByID(productID)
	if err != nil {
		return model.SaleLine{}, err
	}
	return b.Add(p, qty)
}

// Commit appends the batch's lines after the existing rows and then writes
// the text receipt. The settlement is recomputed from the cash tendered, so
// it always matches the batch. If the table write fails nothing else
// happens. If only the receipt fails a *ReceiptError is returned and the
// sale stays recorded.
func (r *SaleRepository) Commit(b *sale.Batch, s sale.Settlement, teller string) (receipt.Entry, error) {
	entry := receipt.Entry{
		Reference: uuid.New(),
		Time:      r.now(),
		Teller:    teller,
		Lines:     b.Lines,
	}
	if b.Empty() {
		return entry, model.Invalid(model.RuleRequired, "sale has no line items")
	}
	settled, err := b.Settle(s.Cash)
	if err != nil {
		return entry, err
	}
	entry.Settlement = settled

	err = r.table.Update(func(current []model.SaleLine) ([]model.SaleLine, error) {
		if len(current) != b.PriorCount || store.MaxID(current, saleLineID) >= b.StartID {
			return nil, ErrBatchConflict
		}
		return append(current, b.Lines...), nil
	})
	if err != nil {
		return entry, fmt.Errorf("failed to record sale: %w", err)
	}

	if r.receipts != nil {
		if err := r.receipts.Append(entry); err != nil {
			return entry, &ReceiptError{Err: err}
		}
	}
	return entry, nil
}
