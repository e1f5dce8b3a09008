package sale

import (
	"github.com/pankajredekar/pos/internal/model"
	"github.com/shopspring/decimal"
)

// Batch is the set of line items entered in one sale session. Ids run
// sequentially from StartID.
type Batch struct {
	PriorCount int
	StartID    int32
	Lines      []model.SaleLine
}

// NewBatch starts a batch after priorCount existing rows, numbering lines
// from startID.
func NewBatch(priorCount int, startID int32) *Batch {
	return &Batch{PriorCount: priorCount, StartID: startID}
}

// Add appends a line for a copy of p
func (b *Batch) Add(p model.Product, qty int32) (model.SaleLine, error) {
	if err := CheckQuantity(qty); err != nil {
		return model.SaleLine{}, err
	}
	line := model.SaleLine{
		ID:       b.StartID + int32(len(b.Lines)),
		Product:  p,
		Quantity: qty,
	}
	b.Lines = append(b.Lines, line)
	return line, nil
}

// Empty reports whether no line has been added
func (b *Batch) Empty() bool {
	return len(b.Lines) == 0
}

// Payable sums this batch's lines only
func (b *Batch) Payable() decimal.Decimal {
	return Payable(b.Lines)
}

// Settlement is the money side of a finalized batch. It is never stored in
// the sale table.
type Settlement struct {
	Payable decimal.Decimal
	Cash    decimal.Decimal
	Change  decimal.Decimal
}

// Settle computes the change for cash tendered against the batch
func (b *Batch) Settle(cash decimal.Decimal) (Settlement, error) {
	payable := b.Payable()
	change, err := Change(payable, cash)
	if err != nil {
		return Settlement{}, err
	}
	return Settlement{Payable: payable, Cash: cash, Change: change}, nil
}
