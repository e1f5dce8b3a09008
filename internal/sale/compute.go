// Package sale computes sale totals and collects line items into batches.
package sale

import (
	"github.com/pankajredekar/pos/internal/model"
	"github.com/shopspring/decimal"
)

// Price converts a stored float32 unit price to a two-place decimal
func Price(p float32) decimal.Decimal {
	return decimal.NewFromFloat32(p).Round(2)
}

// LineTotal returns unit price times quantity
func LineTotal(l model.SaleLine) decimal.Decimal {
	return Price(l.Product.UnitPrice).Mul(decimal.NewFromInt32(l.Quantity))
}

// Payable sums the line totals of lines
func Payable(lines []model.SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l))
	}
	return total
}

// Change returns cash minus payable. Cash below payable is rejected.
func Change(payable, cash decimal.Decimal) (decimal.Decimal, error) {
	if cash.LessThan(payable) {
		return decimal.Zero, model.Invalid(model.RuleCashCoversPayable,
			"cash %s is less than amount payable %s", cash.StringFixed(2), payable.StringFixed(2))
	}
	return cash.Sub(payable), nil
}

// CheckQuantity rejects quantities below one
func CheckQuantity(qty int32) error {
	if qty < 1 {
		return model.Invalid(model.RuleQuantityPositive, "quantity must be at least 1, got %d", qty)
	}
	return nil
}
