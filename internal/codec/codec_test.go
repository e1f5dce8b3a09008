package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/pankajredekar/pos/internal/model"
)

func TestSizes(t *testing.T) {
	if got := (ProductCodec{}).Size(); got != 1008 {
		t.Errorf("Expected product size 1008, got %d", got)
	}
	if got := (TellerCodec{}).Size(); got != 754 {
		t.Errorf("Expected teller size 754, got %d", got)
	}
	if got := (SaleLineCodec{}).Size(); got != 1016 {
		t.Errorf("Expected sale line size 1016, got %d", got)
	}
}

func TestProductRoundTrip(t *testing.T) {
	c := ProductCodec{}
	p := model.Product{ID: 7, Name: "Fresh Milk", Description: "1L carton", Category: "dairy", Unit: "piece", UnitPrice: 89.75}

	b, err := c.Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(b) != c.Size() {
		t.Fatalf("Expected %d bytes, got %d", c.Size(), len(b))
	}

	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != p {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestStringsAreZeroPadded(t *testing.T) {
	b, err := TellerCodec{}.Encode(model.Teller{ID: 1, FirstName: "Anna"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	field := b[tellerFirst : tellerFirst+model.MaxField]
	if string(field[:4]) != "Anna" {
		t.Errorf("Expected field to start with Anna, got %q", field[:4])
	}
	for i, c := range field[4:] {
		if c != 0 {
			t.Fatalf("Expected zero padding at byte %d, got %d", i+4, c)
		}
	}
}

func TestFieldLengthLimit(t *testing.T) {
	c := ProductCodec{}

	if _, err := c.Encode(model.Product{Name: strings.Repeat("x", model.MaxField-1)}); err != nil {
		t.Errorf("Name of %d bytes should fit: %v", model.MaxField-1, err)
	}

	_, err := c.Encode(model.Product{Name: strings.Repeat("x", model.MaxField)})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if model.RuleOf(err) != model.RuleFieldLength {
		t.Errorf("Expected rule %s, got %s", model.RuleFieldLength, model.RuleOf(err))
	}
}

func TestSaleLineEmbedsProduct(t *testing.T) {
	c := SaleLineCodec{}
	l := model.SaleLine{
		ID:       12,
		Product:  model.Product{ID: 3, Name: "Rice", Unit: "kilo", UnitPrice: 52.5},
		Quantity: 4,
	}

	b, err := c.Encode(l)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != l {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, l)
	}
}

func TestDecodeWrongSize(t *testing.T) {
	_, err := TellerCodec{}.Decode(make([]byte, 10))
	if !errors.Is(err, model.ErrIO) {
		t.Errorf("Expected ErrIO for short block, got %v", err)
	}
}
