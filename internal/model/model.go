package model

// MaxField is the byte capacity of every string field in a stored record,
// including the terminating zero byte.
const MaxField = 250

// Product is one row of the product table
type Product struct {
	ID          int32   `csv:"id"`
	Name        string  `csv:"name"`
	Description string  `csv:"description"`
	Category    string  `csv:"category"`
	Unit        string  `csv:"unit"`
	UnitPrice   float32 `csv:"unit_price"`
}

// Teller is one row of the teller table
type Teller struct {
	ID         int32  `csv:"id"`
	FirstName  string `csv:"first_name"`
	MiddleName string `csv:"middle_name"`
	LastName   string `csv:"last_name"`
}

// FullName joins the non-empty name parts
func (t Teller) FullName() string {
	name := t.FirstName
	for _, part := range []string{t.MiddleName, t.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// SaleLine is one line item of a sale. Product is a copy taken at the time
// of sale, so later product edits never change recorded sales.
type SaleLine struct {
	ID       int32
	Product  Product
	Quantity int32
}

// ProductPatch carries new field values for an update. Blank strings and a
// nil UnitPrice keep the stored value.
type ProductPatch struct {
	Name        string
	Description string
	Category    string
	Unit        string
	UnitPrice   *float32
}

// TellerPatch carries new name parts for an update. Blank parts keep the
// stored value.
type TellerPatch struct {
	FirstName  string
	MiddleName string
	LastName   string
}
