package codec

import "github.com/pankajredekar/pos/internal/model"

const (
	saleProduct  = 4
	saleQuantity = saleProduct + ProductSize

	// SaleLineSize is the encoded size of a sale line record
	SaleLineSize = saleQuantity + 4
)

// SaleLineCodec encodes model.SaleLine records with the product snapshot
// embedded in place.
type SaleLineCodec struct{}

func (SaleLineCodec) Size() int { return SaleLineSize }

func (SaleLineCodec) Encode(l model.SaleLine) ([]byte, error) {
	buf := make([]byte, SaleLineSize)
	putInt32(buf, 0, l.ID)
	if err := (ProductCodec{}).put(buf[saleProduct:saleQuantity], l.Product); err != nil {
		return nil, err
	}
	putInt32(buf, saleQuantity, l.Quantity)
	return buf, nil
}

func (SaleLineCodec) Decode(b []byte) (model.SaleLine, error) {
	if err := checkSize(b, SaleLineSize, "sale line"); err != nil {
		return model.SaleLine{}, err
	}
	p, err := ProductCodec{}.Decode(b[saleProduct:saleQuantity])
	if err != nil {
		return model.SaleLine{}, err
	}
	return model.SaleLine{
		ID:       getInt32(b, 0),
		Product:  p,
		Quantity: getInt32(b, saleQuantity),
	}, nil
}
