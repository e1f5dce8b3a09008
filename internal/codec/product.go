package codec

import "github.com/pankajredekar/pos/internal/model"

const (
	productName        = 4
	productDescription = productName + model.MaxField
	productCategory    = productDescription + model.MaxField
	productUnit        = productCategory + model.MaxField
	productPrice       = productUnit + model.MaxField

	// ProductSize is the encoded size of a product record
	ProductSize = productPrice + 4
)

// ProductCodec encodes model.Product records
type ProductCodec struct{}

func (ProductCodec) Size() int { return ProductSize }

func (c ProductCodec) Encode(p model.Product) ([]byte, error) {
	buf := make([]byte, ProductSize)
	if err := c.put(buf, p); err != nil {
		return nil, err
	}
	return buf, nil
}

func (ProductCodec) put(buf []byte, p model.Product) error {
	putInt32(buf, 0, p.ID)
	fields := []struct {
		off        int
		name, text string
	}{
		{productName, "name", p.Name},
		{productDescription, "description", p.Description},
		{productCategory, "category", p.Category},
		{productUnit, "unit", p.Unit},
	}
	for _, f := range fields {
		if err := putString(buf, f.off, f.name, f.text); err != nil {
			return err
		}
	}
	putFloat32(buf, productPrice, p.UnitPrice)
	return nil
}

func (ProductCodec) Decode(b []byte) (model.Product, error) {
	if err := checkSize(b, ProductSize, "product"); err != nil {
		return model.Product{}, err
	}
	return model.Product{
		ID:          getInt32(b, 0),
		Name:        getString(b, productName),
		Description: getString(b, productDescription),
		Category:    getString(b, productCategory),
		Unit:        getString(b, productUnit),
		UnitPrice:   getFloat32(b, productPrice),
	}, nil
}
