package repository

import (
	"math"
	"strings"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/store"
)

// ProductRepository manages the product table
type ProductRepository = Repository[model.Product, model.ProductPatch]

var productEntity = Entity[model.Product, model.ProductPatch]{
	Kind: "product",
	ID:   func(p model.Product) int32 { return p.ID },
	WithID: func(p model.Product, id int32) model.Product {
		p.ID = id
		return p
	},
	Fields: func(p model.Product) []string { return []string{p.Name} },
	Apply: func(p model.Product, patch model.ProductPatch) (model.Product, error) {
		p.Name = keep(p.Name, patch.Name)
		p.Description = keep(p.Description, patch.Description)
		p.Category = keep(p.Category, patch.Category)
		p.Unit = keep(p.Unit, patch.Unit)
		if patch.UnitPrice != nil {
			p.UnitPrice = *patch.UnitPrice
		}
		return p, nil
	},
	Normalize: func(p model.Product) model.Product {
		p.Name = strings.TrimSpace(p.Name)
		p.Description = strings.TrimSpace(p.Description)
		p.Category = strings.TrimSpace(p.Category)
		p.Unit = strings.TrimSpace(p.Unit)
		return p
	},
	Validate: validateProduct,
}

// NewProductRepository creates a product repository over table
func NewProductRepository(table *store.Table[model.Product]) *ProductRepository {
	return New(table, productEntity)
}

func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return model.Invalid(model.RuleRequired, "product name is required")
	}
	if f := float64(p.UnitPrice); math.IsNaN(f) || math.IsInf(f, 0) {
		return model.Invalid(model.RulePriceNumeric, "unit price %v is not a number", p.UnitPrice)
	}
	if p.UnitPrice < 0 {
		return model.Invalid(model.RulePriceNonNegative, "unit price %.2f is negative", p.UnitPrice)
	}
	return checkLength("product", map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"unit":        p.Unit,
	})
}
