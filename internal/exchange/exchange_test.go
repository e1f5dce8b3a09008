package exchange

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pankajredekar/pos/internal/codec"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/repository"
	"github.com/pankajredekar/pos/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	products []model.Product
	tellers  []model.Teller
	sales    []model.SaleLine
	err      error
}

func (s fixedSource) Products() ([]model.Product, error) { return s.products, nil }
func (s fixedSource) Tellers() ([]model.Teller, error)   { return s.tellers, nil }
func (s fixedSource) Sales() ([]model.SaleLine, error)   { return s.sales, s.err }

type memoryAdder struct {
	products []model.Product
}

func (m *memoryAdder) Add(p model.Product) (model.Product, error) {
	if p.UnitPrice < 0 {
		return p, model.Invalid(model.RulePriceNonNegative, "negative")
	}
	p.ID = int32(len(m.products) + 1)
	m.products = append(m.products, p)
	return p, nil
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	milk := model.Product{ID: 1, Name: "Fresh Milk", Category: "dairy", Unit: "piece", UnitPrice: 89.75}
	src := fixedSource{
		products: []model.Product{milk},
		tellers:  []model.Teller{{ID: 1, FirstName: "Anna", LastName: "Reyes"}},
		sales:    []model.SaleLine{{ID: 1, Product: milk, Quantity: 2}},
	}

	require.NoError(t, ExportAll(context.Background(), src, dir))

	data, err := os.ReadFile(filepath.Join(dir, ProductsCSV))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,name,description,category,unit,unit_price"))
	assert.Contains(t, string(data), "Fresh Milk")

	data, err = os.ReadFile(filepath.Join(dir, SalesCSV))
	require.NoError(t, err)
	assert.Contains(t, string(data), "product_name")
	assert.Contains(t, string(data), "1,1,Fresh Milk,dairy,piece,89.75,2")

	data, err = os.ReadFile(filepath.Join(dir, TellersCSV))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Anna")
}

func TestExportAllPropagatesError(t *testing.T) {
	boom := errors.New("corrupt sale table")
	err := ExportAll(context.Background(), fixedSource{err: boom}, t.TempDir())
	assert.ErrorIs(t, err, boom)
}

func TestImportProducts(t *testing.T) {
	csv := `id,name,description,category,unit,unit_price
9,Rice,Jasmine,grains,kilo,52.5
9,Broken,,,piece,-1
3,Soap,,hygiene,piece,25
`
	repo := &memoryAdder{}
	var skipped []int
	n, err := ImportProducts(strings.NewReader(csv), repo, func(row int, err error) {
		skipped = append(skipped, row)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{2}, skipped)
	require.Len(t, repo.products, 2)
	assert.Equal(t, int32(1), repo.products[0].ID)
	assert.Equal(t, "Soap", repo.products[1].Name)
}

func TestImportSkipsNonFinitePrices(t *testing.T) {
	csv := `id,name,description,category,unit,unit_price
1,Rice,,grains,kilo,NaN
2,Sugar,,baking,kilo,Inf
3,Soap,,hygiene,piece,25
`
	tbl := store.NewTable[model.Product](filepath.Join(t.TempDir(), "product_records.bin"), codec.ProductCodec{})
	require.NoError(t, tbl.Ensure())
	repo := repository.NewProductRepository(tbl)

	var rules []string
	n, err := ImportProducts(strings.NewReader(csv), repo, func(row int, err error) {
		rules = append(rules, model.RuleOf(err))
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{model.RulePriceNumeric, model.RulePriceNumeric}, rules)

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Soap", products[0].Name)
}
