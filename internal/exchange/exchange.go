// Package exchange moves table contents to and from CSV files.
package exchange

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pankajredekar/pos/internal/model"
	"golang.org/x/sync/errgroup"
)

// CSV file names written by ExportAll
const (
	ProductsCSV = "products.csv"
	TellersCSV  = "tellers.csv"
	SalesCSV    = "sales.csv"
)

// SaleRow is the flattened CSV form of a sale line
type SaleRow struct {
	ID          int32   `csv:"id"`
	ProductID   int32   `csv:"product_id"`
	ProductName string  `csv:"product_name"`
	Category    string  `csv:"category"`
	Unit        string  `csv:"unit"`
	UnitPrice   float32 `csv:"unit_price"`
	Quantity    int32   `csv:"quantity"`
}

// Source supplies the rows to export
type Source interface {
	Products() ([]model.Product, error)
	Tellers() ([]model.Teller, error)
	Sales() ([]model.SaleLine, error)
}

// ExportAll writes one CSV file per table into dir. The three files are
// written concurrently; the first failure cancels the rest.
func ExportAll(ctx context.Context, src Source, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := src.Products()
		if err != nil {
			return err
		}
		return writeCSV(ctx, filepath.Join(dir, ProductsCSV), &rows)
	})
	g.Go(func() error {
		rows, err := src.Tellers()
		if err != nil {
			return err
		}
		return writeCSV(ctx, filepath.Join(dir, TellersCSV), &rows)
	})
	g.Go(func() error {
		lines, err := src.Sales()
		if err != nil {
			return err
		}
		rows := SaleRows(lines)
		return writeCSV(ctx, filepath.Join(dir, SalesCSV), &rows)
	})
	return g.Wait()
}

// SaleRows flattens sale lines for CSV
func SaleRows(lines []model.SaleLine) []SaleRow {
	rows := make([]SaleRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, SaleRow{
			ID:          l.ID,
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Category:    l.Product.Category,
			Unit:        l.Product.Unit,
			UnitPrice:   l.Product.UnitPrice,
			Quantity:    l.Quantity,
		})
	}
	return rows
}

func writeCSV(ctx context.Context, path string, rows interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ReadProducts parses products from CSV with the same columns ExportAll
// writes. Ids in the file are ignored by importers.
func ReadProducts(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := gocsv.Unmarshal(r, &products); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return products, nil
}

// Adder stores a new product and assigns its id
type Adder interface {
	Add(p model.Product) (model.Product, error)
}

// ImportProducts adds every product in r through repo. Rows that fail
// validation are reported through skip and do not stop the import.
func ImportProducts(r io.Reader, repo Adder, skip func(row int, err error)) (int, error) {
	products, err := ReadProducts(r)
	if err != nil {
		return 0, err
	}
	added := 0
	for i, p := range products {
		p.ID = 0
		if _, err := repo.Add(p); err != nil {
			if model.RuleOf(err) != "" {
				if skip != nil {
					skip(i+1, err)
				}
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
