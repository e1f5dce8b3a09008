package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/sale"
	"github.com/pankajredekar/pos/internal/utils"
)

const column = 24

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintProducts renders products as an aligned table
func PrintProducts(w io.Writer, products []model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "(no products)")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tCATEGORY\tUNIT\tUNIT PRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID,
			utils.Clip(p.Name, column), utils.Clip(p.Description, column),
			utils.Clip(p.Category, column), p.Unit, sale.Price(p.UnitPrice).StringFixed(2))
	}
	tw.Flush()
}

// PrintTellers renders tellers as an aligned table
func PrintTellers(w io.Writer, tellers []model.Teller) {
	if len(tellers) == 0 {
		fmt.Fprintln(w, "(no tellers)")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tMIDDLE NAME\tLAST NAME")
	for _, t := range tellers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID,
			utils.Clip(t.FirstName, column), utils.Clip(t.MiddleName, column), utils.Clip(t.LastName, column))
	}
	tw.Flush()
}

// PrintSales renders sale lines as an aligned table
func PrintSales(w io.Writer, lines []model.SaleLine) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "(no sales)")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPRODUCT\tUNIT\tUNIT PRICE\tQTY\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", l.ID,
			utils.Clip(l.Product.Name, column), l.Product.Unit,
			sale.Price(l.Product.UnitPrice).StringFixed(2), l.Quantity,
			sale.LineTotal(l).StringFixed(2))
	}
	tw.Flush()
}
