// Package receipt appends human-readable sale summaries to one text file per
// calendar day. The files are an audit trail and are never read back.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/sale"
)

// Suffix ends every receipt file name
const Suffix = "_sale_transaction.txt"

// Entry is one finalized sale batch
type Entry struct {
	Reference  uuid.UUID
	Time       time.Time
	Teller     string
	Lines      []model.SaleLine
	Settlement sale.Settlement
}

// Writer appends entries under Dir
type Writer struct {
	Dir      string
	Currency string
}

// NewWriter creates a writer for dir
func NewWriter(dir, currency string) *Writer {
	return &Writer{Dir: dir, Currency: currency}
}

// FileName returns the receipt file name for the day of t
func FileName(t time.Time) string {
	return t.Format("2006-01-02") + Suffix
}

// Path returns the receipt file path for the day of t
func (w *Writer) Path(t time.Time) string {
	return filepath.Join(w.Dir, FileName(t))
}

// Append writes e to the receipt file for e.Time's day
func (w *Writer) Append(e Entry) error {
	if e.Reference == uuid.Nil {
		e.Reference = uuid.New()
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create receipt directory: %w", err)
	}

	f, err := os.OpenFile(w.Path(e.Time), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open receipt file: %w", err)
	}
	if _, err := f.WriteString(w.Format(e)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return f.Close()
}

// Format renders e as text
func (w *Writer) Format(e Entry) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "Date: %s\n", e.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Reference: %s\n", e.Reference)
	if e.Teller != "" {
		fmt.Fprintf(&sb, "Teller: %s\n", e.Teller)
	}
	fmt.Fprintln(&sb, strings.Repeat("-", 60))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tUNIT\tPRICE\tQTY\tTOTAL")
	for _, l := range e.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			l.ID, l.Product.Name, l.Product.Unit,
			sale.Price(l.Product.UnitPrice).StringFixed(2), l.Quantity,
			sale.LineTotal(l).StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintln(&sb, strings.Repeat("-", 60))
	fmt.Fprintf(&sb, "Amount payable: %s %s\n", w.Currency, e.Settlement.Payable.StringFixed(2))
	fmt.Fprintf(&sb, "Cash:           %s %s\n", w.Currency, e.Settlement.Cash.StringFixed(2))
	fmt.Fprintf(&sb, "Change:         %s %s\n", w.Currency, e.Settlement.Change.StringFixed(2))
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb)
	return sb.String()
}
