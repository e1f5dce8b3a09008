package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pankajredekar/pos/internal/store"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show table status",
	Long:  "Shows row counts and file sizes for every table and flags corrupt files",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()

		stats := make([]store.Stat, 0, 3)
		for _, stat := range []func() (store.Stat, error){
			a.products.Table().Stat,
			a.tellers.Table().Stat,
			a.sales.Table().Stat,
		} {
			st, err := stat()
			if err != nil {
				fail("Failed to inspect table: %v", err)
			}
			stats = append(stats, st)
		}

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("Table Status")
		fmt.Println(strings.Repeat("=", 60))

		corrupt := 0
		for _, st := range stats {
			fmt.Printf("\n%s\n", st.Path)
			fmt.Printf("  rows: %s  size: %s  record: %d bytes\n",
				humanize.Comma(int64(st.Rows)), humanize.Bytes(uint64(st.Bytes)), st.RecordSize)
			if st.Corrupt() {
				corrupt++
				utils.PrintWarning("  %d trailing bytes: file size is not a multiple of the record size", st.Trailing)
			}
		}
		fmt.Println()

		if corrupt > 0 {
			fail("%d corrupt table(s)", corrupt)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
