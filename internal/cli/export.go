package cli

import (
	"github.com/pankajredekar/pos/internal/exchange"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export all tables to CSV",
	Long:  "Writes products.csv, tellers.csv and sales.csv into the given directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		if err := exchange.ExportAll(cmd.Context(), a, args[0]); err != nil {
			fail("Export failed: %s", describe(err))
		}
		utils.PrintSuccess("Exported tables to %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
