package cli

import (
	"github.com/pankajredekar/pos/internal/mirror"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror tables into a SQL database",
	Long:  "Replaces the contents of the products, tellers and sale_lines tables in a sqlite:// or postgres:// database with the current flat-file tables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()

		databaseURL, _ := cmd.Flags().GetString("database-url")
		if databaseURL == "" {
			databaseURL = a.cfg.DatabaseURL
		}
		if databaseURL == "" {
			fail("No database configured. Set database_url in %s or pass --database-url", configPath)
		}

		// Connect to database
		db, err := mirror.Connect(databaseURL)
		if err != nil {
			fail("Failed to connect to database: %v", err)
		}

		m := mirror.New(db)
		if err := m.Initialize(); err != nil {
			fail("Failed to initialize mirror tables: %v", err)
		}

		var snap mirror.Snapshot
		if snap.Products, err = a.products.List(); err != nil {
			failErr(err)
		}
		if snap.Tellers, err = a.tellers.List(); err != nil {
			failErr(err)
		}
		if snap.Sales, err = a.sales.List(); err != nil {
			failErr(err)
		}

		utils.PrintInfo("Mirroring %d product(s), %d teller(s), %d sale line(s)...",
			len(snap.Products), len(snap.Tellers), len(snap.Sales))

		runID, err := m.Sync(snap)
		if err != nil {
			fail("Failed to sync: %v", err)
		}

		utils.PrintSuccess("Sync %s complete", runID)
	},
}

func init() {
	syncCmd.Flags().String("database-url", "", "Override database_url from the config")
	rootCmd.AddCommand(syncCmd)
}
