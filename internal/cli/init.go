package cli

import (
	"os"
	"path/filepath"

	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a POS data directory",
	Long:  "Creates a pos.yml configuration file and empty table files in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
		} else {
			config := map[string]interface{}{
				"data_dir":     "./data",
				"product_file": "product_records.bin",
				"teller_file":  "teller_records.bin",
				"sale_file":    "sale_records.bin",
				"receipt_dir":  "./receipts",
				"currency":     "PHP",
				"database_url": "",
				"lock":         true,
			}

			data, err := yaml.Marshal(config)
			if err != nil {
				fail("Failed to generate config: %v", err)
			}

			if dir := filepath.Dir(configPath); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					fail("Failed to create config directory: %v", err)
				}
			}
			if err := os.WriteFile(configPath, data, 0644); err != nil {
				fail("Failed to write config file: %v", err)
			}
			utils.PrintInfo("Created %s", configPath)
		}

		a := mustLoadApp()
		if !utils.DirExists(a.cfg.ReceiptDir) {
			if err := os.MkdirAll(a.cfg.ReceiptDir, 0755); err != nil {
				fail("Failed to create receipts directory: %v", err)
			}
			utils.PrintInfo("Created %s", a.cfg.ReceiptDir)
		}

		utils.PrintSuccess("Initialized POS data")
		utils.PrintInfo("Tables in %s", a.cfg.DataDir)
		utils.PrintInfo("Receipts in %s", a.cfg.ReceiptDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
