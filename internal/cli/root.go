package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Point-of-sale record keeper",
	Long:  "pos keeps products, tellers and sale transactions in fixed-size binary table files",
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "pos.yml", "Path to the configuration file")
}
