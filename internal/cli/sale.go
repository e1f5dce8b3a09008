package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/receipt"
	"github.com/pankajredekar/pos/internal/repository"
	"github.com/pankajredekar/pos/internal/sale"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and review sale transactions",
}

var saleNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Record a sale",
	Long:  "Records one sale batch. Each --item is <product id>:<quantity>. Cash must cover the amount payable.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		items, _ := cmd.Flags().GetStringArray("item")
		if len(items) == 0 {
			fail("At least one --item is required")
		}

		batch, err := a.sales.Begin()
		if err != nil {
			failErr(err)
		}
		for _, item := range items {
			productID, qty, err := parseItem(item)
			if err != nil {
				failErr(err)
			}
			if _, err := a.sales.AddItem(batch, productID, qty); err != nil {
				failErr(err)
			}
		}

		cashText, _ := cmd.Flags().GetString("cash")
		cash, err := console.ParseAmount(cashText, model.RuleCashNumeric)
		if err != nil {
			failErr(err)
		}
		settlement, err := batch.Settle(cash)
		if err != nil {
			failErr(err)
		}

		tellerName := ""
		if tellerID, _ := cmd.Flags().GetInt32("teller"); tellerID != 0 {
			t, err := a.tellers.FindByID(tellerID)
			if err != nil {
				failErr(err)
			}
			tellerName = t.FullName()
		}

		entry, err := a.sales.Commit(batch, settlement, tellerName)
		reportCommit(entry, err, a.cfg.Currency)
		if err != nil && !isReceiptError(err) {
			os.Exit(1)
		}
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all sale lines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		lines, err := a.sales.List()
		if err != nil {
			failErr(err)
		}
		console.PrintSales(os.Stdout, lines)
		utils.PrintInfo("Total sales: %s %s", a.cfg.Currency, sale.Payable(lines).StringFixed(2))
	},
}

var saleFindCmd = &cobra.Command{
	Use:   "find <id>",
	Short: "Find a sale line by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		l, err := a.sales.FindByID(parseID(args[0]))
		if err != nil {
			failErr(err)
		}
		console.PrintSales(os.Stdout, []model.SaleLine{l})
	},
}

var saleSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search sale lines by product name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		lines, err := a.sales.Search(args[0])
		if err != nil {
			failErr(err)
		}
		utils.PrintInfo("Found %d sale line(s)", len(lines))
		console.PrintSales(os.Stdout, lines)
	},
}

// parseItem splits "<product id>:<quantity>"
func parseItem(item string) (int32, int32, error) {
	idText, qtyText, ok := strings.Cut(item, ":")
	if !ok {
		return 0, 0, model.Invalid(model.RuleQuantityNumeric, "item %q must be <product id>:<quantity>", item)
	}
	id, err := console.ParseInt(idText, model.RuleIDNumeric)
	if err != nil {
		return 0, 0, err
	}
	qty, err := console.ParseInt(qtyText, model.RuleQuantityNumeric)
	if err != nil {
		return 0, 0, err
	}
	return id, qty, sale.CheckQuantity(qty)
}

func isReceiptError(err error) bool {
	var re *repository.ReceiptError
	return errors.As(err, &re)
}

func reportCommit(entry receipt.Entry, err error, currency string) {
	if err != nil && !isReceiptError(err) {
		utils.PrintError("Sale not recorded: %s", describe(err))
		return
	}
	console.PrintSales(os.Stdout, entry.Lines)
	fmt.Println()
	utils.PrintInfo("Amount payable: %s %s", currency, entry.Settlement.Payable.StringFixed(2))
	utils.PrintInfo("Cash:           %s %s", currency, entry.Settlement.Cash.StringFixed(2))
	utils.PrintInfo("Change:         %s %s", currency, entry.Settlement.Change.StringFixed(2))
	utils.PrintSuccess("Recorded %d line item(s), reference %s", len(entry.Lines), entry.Reference)
	if err != nil {
		utils.PrintWarning("%v", err)
	}
}

func init() {
	saleNewCmd.Flags().StringArray("item", nil, "Line item as <product id>:<quantity> (repeatable)")
	saleNewCmd.Flags().String("cash", "", "Cash tendered")
	saleNewCmd.Flags().Int32("teller", 0, "Teller id printed on the receipt")
	_ = saleNewCmd.MarkFlagRequired("cash")

	saleCmd.AddCommand(saleNewCmd, saleListCmd, saleFindCmd, saleSearchCmd)
	rootCmd.AddCommand(saleCmd)
}
