package cli

import (
	"errors"
	"strings"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/sale"
	"github.com/pankajredekar/pos/internal/utils"
)

func runSaleMenu(a *app, p *console.Prompter) error {
	for {
		p.Printf("\n=== SALE TRANSACTIONS ===\n")
		p.Printf("[1] New transaction\n[2] Display all\n[3] Search by product name\n[0] Back\n")
		k, err := p.Key("Choice: ")
		if err != nil {
			return err
		}

		var flowErr error
		switch k {
		case '1':
			flowErr = newTransaction(a, p)
		case '2':
			lines, err := a.sales.List()
			if err == nil {
				console.PrintSales(p.Out(), lines)
			}
			flowErr = err
		case '3':
			text, err := p.Line("Product name contains: ")
			if err != nil {
				return err
			}
			lines, err := a.sales.Search(text)
			if err == nil {
				console.PrintSales(p.Out(), lines)
			}
			flowErr = err
		case '0', 'q', 'Q':
			return nil
		default:
			utils.PrintWarning("Unknown choice %q", k)
			continue
		}
		if err := report(flowErr); err != nil {
			return err
		}
	}
}

// newTransaction collects line items until the user stops, then takes cash
// and records the batch.
func newTransaction(a *app, p *console.Prompter) error {
	batch, err := a.sales.Begin()
	if err != nil {
		return err
	}

	tellerName, err := askTeller(a, p)
	if err != nil {
		return err
	}

	for {
		line, err := askLine(a, p, batch)
		if err != nil {
			return err
		}
		p.Printf("Added %d x %s = %s\n", line.Quantity, line.Product.Name, sale.LineTotal(line).StringFixed(2))

		more, err := p.Confirm("Add another item?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	console.PrintSales(p.Out(), batch.Lines)
	p.Printf("Amount payable: %s %s\n", a.cfg.Currency, batch.Payable().StringFixed(2))

	var settlement sale.Settlement
	for {
		cash, err := p.Amount("Cash: ", model.RuleCashNumeric)
		if err == nil {
			settlement, err = batch.Settle(cash)
		}
		if model.RuleOf(err) != "" {
			utils.PrintError("%s", describe(err))
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	entry, err := a.sales.Commit(batch, settlement, tellerName)
	reportCommit(entry, err, a.cfg.Currency)
	if err != nil && !isReceiptError(err) {
		return err
	}
	return nil
}

// askTeller optionally resolves the teller for the receipt
func askTeller(a *app, p *console.Prompter) (string, error) {
	for {
		text, err := p.Line("Teller ID (blank to skip): ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", nil
		}
		id, err := console.ParseInt(text, model.RuleIDNumeric)
		if err == nil {
			var t model.Teller
			if t, err = a.tellers.FindByID(id); err == nil {
				return t.FullName(), nil
			}
		}
		if model.RuleOf(err) == "" && !errors.Is(err, model.ErrNotFound) {
			return "", err
		}
		utils.PrintWarning("%s", describe(err))
	}
}

// askLine re-prompts for the product until it exists and for the quantity
// until it is at least one.
func askLine(a *app, p *console.Prompter, batch *sale.Batch) (model.SaleLine, error) {
	var product model.Product
	for {
		id, err := askInt(p, "Product ID: ", model.RuleIDNumeric)
		if err != nil {
			return model.SaleLine{}, err
		}
		product, err = a.products.FindByID(id)
		if errors.Is(err, model.ErrNotFound) {
			utils.PrintWarning("No product with ID %d", id)
			continue
		}
		if err != nil {
			return model.SaleLine{}, err
		}
		break
	}
	console.PrintProducts(p.Out(), []model.Product{product})

	for {
		qty, err := askInt(p, "Quantity: ", model.RuleQuantityNumeric)
		if err != nil {
			return model.SaleLine{}, err
		}
		line, err := a.sales.AddItem(batch, product.ID, qty)
		if model.RuleOf(err) != "" {
			utils.PrintError("%s", describe(err))
			continue
		}
		return line, err
	}
}
