package cli

import (
	"os"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/exchange"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		p := productFromFlags(cmd)

		priceText, _ := cmd.Flags().GetString("price")
		price, err := console.ParsePrice(priceText)
		if err != nil {
			failErr(err)
		}
		if price == nil {
			fail("--price is required")
		}
		p.UnitPrice = *price

		stored, err := a.products.Add(p)
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Added product %d (%s)", stored.ID, stored.Name)
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all products",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		products, err := a.products.List()
		if err != nil {
			failErr(err)
		}
		console.PrintProducts(os.Stdout, products)
	},
}

var productFindCmd = &cobra.Command{
	Use:   "find <id>",
	Short: "Find a product by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		p, err := a.products.FindByID(parseID(args[0]))
		if err != nil {
			failErr(err)
		}
		console.PrintProducts(os.Stdout, []model.Product{p})
	},
}

var productSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search products by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		products, err := a.products.Search(args[0])
		if err != nil {
			failErr(err)
		}
		utils.PrintInfo("Found %d product(s)", len(products))
		console.PrintProducts(os.Stdout, products)
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Long:  "Updates a product in place. Omitted or blank flags keep the stored value.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		id := parseID(args[0])

		p := productFromFlags(cmd)
		patch := model.ProductPatch{Name: p.Name, Description: p.Description, Category: p.Category, Unit: p.Unit}
		priceText, _ := cmd.Flags().GetString("price")
		price, err := console.ParsePrice(priceText)
		if err != nil {
			failErr(err)
		}
		patch.UnitPrice = price

		var updated model.Product
		if among, _ := cmd.Flags().GetString("among"); among != "" {
			matches, serr := a.products.Search(among)
			if serr != nil {
				failErr(serr)
			}
			updated, err = a.products.UpdateAmong(matches, id, patch)
		} else {
			updated, err = a.products.Update(id, patch)
		}
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Updated product %d", updated.ID)
		console.PrintProducts(os.Stdout, []model.Product{updated})
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		id := parseID(args[0])

		var err error
		if among, _ := cmd.Flags().GetString("among"); among != "" {
			matches, serr := a.products.Search(among)
			if serr != nil {
				failErr(serr)
			}
			err = a.products.DeleteAmong(matches, id)
		} else {
			err = a.products.Delete(id)
		}
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Deleted product %d", id)
	},
}

var productImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import products from CSV",
	Long:  "Adds every product in a CSV file with columns id,name,description,category,unit,unit_price. Ids are reassigned.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		f, err := os.Open(args[0])
		if err != nil {
			fail("Failed to open %s: %v", args[0], err)
		}
		defer f.Close()

		n, err := exchange.ImportProducts(f, a.products, func(row int, err error) {
			utils.PrintWarning("Skipped row %d: %s", row, describe(err))
		})
		if err != nil {
			fail("Import stopped after %d product(s): %s", n, describe(err))
		}
		utils.PrintSuccess("Imported %d product(s)", n)
	},
}

func productFromFlags(cmd *cobra.Command) model.Product {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return model.Product{
		Name:        get("name"),
		Description: get("description"),
		Category:    get("category"),
		Unit:        get("unit"),
	}
}

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Product name")
	cmd.Flags().String("description", "", "Product description")
	cmd.Flags().String("category", "", "Product category, e.g. dairy")
	cmd.Flags().String("unit", "", "Selling unit, e.g. piece or kilo")
	cmd.Flags().String("price", "", "Unit price")
}

func init() {
	addProductFlags(productAddCmd)
	addProductFlags(productUpdateCmd)
	productUpdateCmd.Flags().String("among", "", "Only update the id if it matches this name search")
	productDeleteCmd.Flags().String("among", "", "Only delete the id if it matches this name search")

	productCmd.AddCommand(productAddCmd, productListCmd, productFindCmd, productSearchCmd,
		productUpdateCmd, productDeleteCmd, productImportCmd)
	rootCmd.AddCommand(productCmd)
}
