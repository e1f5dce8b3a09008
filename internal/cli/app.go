package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pankajredekar/pos/internal/codec"
	"github.com/pankajredekar/pos/internal/config"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/receipt"
	"github.com/pankajredekar/pos/internal/repository"
	"github.com/pankajredekar/pos/internal/store"
	"github.com/pankajredekar/pos/internal/utils"
)

// app wires the repositories for one command run
type app struct {
	cfg      *config.Config
	products *repository.ProductRepository
	tellers  *repository.TellerRepository
	sales    *repository.SaleRepository
}

func loadApp() (*app, error) {
	cfg := config.Default()
	if utils.FileExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		utils.PrintWarning("%s not found, using defaults. Run 'pos init' to create one", configPath)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return newApp(cfg)
}

// newApp opens the tables named by cfg, creating empty ones if absent
func newApp(cfg *config.Config) (*app, error) {
	opts := []store.Option{store.WithLocking(cfg.Locking())}
	productTable := store.NewTable[model.Product](cfg.ProductPath(), codec.ProductCodec{}, opts...)
	tellerTable := store.NewTable[model.Teller](cfg.TellerPath(), codec.TellerCodec{}, opts...)
	saleTable := store.NewTable[model.SaleLine](cfg.SalePath(), codec.SaleLineCodec{}, opts...)

	for _, ensure := range []func() error{productTable.Ensure, tellerTable.Ensure, saleTable.Ensure} {
		if err := ensure(); err != nil {
			return nil, err
		}
	}

	products := repository.NewProductRepository(productTable)
	return &app{
		cfg:      cfg,
		products: products,
		tellers:  repository.NewTellerRepository(tellerTable),
		sales:    repository.NewSaleRepository(saleTable, products, receipt.NewWriter(cfg.ReceiptDir, cfg.Currency)),
	}, nil
}

func mustLoadApp() *app {
	a, err := loadApp()
	if err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
	return a
}

// Products, Tellers and Sales make app an exchange.Source
func (a *app) Products() ([]model.Product, error) { return a.products.List() }
func (a *app) Tellers() ([]model.Teller, error)   { return a.tellers.List() }
func (a *app) Sales() ([]model.SaleLine, error)   { return a.sales.List() }

func fail(msg string, args ...interface{}) {
	utils.PrintError(msg, args...)
	os.Exit(1)
}

func failErr(err error) {
	fail("%s", describe(err))
}

func parseID(arg string) int32 {
	id, err := strconv.ParseInt(arg, 10, 32)
	if err != nil || id < 1 {
		fail("Invalid id: %s", arg)
	}
	return int32(id)
}

// describe turns a repository error into a one-line message
func describe(err error) string {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return fmt.Sprintf("Invalid input (%s): %s", ve.Rule, ve.Msg)
	case errors.Is(err, model.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	case errors.Is(err, model.ErrIO):
		return fmt.Sprintf("Storage failure: %v", err)
	}
	return err.Error()
}
