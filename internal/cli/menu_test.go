package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pankajredekar/pos/internal/config"
	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/receipt"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.ReceiptDir = filepath.Join(dir, "receipts")

	a, err := newApp(cfg)
	require.NoError(t, err)
	return a
}

// script feeds one answer per line to the menu
func script(lines ...string) *console.Prompter {
	return console.NewPrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), &bytes.Buffer{})
}

func silence(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := utils.Output
	utils.Output = &buf
	t.Cleanup(func() { utils.Output = old })
	return &buf
}

func TestNewAppCreatesTables(t *testing.T) {
	a := testApp(t)
	for _, path := range []string{a.cfg.ProductPath(), a.cfg.TellerPath(), a.cfg.SalePath()} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(0), info.Size())
	}
}

func TestMenuAddProductWithRetry(t *testing.T) {
	silence(t)
	a := testApp(t)

	p := script(
		"1", "1", // products, add
		"Fresh Milk", "1L carton", "dairy", "piece", "abc", "89.75",
		"0", "0",
	)
	require.NoError(t, runMenu(a, p))

	products, err := a.products.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, model.Product{ID: 1, Name: "Fresh Milk", Description: "1L carton", Category: "dairy", Unit: "piece", UnitPrice: 89.75}, products[0])
}

func TestMenuUpdateKeepsBlankFields(t *testing.T) {
	silence(t)
	a := testApp(t)
	_, err := a.products.Add(model.Product{Name: "Rice", Category: "grains", Unit: "kilo", UnitPrice: 50})
	require.NoError(t, err)

	p := script(
		"1", "4", // products, update
		"1", "1", // select by id 1
		"y",
		"", "Jasmine", "", "", "52.5",
		"0", "0",
	)
	require.NoError(t, runMenu(a, p))

	got, err := a.products.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Name)
	assert.Equal(t, "Jasmine", got.Description)
	assert.Equal(t, "grains", got.Category)
	assert.Equal(t, float32(52.5), got.UnitPrice)
}

func TestMenuDeleteByNameRestrictsToMatches(t *testing.T) {
	silence(t)
	a := testApp(t)
	for _, name := range []string{"Anna", "Ben", "Joanna"} {
		_, err := a.tellers.Add(model.Teller{FirstName: name})
		require.NoError(t, err)
	}

	p := script(
		"2", "5", // tellers, delete
		"2", "anna", // select by name: Anna and Joanna match
		"2", // Ben is not a match, re-prompted
		"3",
		"y",
		"0", "0",
	)
	require.NoError(t, runMenu(a, p))

	tellers, err := a.tellers.List()
	require.NoError(t, err)
	require.Len(t, tellers, 2)
	assert.Equal(t, "Anna", tellers[0].FirstName)
	assert.Equal(t, "Ben", tellers[1].FirstName)
}

func TestMenuDeleteDeclined(t *testing.T) {
	silence(t)
	a := testApp(t)
	_, err := a.tellers.Add(model.Teller{FirstName: "Anna"})
	require.NoError(t, err)

	p := script("2", "5", "1", "1", "n", "0", "0")
	require.NoError(t, runMenu(a, p))
	assert.Equal(t, 1, a.tellers.Table().Count())
}

func TestMenuNewTransaction(t *testing.T) {
	silence(t)
	a := testApp(t)
	_, err := a.products.Add(model.Product{Name: "A", Unit: "piece", UnitPrice: 10})
	require.NoError(t, err)
	_, err = a.products.Add(model.Product{Name: "B", Unit: "kilo", UnitPrice: 5.5})
	require.NoError(t, err)
	_, err = a.tellers.Add(model.Teller{FirstName: "Anna", LastName: "Reyes"})
	require.NoError(t, err)

	p := script(
		"3", "1", // sales, new transaction
		"1",      // teller
		"9", "1", // unknown product, then A
		"0", "2", // bad quantity, then 2
		"y",
		"2", "1",
		"n",
		"20", "30", // short cash, then enough
		"0", "0",
	)
	require.NoError(t, runMenu(a, p))

	lines, err := a.sales.List()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int32(2), lines[0].Quantity)
	assert.Equal(t, "B", lines[1].Product.Name)

	entries, err := os.ReadDir(a.cfg.ReceiptDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), receipt.Suffix))

	data, err := os.ReadFile(filepath.Join(a.cfg.ReceiptDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Amount payable: PHP 25.50")
	assert.Contains(t, string(data), "Change:         PHP 4.50")
	assert.Contains(t, string(data), "Teller: Anna Reyes")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	silence(t)
	a := testApp(t)
	err := runMenu(a, script("1"))
	assert.Error(t, err)
}

func TestParseItem(t *testing.T) {
	id, qty, err := parseItem("3:2")
	require.NoError(t, err)
	assert.Equal(t, int32(3), id)
	assert.Equal(t, int32(2), qty)

	_, _, err = parseItem("3")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, _, err = parseItem("3:0")
	assert.Equal(t, model.RuleQuantityPositive, model.RuleOf(err))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, outcomeSuccess, classify(nil))
	assert.Equal(t, outcomeNotFound, classify(model.ErrNotFound))
	assert.Equal(t, outcomeCancelled, classify(errAborted))
	assert.Equal(t, outcomeFailed, classify(model.ErrIO))
}

func TestInitCreatesLayout(t *testing.T) {
	silence(t)
	t.Setenv("POS_DATA_DIR", "")
	t.Setenv("POS_RECEIPT_DIR", "")

	dir := t.TempDir()
	old := configPath
	configPath = filepath.Join(dir, "pos.yml")
	t.Cleanup(func() { configPath = old })

	initCmd.Run(initCmd, nil)

	assert.True(t, utils.FileExists(configPath))
	assert.True(t, utils.DirExists(filepath.Join(dir, "receipts")))
	for _, name := range []string{"product_records.bin", "teller_records.bin", "sale_records.bin"} {
		assert.True(t, utils.FileExists(filepath.Join(dir, "data", name)), name)
	}
}
