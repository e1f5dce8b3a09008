package cli

import (
	"errors"
	"io"
	"os"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		p := console.NewPrompter(os.Stdin, os.Stdout)
		if err := runMenu(a, p); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, console.ErrCancelled) {
			fail("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// outcome is how one menu flow ended
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeNotFound
	outcomeCancelled
	outcomeFailed
)

// errAborted is returned when the user declines a confirmation
var errAborted = errors.New("aborted")

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, model.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, errAborted), errors.Is(err, console.ErrCancelled):
		return outcomeCancelled
	}
	return outcomeFailed
}

// report prints the result of a flow. Input exhaustion is passed back so the
// menu loop can stop.
func report(err error) error {
	switch classify(err) {
	case outcomeNotFound:
		utils.PrintWarning("%s", describe(err))
	case outcomeCancelled:
		utils.PrintInfo("Cancelled")
	case outcomeFailed:
		if errors.Is(err, io.EOF) {
			return err
		}
		utils.PrintError("%s", describe(err))
	}
	return nil
}

func runMenu(a *app, p *console.Prompter) error {
	products := productMenu(a)
	tellers := tellerMenu(a)

	for {
		p.Printf("\n=== POINT OF SALE ===\n")
		p.Printf("[1] Products\n[2] Tellers\n[3] Sale transactions\n[0] Exit\n")
		k, err := p.Key("Choice: ")
		if err != nil {
			return err
		}
		switch k {
		case '1':
			err = products.run(p)
		case '2':
			err = tellers.run(p)
		case '3':
			err = runSaleMenu(a, p)
		case '0', 'q', 'Q':
			return nil
		default:
			utils.PrintWarning("Unknown choice %q", k)
		}
		if err != nil {
			return err
		}
	}
}
