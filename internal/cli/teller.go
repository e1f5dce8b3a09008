package cli

import (
	"os"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/utils"
	"github.com/spf13/cobra"
)

var tellerCmd = &cobra.Command{
	Use:   "teller",
	Short: "Manage tellers",
}

var tellerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a teller",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		t, err := a.tellers.Add(tellerFromFlags(cmd))
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Added teller %d (%s)", t.ID, t.FullName())
	},
}

var tellerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all tellers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		tellers, err := a.tellers.List()
		if err != nil {
			failErr(err)
		}
		console.PrintTellers(os.Stdout, tellers)
	},
}

var tellerFindCmd = &cobra.Command{
	Use:   "find <id>",
	Short: "Find a teller by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		t, err := a.tellers.FindByID(parseID(args[0]))
		if err != nil {
			failErr(err)
		}
		console.PrintTellers(os.Stdout, []model.Teller{t})
	},
}

var tellerSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search tellers by first, middle or last name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		tellers, err := a.tellers.Search(args[0])
		if err != nil {
			failErr(err)
		}
		utils.PrintInfo("Found %d teller(s)", len(tellers))
		console.PrintTellers(os.Stdout, tellers)
	},
}

var tellerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a teller",
	Long:  "Updates a teller in place. Omitted or blank flags keep the stored value.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		id := parseID(args[0])
		t := tellerFromFlags(cmd)
		patch := model.TellerPatch{FirstName: t.FirstName, MiddleName: t.MiddleName, LastName: t.LastName}

		var (
			updated model.Teller
			err     error
		)
		if among, _ := cmd.Flags().GetString("among"); among != "" {
			matches, serr := a.tellers.Search(among)
			if serr != nil {
				failErr(serr)
			}
			updated, err = a.tellers.UpdateAmong(matches, id, patch)
		} else {
			updated, err = a.tellers.Update(id, patch)
		}
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Updated teller %d", updated.ID)
		console.PrintTellers(os.Stdout, []model.Teller{updated})
	},
}

var tellerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a teller",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoadApp()
		id := parseID(args[0])

		var err error
		if among, _ := cmd.Flags().GetString("among"); among != "" {
			matches, serr := a.tellers.Search(among)
			if serr != nil {
				failErr(serr)
			}
			err = a.tellers.DeleteAmong(matches, id)
		} else {
			err = a.tellers.Delete(id)
		}
		if err != nil {
			failErr(err)
		}
		utils.PrintSuccess("Deleted teller %d", id)
	},
}

func tellerFromFlags(cmd *cobra.Command) model.Teller {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return model.Teller{FirstName: get("first"), MiddleName: get("middle"), LastName: get("last")}
}

func addTellerFlags(cmd *cobra.Command) {
	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("middle", "", "Middle name")
	cmd.Flags().String("last", "", "Last name")
}

func init() {
	addTellerFlags(tellerAddCmd)
	addTellerFlags(tellerUpdateCmd)
	tellerUpdateCmd.Flags().String("among", "", "Only update the id if it matches this name search")
	tellerDeleteCmd.Flags().String("among", "", "Only delete the id if it matches this name search")

	tellerCmd.AddCommand(tellerAddCmd, tellerListCmd, tellerFindCmd, tellerSearchCmd, tellerUpdateCmd, tellerDeleteCmd)
	rootCmd.AddCommand(tellerCmd)
}
