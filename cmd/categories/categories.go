// Package categories contains the category customization commands.
package categories

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
	"hwilson/finwat/internal/models"
)

var iconKind string

// Cmd is the categories command group.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show and customize spending categories",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show every category with its icon and color",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetCategoryStore()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tICON\tKIND\tCOLOR")
		for _, name := range models.Categories() {
			cfg := store.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, cfg.Icon, cfg.Kind, cfg.Color)
		}
		return w.Flush()
	},
}

var setIconCmd = &cobra.Command{
	Use:   "set-icon <category> <icon>",
	Short: "Override the icon of a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetCategoryStore()
		if err := store.UpdateIcon(args[0], args[1], iconKind); err != nil {
			return fmt.Errorf("could not update icon: %w", err)
		}
		fmt.Println("Icon updated")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard custom icons and restore the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		if err := app.GetCategoryStore().Reset(); err != nil {
			return fmt.Errorf("could not reset categories: %w", err)
		}
		fmt.Println("Categories restored to defaults")
		return nil
	},
}

func init() {
	setIconCmd.Flags().StringVarP(&iconKind, "kind", "k", models.IconKindEmoji, "Icon kind (emoji or image)")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setIconCmd)
	Cmd.AddCommand(resetCmd)
}
