// Package theme contains the appearance commands.
package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
)

var (
	primary    string
	background string
	foreground string
)

// Cmd is the theme command group.
var Cmd = &cobra.Command{
	Use:   "theme [light|dark|custom]",
	Short: "Show or set the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		themes := app.GetThemeStore()

		if len(args) == 1 {
			if err := themes.SetTheme(args[0]); err != nil {
				return fmt.Errorf("could not set theme: %w", err)
			}
		}
		if cmd.Flags().Changed("primary") || cmd.Flags().Changed("background") ||
			cmd.Flags().Changed("foreground") {
			colors := themes.Colors()
			if primary != "" {
				colors.Primary = primary
			}
			if background != "" {
				colors.Background = background
			}
			if foreground != "" {
				colors.Foreground = foreground
			}
			if err := themes.SetCustomColors(colors); err != nil {
				return fmt.Errorf("could not set colors: %w", err)
			}
		}

		colors := themes.Colors()
		fmt.Printf("Theme:      %s\n", themes.Theme())
		fmt.Printf("Primary:    %s\n", colors.Primary)
		fmt.Printf("Background: %s\n", colors.Background)
		fmt.Printf("Foreground: %s\n", colors.Foreground)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(&primary, "primary", "", "Primary color (HSL)")
	Cmd.Flags().StringVar(&background, "background", "", "Background color (HSL)")
	Cmd.Flags().StringVar(&foreground, "foreground", "", "Foreground color (HSL)")
}
