// Package profile contains the user profile commands.
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
	"hwilson/finwat/internal/models"
)

var (
	name        string
	phone       string
	dateOfBirth string
)

// Cmd is the profile command group.
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update your profile",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed-in profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		sessions := app.GetSessionStore()
		user := sessions.User()
		if user == nil {
			return fmt.Errorf("not signed in")
		}

		fmt.Printf("Email:         %s\n", user.Email)
		fmt.Printf("Name:          %s\n", user.Name)
		fmt.Printf("Phone:         %s\n", user.Phone)
		fmt.Printf("Date of birth: %s\n", user.DateOfBirth)
		if user.PhotoURL != "" {
			fmt.Printf("Photo:         %s\n", user.PhotoURL)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}

		var changes models.ProfileUpdate
		if cmd.Flags().Changed("name") {
			changes.Name = &name
		}
		if cmd.Flags().Changed("phone") {
			changes.Phone = &phone
		}
		if cmd.Flags().Changed("birth-date") {
			changes.DateOfBirth = &dateOfBirth
		}

		sessions := app.GetSessionStore()
		if err := sessions.UpdateProfile(cmd.Context(), changes); err != nil {
			return fmt.Errorf("could not update profile: %s", sessions.Err())
		}
		fmt.Println("Profile updated")
		return nil
	},
}

var photoCmd = &cobra.Command{
	Use:   "photo <url>",
	Short: "Set the profile photo, stored on this device only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		sessions := app.GetSessionStore()
		if err := sessions.UpdateProfilePhoto(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("could not update photo: %s", sessions.Err())
		}
		fmt.Println("Photo updated")
		return nil
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password <old> <new>",
	Short: "Change your password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		sessions := app.GetSessionStore()
		if err := sessions.ChangePassword(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("could not change password: %s", sessions.Err())
		}
		fmt.Println("Password changed")
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	updateCmd.Flags().StringVarP(&phone, "phone", "p", "", "Phone number")
	updateCmd.Flags().StringVar(&dateOfBirth, "birth-date", "", "Date of birth (YYYY-MM-DD)")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(photoCmd)
	Cmd.AddCommand(passwordCmd)
}
