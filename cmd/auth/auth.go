// Package auth contains the session commands: login, register, logout and
// whoami.
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
)

var (
	email    string
	password string
	name     string
	phone    string
)

// LoginCmd signs an existing user in.
var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		sessions := app.GetSessionStore()
		if err := sessions.Login(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("login failed: %s", sessions.Err())
		}
		user := sessions.User()
		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

// RegisterCmd creates a new user.
var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account with the session provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		sessions := app.GetSessionStore()
		if err := sessions.Register(cmd.Context(), name, email, phone, password); err != nil {
			return fmt.Errorf("registration failed: %s", sessions.Err())
		}
		if sessions.IsAuthenticated() {
			fmt.Printf("Registered and signed in as %s\n", email)
		} else {
			fmt.Printf("Registered %s; confirm your email, then run 'finwat login'\n", email)
		}
		return nil
	},
}

// LogoutCmd revokes the current session.
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		if err := app.GetSessionStore().Logout(cmd.Context()); err != nil {
			root.Log.Warnf("Provider sign-out failed (local session cleared anyway): %v", err)
		}
		fmt.Println("Signed out")
		return nil
	},
}

// WhoamiCmd prints the current user.
var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		user := app.GetSessionStore().User()
		if user == nil {
			fmt.Println("Not signed in")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	LoginCmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = LoginCmd.MarkFlagRequired("email")
	_ = LoginCmd.MarkFlagRequired("password")

	RegisterCmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	RegisterCmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	RegisterCmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	RegisterCmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = RegisterCmd.MarkFlagRequired("name")
	_ = RegisterCmd.MarkFlagRequired("email")
	_ = RegisterCmd.MarkFlagRequired("password")
}
