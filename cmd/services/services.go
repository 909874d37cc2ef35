// Package services contains the financial services catalog commands.
package services

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
	"hwilson/finwat/internal/models"
)

var notes string

// Cmd is the services command group.
var Cmd = &cobra.Command{
	Use:   "services",
	Short: "Browse the service catalog and request services",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available financial services",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetServicesStore()
		if err := store.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("could not load services: %s", store.Err())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tSTATUS")
		for _, s := range store.Services() {
			price := "gratis"
			if s.Price != nil && !s.Price.IsZero() {
				price = s.Price.StringFixed(2) + " " + s.Currency
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Category, price, s.Status)
		}
		return w.Flush()
	},
}

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List your service requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		user := app.GetSessionStore().User()
		if user == nil {
			return fmt.Errorf("not signed in")
		}
		store := app.GetServicesStore()
		if err := store.FetchMyRequests(cmd.Context(), user.ID); err != nil {
			return fmt.Errorf("could not load requests: %s", store.Err())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSERVICE\tSTATUS\tREQUESTED")
		for _, r := range store.MyRequests() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.ID, r.ServiceID, r.Status, r.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var requestCmd = &cobra.Command{
	Use:   "request <service-id>",
	Short: "Request a service from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		user := app.GetSessionStore().User()
		if user == nil {
			return fmt.Errorf("not signed in")
		}
		store := app.GetServicesStore()
		payload := models.ServiceRequestPayload{ServiceID: args[0], UserID: user.ID, Notes: notes}
		if err := store.RequestService(cmd.Context(), payload); err != nil {
			return fmt.Errorf("could not request service: %s", store.Err())
		}
		fmt.Println("Service requested")
		return nil
	},
}

func init() {
	requestCmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the request")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(requestsCmd)
	Cmd.AddCommand(requestCmd)
}
