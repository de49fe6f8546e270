package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/familycar/datastore/app/models"
)

// familycar order:list
var orderListCmd = &cobra.Command{
	Use:   "order:list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		orders, err := s.Orders()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSTATUS")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\n", o.ID, o.Date, o.Status)
		}
		return w.Flush()
	},
}

// familycar order:status <id> <status>
var orderStatusCmd = &cobra.Command{
	Use:   "order:status <id> <status>",
	Short: "Set an order's status (pending, paid, approved, ...)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		status := args[1]
		order, err := s.UpdateOrder(args[0], models.OrderPatch{Status: &status})
		if err != nil {
			return err
		}
		fmt.Printf("%s → %s\n", order.ID, order.Status)
		return nil
	},
}
