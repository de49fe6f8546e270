package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/familycar/datastore/pkg/collection"
)

// familycar category:list
var categoryListCmd = &cobra.Command{
	Use:   "category:list",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		categories, err := s.Categories()
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%s\t%s\n", c.ID, c.Name)
		}
		return nil
	},
}

// familycar category:delete <id>
var categoryDeleteCmd = &cobra.Command{
	Use:   "category:delete <id>",
	Short: "Delete a category by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		removed, err := s.DeleteCategory(args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("no category with id %s\n", args[0])
			return nil
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

// familycar product:list
var productListCmd = &cobra.Command{
	Use:   "product:list",
	Short: "List catalog products",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		products, err := s.Products()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTATUS")
		for _, id := range collection.SortedKeys(products) {
			p := products[id]
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%s\n", id, p.Name, p.Category, p.Price, p.Status)
		}
		return w.Flush()
	},
}
