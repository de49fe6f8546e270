package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/familycar/datastore/config"
)

// familycar init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the admin account and default catalog data",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		if err := s.Init(); err != nil {
			return err
		}

		users, err := s.Users()
		if err != nil {
			return err
		}
		categories, err := s.Categories()
		if err != nil {
			return err
		}
		products, err := s.Products()
		if err != nil {
			return err
		}

		fmt.Printf("store ready on %q: %d users, %d categories, %d products\n",
			config.KVDriver(), len(users), len(categories), len(products))
		return nil
	},
}
