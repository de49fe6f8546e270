package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/familycar/datastore/app/store"
	"github.com/familycar/datastore/config"
	"github.com/familycar/datastore/pkg/kv"
	"github.com/familycar/datastore/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "familycar",
	Short: "FamilyCar datastore CLI",
	Long:  "Seed, inspect and manage a FamilyCar datastore over any configured key-value medium.",
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Users & session
	rootCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Catalog
	rootCmd.AddCommand(categoryListCmd)
	rootCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(productListCmd)

	// Orders
	rootCmd.AddCommand(orderListCmd)
	rootCmd.AddCommand(orderStatusCmd)
}

// openStore loads config and connects the configured medium.
// Callers must Close the returned medium.
func openStore() (*store.Store, kv.Medium, error) {
	if err := config.Load(); err != nil {
		return nil, nil, err
	}
	medium, err := kv.Open()
	if err != nil {
		return nil, nil, err
	}
	return store.New(medium, store.WithLogger(logger.L)), medium, nil
}
