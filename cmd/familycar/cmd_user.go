package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/familycar/datastore/app/models"
)

// familycar user:list
var userListCmd = &cobra.Command{
	Use:   "user:list",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		users, err := s.Users()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tNAME\tROLE\tJOINED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Email, u.Name, u.Role, u.JoinedDate)
		}
		return w.Flush()
	},
}

// familycar user:create
var userCreateCmd = &cobra.Command{
	Use:   "user:create",
	Short: "Register a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		phone, _ := cmd.Flags().GetString("phone")

		user, err := s.CreateUser(models.User{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role,
			Phone:    phone,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

// familycar user:delete <email>
var userDeleteCmd = &cobra.Command{
	Use:   "user:delete <email>",
	Short: "Delete a user by email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		removed, err := s.DeleteUser(args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("no user with email %s\n", args[0])
			return nil
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

// familycar login <email> <password>
var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate and persist the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		user, err := s.Login(args[0], args[1])
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("invalid credentials")
		}
		fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

// familycar logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()
		return s.Logout()
	},
}

// familycar whoami
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, medium, err := openStore()
		if err != nil {
			return err
		}
		defer medium.Close()

		user, err := s.CurrentUser()
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().String("name", "", "display name")
	userCreateCmd.Flags().String("email", "", "email address (unique)")
	userCreateCmd.Flags().String("password", "", "password")
	userCreateCmd.Flags().String("role", "", "role (defaults to user)")
	userCreateCmd.Flags().String("phone", "", "phone number")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}
