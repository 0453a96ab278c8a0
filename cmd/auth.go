package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = a.ask(cmd, "Email", "you@example.com"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.ask(cmd, "Password", ""); err != nil {
					return err
				}
			}
			user, err := a.session.Authenticate(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) registerCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = a.ask(cmd, "Email", "you@example.com"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.ask(cmd, "Password", ""); err != nil {
					return err
				}
			}
			if err := a.api.Register(cmd.Context(), email, password); err != nil {
				return err
			}
			user, err := a.session.Authenticate(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.Authenticated() {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Println(a.session.User().Email)
			return nil
		},
	}
}
