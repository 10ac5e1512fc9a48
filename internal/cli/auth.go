package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msommer/pickem/internal/session"
)

func newLoginCmd() *cobra.Command {
	var user, pass string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedIn, err := manager.Login(cmd.Context(), user, pass, remember)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Logged in as %s", loggedIn.Username))
			if !remember {
				out.PrintMessage("Session lasts for this process only; use --remember to persist")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().BoolVar(&remember, "remember", false, "Persist the session across invocations")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newSignupCmd() *cobra.Command {
	var user, email, pass, confirm string
	var remember bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := session.SignupProfile{
				Username:        user,
				Email:           email,
				Password:        pass,
				PasswordConfirm: confirm,
			}

			created, err := manager.Signup(cmd.Context(), profile, remember)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Signed up as %s", created.Username))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (required)")
	cmd.Flags().BoolVar(&remember, "remember", false, "Persist the session across invocations")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("confirm")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear all stored session data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := manager.Logout(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Request a password reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := manager.ResetPassword(cmd.Context(), email); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Password reset requested for %s", email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if manager.State() != session.StateAuthenticated {
				return fmt.Errorf("not logged in")
			}

			var result User
			if err := client.Get("/api/v1/users/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
