package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/preciosa-app/backend/internal/handler"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(rootOpts, "")
			var sess handler.SessionResponse
			req := handler.RegisterRequest{Email: email, DisplayName: name, Password: password}
			if err := client.do(http.MethodPost, "/api/v1/auth/register", req, &sess); err != nil {
				return err
			}
			if err := saveSession(sessionFile{Token: sess.Token, Identity: sess.Identity, Email: sess.Email}); err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s\n", sess.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password, 8+ characters (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and cache the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(rootOpts, "")
			var sess handler.SessionResponse
			req := handler.LoginRequest{Email: email, Password: password}
			if err := client.do(http.MethodPost, "/api/v1/auth/login", req, &sess); err != nil {
				return err
			}
			if err := saveSession(sessionFile{Token: sess.Token, Identity: sess.Identity, Email: sess.Email}); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", sess.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clearSession(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
