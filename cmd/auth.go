package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sessionrender "github.com/bnema/agenthub-cli/internal/adapters/render/session"
	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage your AgentHub session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthSignupCmd(app),
		newAuthLogoutCmd(app),
		newAuthStatusCmd(app),
		newAuthChangePasswordCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword(cmd, "Password: ", "password"); err != nil {
					return err
				}
			}

			manager, err := app.startSession(cmd, false)
			if err != nil {
				return err
			}

			var user domain.User
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				var loginErr error
				user, loginErr = manager.Login(ctx, domain.Credentials{Email: email, Password: password})
				return loginErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", userLabel(user))
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthSignupCmd(app *app) *cobra.Command {
	var request domain.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an AgentHub account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if request.Password == "" {
				var err error
				if request.Password, err = promptNewPassword(cmd, "Password: ", "password"); err != nil {
					return err
				}
			}

			manager, err := app.startSession(cmd, false)
			if err != nil {
				return err
			}

			var user domain.User
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", func(ctx context.Context) error {
				var signupErr error
				user, signupErr = manager.Signup(ctx, request)
				return signupErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Account created. Logged in as %s\n", userLabel(user))
			return err
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "Account password (prompted twice when omitted)")
	cmd.Flags().StringVar(&request.Username, "username", "", "Username (defaults to first and last name joined, lower-cased)")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&request.Company, "company", "", "Company")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := app.startSession(cmd, false)
			if err != nil {
				return err
			}

			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging out...", manager.Logout)
			if err != nil {
				return err
			}

			if state := manager.State(); state.Error != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: remote logout failed: %s\n", state.Error)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

type statusOutput struct {
	APIBaseURL    string                   `json:"api_base_url"`
	Authenticated bool                     `json:"authenticated"`
	User          *domain.User             `json:"user,omitempty"`
	VerifiedAt    *time.Time               `json:"verified_at,omitempty"`
	Token         *sessionrender.TokenInfo `json:"token,omitempty"`
	Error         string                   `json:"error,omitempty"`
}

func newAuthStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var refresh bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Verify the stored credential and show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := app.startSession(cmd, asJSON)
			if err != nil {
				return err
			}

			if refresh && manager.State().IsAuthenticated {
				refreshErr := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing profile...", func(ctx context.Context) error {
					_, err := manager.RefreshProfile(ctx)
					return err
				})
				if refreshErr != nil {
					app.logger.Debug("profile refresh failed", "error", refreshErr)
				}
			}

			state := manager.State()
			token, _ := app.credentials.Credential()

			if asJSON {
				return writeJSON(cmd, newStatusOutput(app.cfg.API.BaseURL, state, token))
			}

			rendered, err := app.sessionRenderer(sessionrender.View{
				State:   state,
				Token:   token,
				BaseURL: app.cfg.API.BaseURL,
			}, sessionrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-read the profile and report a rejected session instead of signing out silently")

	return cmd
}

func newStatusOutput(baseURL string, state application.SessionState, token string) statusOutput {
	out := statusOutput{
		APIBaseURL:    baseURL,
		Authenticated: state.IsAuthenticated,
		User:          state.User,
		Error:         state.Error,
	}
	if !state.VerifiedAt.IsZero() {
		verifiedAt := state.VerifiedAt
		out.VerifiedAt = &verifiedAt
	}
	if info, ok := sessionrender.InspectToken(token); ok && state.IsAuthenticated {
		out.Token = &info
	}

	return out
}

func newAuthChangePasswordCmd(app *app) *cobra.Command {
	var current string
	var next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the password of the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if current == "" {
				if current, err = promptPassword(cmd, "Current password: ", "current"); err != nil {
					return err
				}
			}
			if next == "" {
				if next, err = promptNewPassword(cmd, "New password: ", "new"); err != nil {
					return err
				}
			}

			manager, err := app.startSession(cmd, false)
			if err != nil {
				return err
			}

			var message string
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Changing password...", func(ctx context.Context) error {
				var changeErr error
				message, changeErr = manager.ChangePassword(ctx, current, next)
				return changeErr
			})
			if err != nil {
				return err
			}

			if message == "" {
				message = "Password changed"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password (prompted when omitted)")
	cmd.Flags().StringVar(&next, "new", "", "New password (prompted twice when omitted)")

	return cmd
}

func userLabel(user domain.User) string {
	switch {
	case user.Username != "" && user.Email != "":
		return fmt.Sprintf("%s (%s)", user.Username, user.Email)
	case user.Username != "":
		return user.Username
	default:
		return user.Email
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
