package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRequestCmd(app *app) *cobra.Command {
	var request domain.AgentRequest

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request access to an agent or a custom solution",
		Long:  "Submit an agent request to AgentHub. --agent must name a catalog agent or \"Custom Solution\". Requires a logged-in session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			request.Agent = strings.TrimSpace(request.Agent)
			if err := app.catalog.ValidateRequestAgent(cmd.Context(), request.Agent); err != nil {
				if !errors.Is(err, domain.ErrAgentNotFound) {
					return err
				}
				names, listErr := app.catalog.RequestableAgents(cmd.Context())
				if listErr != nil {
					return err
				}
				return fmt.Errorf("unknown agent %q, choose one of: %s", request.Agent, strings.Join(names, ", "))
			}

			manager, err := app.startSession(cmd, false)
			if err != nil {
				return err
			}

			var receipt domain.AgentRequestReceipt
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Submitting request...", func(ctx context.Context) error {
				var requestErr error
				receipt, requestErr = manager.RequestAgent(ctx, request)
				return requestErr
			})
			if err != nil {
				return err
			}

			message := receipt.Message
			if message == "" {
				message = "Request submitted"
			}
			if receipt.RequestID != "" {
				message = fmt.Sprintf("%s (request id %s)", message, receipt.RequestID)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}

	cmd.Flags().StringVar(&request.FullName, "full-name", "", "Your full name")
	cmd.Flags().StringVar(&request.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&request.Company, "company", "", "Company (optional)")
	cmd.Flags().StringVar(&request.Agent, "agent", "", "Agent name or \"Custom Solution\"")
	cmd.Flags().StringVar(&request.Requirements, "requirements", "", "What you need the agent to do")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("agent")
	_ = cmd.MarkFlagRequired("requirements")

	return cmd
}
