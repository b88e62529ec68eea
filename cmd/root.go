package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp(defaultLogOutput())
	return buildRootCmd(app, err)
}

// buildRootCmd assembles the command tree around app. A wiring error turns
// every invocation into that error.
func buildRootCmd(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ah",
		Short:         "AgentHub CLI (ah): browse AI agents and manage your AgentHub session",
		Long:          "ah is a terminal client for AgentHub. Browse and search the agent catalog, sign up or log in against the AgentHub API, inspect your session and submit agent requests.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.teardown()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newAgentsCmd(app),
		newRequestCmd(app),
	)

	return rootCmd
}
