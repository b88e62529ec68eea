package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	catalogrender "github.com/bnema/agenthub-cli/internal/adapters/render/catalog"
	tomlrepo "github.com/bnema/agenthub-cli/internal/adapters/repo/toml"
	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAgentsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Browse the AgentHub catalog",
	}

	cmd.AddCommand(
		newAgentsListCmd(app),
		newAgentsShowCmd(app),
		newAgentsCategoriesCmd(app),
		newAgentsExportCmd(app),
	)

	return cmd
}

func newAgentsListCmd(app *app) *cobra.Command {
	var search string
	var category string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents, optionally filtered by search term and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := app.catalog.Search(cmd.Context(), search, category)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, page.Agents)
			}

			rendered, err := app.listRenderer(page)
			if err != nil {
				return fmt.Errorf("render agents: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match name, short description or tags (case-insensitive)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only agents of this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAgentsShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one agent with its use cases, tech stack and related agents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asHTML {
				return errors.New("--json and --html are mutually exclusive")
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid agent id %q", args[0])
			}

			detail, err := app.catalog.Agent(cmd.Context(), domain.AgentID(id))
			if err != nil {
				return fmt.Errorf("agent %d: %w", id, err)
			}

			var rendered string
			switch {
			case asJSON:
				return writeJSON(cmd, detail)
			case asHTML:
				rendered, err = catalogrender.RenderDetailHTML(detail)
			default:
				rendered, err = catalogrender.RenderDetail(detail)
			}
			if err != nil {
				return fmt.Errorf("render agent: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render an HTML fragment")

	return cmd
}

func newAgentsCategoriesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with their agent counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := app.catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, counts)
			}

			rendered, err := catalogrender.RenderCategories(counts)
			if err != nil {
				return fmt.Errorf("render categories: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAgentsExportCmd(app *app) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current catalog to a TOML file that ah can load",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = app.cfg.Catalog.Path
			}
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				}
			}

			page, err := app.catalog.Search(cmd.Context(), "", "")
			if err != nil {
				return err
			}
			counts, err := app.catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}
			categories := make([]string, 0, len(counts))
			for _, count := range counts {
				categories = append(categories, count.Category)
			}

			if err := tomlrepo.WriteCatalog(cmd.Context(), output, page.Agents, categories); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d agents (%s catalog) to %s\n", len(page.Agents), app.catalogRepo.Source(), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (defaults to catalog.path)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
