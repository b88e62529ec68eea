package catalog

import (
	"fmt"
	"strings"

	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderList renders a filtered catalog page.
func RenderList(page application.CatalogPage) (string, error) {
	return run(func(s styles) string { return listView(page, s) })
}

// RenderDetail renders one agent with its related agents.
func RenderDetail(detail application.AgentDetail) (string, error) {
	return run(func(s styles) string { return detailView(detail, s) })
}

func RenderCategories(counts []domain.CategoryCount) (string, error) {
	return run(func(s styles) string { return categoriesView(counts, s) })
}

func listView(page application.CatalogPage, s styles) string {
	lines := []string{
		s.title.Render("AgentHub Catalog"),
		s.header.Render(fmt.Sprintf("Showing %d of %d agents%s", len(page.Agents), page.Total, filterSuffix(page))),
	}

	if len(page.Agents) == 0 {
		lines = append(lines,
			s.section.Render(s.empty.Render("No agents found")),
			s.empty.Render("Try adjusting your search terms or filters"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, agent := range page.Agents {
		lines = append(lines, s.section.Render(agentSummary(agent, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func filterSuffix(page application.CatalogPage) string {
	var filters []string
	if page.Term != "" {
		filters = append(filters, fmt.Sprintf("search %q", page.Term))
	}
	if page.Category != "" {
		filters = append(filters, "category "+page.Category)
	}
	if len(filters) == 0 {
		return ""
	}
	return " (" + strings.Join(filters, ", ") + ")"
}

func agentSummary(agent domain.Agent, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(agent.Name),
		" ",
		s.id.Render(fmt.Sprintf("#%d", agent.ID)),
		" ",
		s.category.Render(agent.Category),
	)

	parts := []string{title, s.detail.Render(agent.ShortDescription)}
	if len(agent.Tags) > 0 {
		parts = append(parts, s.tag.Render("tags: "+strings.Join(agent.Tags, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func detailView(detail application.AgentDetail, s styles) string {
	agent := detail.Agent
	lines := []string{
		s.header.Render("Agents / " + agent.Category),
		lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(agent.Name), " ", s.id.Render(fmt.Sprintf("#%d", agent.ID))),
		s.category.Render(agent.Category),
		s.section.Render(s.detail.Render(agent.FullDescription)),
	}

	if len(agent.Tags) > 0 {
		lines = append(lines, s.tag.Render("tags: "+strings.Join(agent.Tags, ", ")))
	}

	lines = append(lines, listSection("Tech Stack", agent.TechStack, s), listSection("Use Cases", agent.UseCases, s))

	if agent.Video != "" {
		lines = append(lines, s.section.Render(s.heading.Render("Demo")), s.detail.Render(agent.Video))
	}

	if len(detail.Related) > 0 {
		related := []string{s.heading.Render("Related Agents")}
		for _, other := range detail.Related {
			related = append(related, fmt.Sprintf("%s %s %s", s.bullet.Render("-"), s.name.Render(other.Name), s.id.Render(fmt.Sprintf("#%d", other.ID))))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, related...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func listSection(title string, items []string, s styles) string {
	parts := []string{s.heading.Render(title)}
	if len(items) == 0 {
		parts = append(parts, s.empty.Render("none listed"))
	}
	for _, item := range items {
		parts = append(parts, s.bullet.Render("- ")+s.detail.Render(item))
	}

	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func categoriesView(counts []domain.CategoryCount, s styles) string {
	lines := []string{
		s.title.Render("AI Agent Categories"),
		s.header.Render(fmt.Sprintf("categories: %d", len(counts))),
	}

	if len(counts) == 0 {
		lines = append(lines, s.empty.Render("No categories available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, count := range counts {
		width = max(width, lipgloss.Width(count.Category))
	}

	rows := make([]string, 0, len(counts))
	for _, count := range counts {
		label := count.Category + strings.Repeat(" ", width-lipgloss.Width(count.Category))
		rows = append(rows, s.category.Render(label)+"  "+s.count.Render(agentCount(count.Count)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func agentCount(n int) string {
	if n == 1 {
		return "1 agent"
	}
	return fmt.Sprintf("%d agents", n)
}
