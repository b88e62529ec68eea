package catalog

import (
	"testing"

	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visionDetail(t *testing.T) application.AgentDetail {
	t.Helper()

	agent, err := domain.FindAgent(domain.DefaultAgents(), 2)
	require.NoError(t, err)
	return application.AgentDetail{Agent: agent}
}

func TestRenderListShowsCountsAndAgents(t *testing.T) {
	agents := domain.FilterAgents(domain.DefaultAgents(), "vision", "")

	output, err := RenderList(application.CatalogPage{Agents: agents, Total: 8, Term: "vision"})
	require.NoError(t, err)
	assert.Contains(t, output, "AgentHub Catalog")
	assert.Contains(t, output, `Showing 1 of 8 agents (search "vision")`)
	assert.Contains(t, output, "VisionAI Scanner")
	assert.Contains(t, output, "#2")
	assert.Contains(t, output, "tags: Computer Vision, Object Detection, Image Analysis")
	assert.NotContains(t, output, "No agents found")
}

func TestRenderListEmptyState(t *testing.T) {
	output, err := RenderList(application.CatalogPage{Agents: []domain.Agent{}, Total: 8, Category: "NLP", Term: "zzz"})
	require.NoError(t, err)
	assert.Contains(t, output, `Showing 0 of 8 agents (search "zzz", category NLP)`)
	assert.Contains(t, output, "No agents found")
	assert.Contains(t, output, "Try adjusting your search terms or filters")
}

func TestRenderDetailSections(t *testing.T) {
	detail := visionDetail(t)
	detail.Related = []domain.Agent{{ID: 9, Name: "Other Vision", Category: detail.Agent.Category}}

	output, err := RenderDetail(detail)
	require.NoError(t, err)
	assert.Contains(t, output, "VisionAI Scanner")
	assert.Contains(t, output, "Tech Stack")
	assert.Contains(t, output, "Use Cases")
	assert.Contains(t, output, "Quality control")
	assert.Contains(t, output, "Related Agents")
	assert.Contains(t, output, "Other Vision")
}

func TestRenderDetailWithoutRelatedOmitsSection(t *testing.T) {
	output, err := RenderDetail(visionDetail(t))
	require.NoError(t, err)
	assert.NotContains(t, output, "Related Agents")
}

func TestRenderCategoriesCounts(t *testing.T) {
	output, err := RenderCategories([]domain.CategoryCount{
		{Category: "NLP", Count: 1},
		{Category: "Computer Vision", Count: 3},
		{Category: "Translation", Count: 0},
	})
	require.NoError(t, err)
	assert.Contains(t, output, "categories: 3")
	assert.Contains(t, output, "1 agent")
	assert.Contains(t, output, "3 agents")
	assert.Contains(t, output, "0 agents")
}

func TestRenderDetailHTML(t *testing.T) {
	detail := visionDetail(t)
	detail.Related = []domain.Agent{{ID: 9, Name: "Pipe | Agent", ShortDescription: "short"}}

	html, err := RenderDetailHTML(detail)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>VisionAI Scanner</h1>")
	assert.Contains(t, html, "<h2>Tech Stack</h2>")
	assert.Contains(t, html, "<li>Quality control</li>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Pipe | Agent")
	assert.Contains(t, html, `<img src="https://images.unsplash.com/`)
}

func TestRenderDetailHTMLDropsRawHTML(t *testing.T) {
	detail := visionDetail(t)
	detail.Agent.FullDescription = `<script>alert("x")</script>`

	html, err := RenderDetailHTML(detail)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
