package catalog

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownInstance
}

// DetailMarkdown builds the Markdown document for one agent.
func DetailMarkdown(detail application.AgentDetail) string {
	agent := detail.Agent

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", agent.Name)
	fmt.Fprintf(&b, "*%s* | %s\n\n", agent.Category, strings.Join(agent.Tags, ", "))
	fmt.Fprintf(&b, "%s\n\n", agent.FullDescription)
	if agent.Image != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", agent.Name, agent.Image)
	}

	writeList(&b, "Tech Stack", agent.TechStack)
	writeList(&b, "Use Cases", agent.UseCases)

	if agent.Video != "" {
		fmt.Fprintf(&b, "## Demo\n\n<%s>\n\n", agent.Video)
	}

	if len(detail.Related) > 0 {
		b.WriteString("## Related Agents\n\n| ID | Name | Summary |\n|---|---|---|\n")
		for _, other := range detail.Related {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", other.ID, escapeCell(other.Name), escapeCell(other.ShortDescription))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

// RenderDetailHTML converts the agent detail document to an HTML fragment.
// Raw HTML in catalog text is dropped by the converter.
func RenderDetailHTML(detail application.AgentDetail) (string, error) {
	var buf bytes.Buffer
	if err := markdown().Convert([]byte(DetailMarkdown(detail)), &buf); err != nil {
		return "", fmt.Errorf("render agent detail html: %w", err)
	}
	return buf.String(), nil
}
