package toml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/agenthub-cli/internal/domain"
)

const currentCatalogVersion = 1

type catalogSchema struct {
	Version    int           `toml:"version"`
	Categories []string      `toml:"categories,omitempty"`
	Agents     []agentSchema `toml:"agents"`
}

type agentSchema struct {
	ID               int      `toml:"id"`
	Name             string   `toml:"name"`
	ShortDescription string   `toml:"short_description"`
	FullDescription  string   `toml:"full_description"`
	Category         string   `toml:"category"`
	Tags             []string `toml:"tags"`
	Image            string   `toml:"image"`
	Video            string   `toml:"video,omitempty"`
	UseCases         []string `toml:"use_cases"`
	TechStack        []string `toml:"tech_stack"`
}

func (s *catalogSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentCatalogVersion
	}
	if len(s.Categories) == 0 {
		s.Categories = categoriesOf(s.Agents)
	}
}

func (s catalogSchema) validate() error {
	if s.Version > currentCatalogVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentCatalogVersion)
	}
	if len(s.Agents) == 0 {
		return errors.New("catalog has no agents")
	}

	seen := make(map[int]struct{}, len(s.Agents))
	for i, agent := range s.Agents {
		if agent.ID <= 0 {
			return fmt.Errorf("agent %d: id must be positive", i+1)
		}
		if strings.TrimSpace(agent.Name) == "" {
			return fmt.Errorf("agent %d: name is required", agent.ID)
		}
		if _, ok := seen[agent.ID]; ok {
			return fmt.Errorf("agent %d: duplicate id", agent.ID)
		}
		seen[agent.ID] = struct{}{}
	}

	return nil
}

func categoriesOf(agents []agentSchema) []string {
	categories := []string{}
	seen := map[string]struct{}{}
	for _, agent := range agents {
		if agent.Category == "" {
			continue
		}
		if _, ok := seen[agent.Category]; ok {
			continue
		}
		seen[agent.Category] = struct{}{}
		categories = append(categories, agent.Category)
	}
	return categories
}

func toAgentSchema(agent domain.Agent) agentSchema {
	return agentSchema{
		ID:               int(agent.ID),
		Name:             agent.Name,
		ShortDescription: agent.ShortDescription,
		FullDescription:  agent.FullDescription,
		Category:         agent.Category,
		Tags:             agent.Tags,
		Image:            agent.Image,
		Video:            agent.Video,
		UseCases:         agent.UseCases,
		TechStack:        agent.TechStack,
	}
}

func fromAgentSchema(entry agentSchema) domain.Agent {
	return domain.Agent{
		ID:               domain.AgentID(entry.ID),
		Name:             entry.Name,
		ShortDescription: entry.ShortDescription,
		FullDescription:  entry.FullDescription,
		Category:         entry.Category,
		Tags:             entry.Tags,
		Image:            entry.Image,
		Video:            entry.Video,
		UseCases:         entry.UseCases,
		TechStack:        entry.TechStack,
	}
}
