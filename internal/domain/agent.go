package domain

import (
	"slices"
	"strings"
)

type AgentID int

type Agent struct {
	ID               AgentID
	Name             string
	ShortDescription string
	FullDescription  string
	Category         string
	Tags             []string
	Image            string
	// Video is an optional demo URL.
	Video     string
	UseCases  []string
	TechStack []string
}

// Clone returns a deep copy so callers cannot mutate catalog records.
func (a Agent) Clone() Agent {
	a.Tags = slices.Clone(a.Tags)
	a.UseCases = slices.Clone(a.UseCases)
	a.TechStack = slices.Clone(a.TechStack)
	return a
}

// Matches reports whether term is a case-insensitive substring of the name,
// the short description or any tag. An empty term matches everything.
func (a Agent) Matches(term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.ShortDescription), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// FilterAgents returns the agents matching term whose category equals
// category, or all categories when category is empty. Order is preserved.
func FilterAgents(agents []Agent, term, category string) []Agent {
	filtered := make([]Agent, 0, len(agents))
	for _, agent := range agents {
		if !agent.Matches(term) {
			continue
		}
		if category != "" && agent.Category != category {
			continue
		}
		filtered = append(filtered, agent)
	}
	return filtered
}

func FindAgent(agents []Agent, id AgentID) (Agent, error) {
	for _, agent := range agents {
		if agent.ID == id {
			return agent, nil
		}
	}
	return Agent{}, ErrAgentNotFound
}

// RelatedAgents lists up to limit other agents sharing the category of agent.
func RelatedAgents(agents []Agent, agent Agent, limit int) []Agent {
	related := make([]Agent, 0, limit)
	for _, candidate := range agents {
		if len(related) >= limit {
			break
		}
		if candidate.ID == agent.ID || candidate.Category != agent.Category {
			continue
		}
		related = append(related, candidate)
	}
	return related
}

type CategoryCount struct {
	Category string
	Count    int
}

func CountByCategory(agents []Agent, categories []string) []CategoryCount {
	counts := make([]CategoryCount, 0, len(categories))
	for _, category := range categories {
		n := 0
		for _, agent := range agents {
			if agent.Category == category {
				n++
			}
		}
		counts = append(counts, CategoryCount{Category: category, Count: n})
	}
	return counts
}
