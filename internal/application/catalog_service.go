package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports"
)

const relatedAgentsLimit = 3

type CatalogPage struct {
	Agents   []domain.Agent
	Total    int
	Term     string
	Category string
}

type AgentDetail struct {
	Agent   domain.Agent
	Related []domain.Agent
}

type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Search filters the catalog by a free-text term and an optional category.
func (s *CatalogService) Search(ctx context.Context, term, category string) (CatalogPage, error) {
	agents, err := s.repo.Agents(ctx)
	if err != nil {
		return CatalogPage{}, fmt.Errorf("load agents: %w", err)
	}

	term = strings.TrimSpace(term)
	category = strings.TrimSpace(category)

	return CatalogPage{
		Agents:   domain.FilterAgents(agents, term, category),
		Total:    len(agents),
		Term:     term,
		Category: category,
	}, nil
}

func (s *CatalogService) Agent(ctx context.Context, id domain.AgentID) (AgentDetail, error) {
	agents, err := s.repo.Agents(ctx)
	if err != nil {
		return AgentDetail{}, fmt.Errorf("load agents: %w", err)
	}

	agent, err := domain.FindAgent(agents, id)
	if err != nil {
		return AgentDetail{}, err
	}

	return AgentDetail{
		Agent:   agent,
		Related: domain.RelatedAgents(agents, agent, relatedAgentsLimit),
	}, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	agents, err := s.repo.Agents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load agents: %w", err)
	}
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	return domain.CountByCategory(agents, categories), nil
}

// RequestableAgents lists the names accepted by the request form.
func (s *CatalogService) RequestableAgents(ctx context.Context) ([]string, error) {
	agents, err := s.repo.Agents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load agents: %w", err)
	}

	names := make([]string, 0, len(agents)+1)
	for _, agent := range agents {
		names = append(names, agent.Name)
	}
	return append(names, domain.CustomSolutionAgent), nil
}

func (s *CatalogService) ValidateRequestAgent(ctx context.Context, name string) error {
	agents, err := s.repo.Agents(ctx)
	if err != nil {
		return fmt.Errorf("load agents: %w", err)
	}
	if !domain.IsRequestableAgent(agents, name) {
		return fmt.Errorf("%w: %q", domain.ErrAgentNotFound, name)
	}

	return nil
}
