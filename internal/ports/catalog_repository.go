package ports

import (
	"context"

	"github.com/bnema/agenthub-cli/internal/domain"
)

type CatalogRepository interface {
	Agents(ctx context.Context) ([]domain.Agent, error)
	Categories(ctx context.Context) ([]string, error)
}
