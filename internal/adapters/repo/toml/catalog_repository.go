package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	catalogFileMode      = 0o644
	catalogDirMode       = 0o700
	catalogTempPattern   = ".catalog-*.toml.tmp"
	catalogSourceFile    = "file"
	catalogSourceBuiltin = "builtin"
)

// CatalogRepository serves the agent catalog from a TOML file, or from the
// built-in catalog when the file does not exist. The file is read at most
// once; callers always receive copies.
type CatalogRepository struct {
	path string

	once       sync.Once
	agents     []domain.Agent
	categories []string
	source     string
	err        error
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(path string) (*CatalogRepository, error) {
	if path == "" {
		return &CatalogRepository{}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	return &CatalogRepository{path: filepath.Clean(absPath)}, nil
}

func (r *CatalogRepository) Agents(ctx context.Context) ([]domain.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.load(); err != nil {
		return nil, err
	}

	agents := make([]domain.Agent, 0, len(r.agents))
	for _, agent := range r.agents {
		agents = append(agents, agent.Clone())
	}
	return agents, nil
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.load(); err != nil {
		return nil, err
	}

	return slices.Clone(r.categories), nil
}

// Source reports whether the catalog came from the file or the built-in set.
func (r *CatalogRepository) Source() string {
	if err := r.load(); err != nil {
		return ""
	}
	return r.source
}

func (r *CatalogRepository) load() error {
	r.once.Do(func() {
		r.agents, r.categories, r.source, r.err = r.read()
	})
	return r.err
}

func (r *CatalogRepository) read() ([]domain.Agent, []string, string, error) {
	if r.path == "" {
		return domain.DefaultAgents(), domain.DefaultCategories(), catalogSourceBuiltin, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultAgents(), domain.DefaultCategories(), catalogSourceBuiltin, nil
		}
		return nil, nil, "", fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, "", fmt.Errorf("decode catalog file: %w", err)
	}
	file.applyDefaults()
	if err := file.validate(); err != nil {
		return nil, nil, "", fmt.Errorf("invalid catalog file %s: %w", r.path, err)
	}

	agents := make([]domain.Agent, 0, len(file.Agents))
	for _, entry := range file.Agents {
		agents = append(agents, fromAgentSchema(entry))
	}

	return agents, file.Categories, catalogSourceFile, nil
}

// WriteCatalog encodes agents and categories to path, replacing any
// existing file atomically.
func WriteCatalog(ctx context.Context, path string, agents []domain.Agent, categories []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return errors.New("catalog path is empty")
	}

	file := catalogSchema{Version: currentCatalogVersion, Categories: slices.Clone(categories)}
	for _, agent := range agents {
		file.Agents = append(file.Agents, toAgentSchema(agent))
	}
	file.applyDefaults()
	if err := file.validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, catalogTempPattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}
	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}
