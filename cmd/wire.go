package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bnema/agenthub-cli/internal/adapters/api"
	"github.com/bnema/agenthub-cli/internal/adapters/credential"
	catalogrender "github.com/bnema/agenthub-cli/internal/adapters/render/catalog"
	sessionrender "github.com/bnema/agenthub-cli/internal/adapters/render/session"
	tomlrepo "github.com/bnema/agenthub-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/agenthub-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/agenthub-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/agenthub-cli/internal/adapters/secrets/pass"
	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/bnema/agenthub-cli/internal/config"
	"github.com/bnema/agenthub-cli/internal/ports"
	"github.com/bnema/agenthub-cli/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	catalog         *application.CatalogService
	catalogRepo     *tomlrepo.CatalogRepository
	secretStore     ports.SecretStore
	httpClient      *http.Client
	sessionRenderer func(sessionrender.View, sessionrender.RenderOptions) (string, error)
	listRenderer    func(application.CatalogPage) (string, error)
	clock           ports.Clock

	// Opened on first use so catalog commands never touch the credential backend.
	credentials *credential.Store
	session     *application.SessionManager
}

func wireApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.Log.Level}))

	catalogRepo, err := tomlrepo.NewCatalogRepository(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	secretStore, err := newSecretStore(cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	return &app{
		cfg:             cfg,
		logger:          logger,
		catalog:         application.NewCatalogService(catalogRepo),
		catalogRepo:     catalogRepo,
		secretStore:     secretStore,
		httpClient:      http.DefaultClient,
		sessionRenderer: sessionrender.Render,
		listRenderer:    catalogrender.RenderList,
		clock:           ports.SystemClock{},
	}, nil
}

func newSecretStore(cfg config.CredentialsConfig) (ports.SecretStore, error) {
	switch cfg.Backend {
	case config.BackendPass:
		return passstore.NewStore(cfg.PassPrefix), nil
	case config.BackendChain:
		return chainstore.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.Dir)
	case config.BackendFile, "":
		return filestore.NewStore(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unsupported credentials backend %q", cfg.Backend)
	}
}

// sessionManager opens the credential store and builds the session manager
// once per process.
func (a *app) sessionManager(ctx context.Context) (*application.SessionManager, error) {
	if a.session != nil {
		return a.session, nil
	}

	store, err := credential.Open(ctx, a.secretStore, credential.DefaultKey)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	client := api.Client{
		BaseURL:        a.cfg.API.BaseURL,
		HTTPClient:     a.httpClient,
		RequestTimeout: a.cfg.API.Timeout,
		Credentials:    store,
		UserAgent:      "ah/" + version.Version,
		Logger:         a.logger,
	}

	manager := application.NewSessionManager(client, store, a.clock, a.logger)
	manager.Subscribe(func(state application.SessionState) {
		a.logger.Debug("session state changed",
			"authenticated", state.IsAuthenticated,
			"loading", state.IsLoading,
			"has_user", state.User != nil,
			"error", state.Error,
		)
	})

	a.credentials = store
	a.session = manager
	return manager, nil
}

// startSession returns the session manager once its startup check has
// settled. The check runs under a spinner unless quiet is set.
func (a *app) startSession(cmd *cobra.Command, quiet bool) (*application.SessionManager, error) {
	manager, err := a.sessionManager(cmd.Context())
	if err != nil {
		return nil, err
	}

	if quiet {
		manager.Init(cmd.Context())
		return manager, nil
	}

	err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Checking session...", func(ctx context.Context) error {
		manager.Init(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return manager, nil
}

// teardown releases the session manager if a command opened one.
func (a *app) teardown() {
	if a.session != nil {
		a.session.Teardown()
	}
}

func (a *app) now() time.Time {
	return a.clock.Now()
}

func defaultLogOutput() io.Writer {
	return os.Stderr
}
