// Package config resolves ah settings from ~/.agenthub/config.toml,
// AGENTHUB_* environment variables and built-in defaults, in increasing
// order of precedence: defaults, file, environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/agenthub-cli/internal/adapters/api"
	passstore "github.com/bnema/agenthub-cli/internal/adapters/secrets/pass"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".agenthub"
	envPrefix  = "AGENTHUB"
	configEnv  = "AGENTHUB_CONFIG"

	KeyAPIBaseURL         = "api.base_url"
	KeyAPITimeout         = "api.timeout"
	KeyCredentialsBackend = "credentials.backend"
	KeyCredentialsDir     = "credentials.dir"
	KeyCredentialsPrefix  = "credentials.pass_prefix"
	KeyCatalogPath        = "catalog.path"
	KeyLogLevel           = "log.level"
)

type Backend string

const (
	BackendFile  Backend = "file"
	BackendPass  Backend = "pass"
	BackendChain Backend = "chain"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendFile, BackendPass, BackendChain:
		return true
	default:
		return false
	}
}

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Catalog     CatalogConfig
	Log         LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CredentialsConfig struct {
	Backend    Backend
	Dir        string
	PassPrefix string
}

type CatalogConfig struct {
	Path string
}

type LogConfig struct {
	Level slog.Level
}

func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetDefault(KeyAPIBaseURL, api.DefaultBaseURL)
	v.SetDefault(KeyAPITimeout, api.DefaultRequestTimeout)
	v.SetDefault(KeyCredentialsBackend, string(BackendFile))
	v.SetDefault(KeyCredentialsDir, filepath.Join(baseDir, "credentials"))
	v.SetDefault(KeyCredentialsPrefix, passstore.DefaultPrefix)
	v.SetDefault(KeyCatalogPath, filepath.Join(baseDir, "catalog.toml"))
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit := os.Getenv(configEnv); explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(baseDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		Credentials: CredentialsConfig{
			Backend:    Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyCredentialsBackend)))),
			Dir:        expandHome(v.GetString(KeyCredentialsDir), homeDir),
			PassPrefix: strings.TrimSpace(v.GetString(KeyCredentialsPrefix)),
		},
		Catalog: CatalogConfig{
			Path: expandHome(v.GetString(KeyCatalogPath), homeDir),
		},
		File: v.ConfigFileUsed(),
	}

	if err := api.ValidateBaseURL(cfg.API.BaseURL); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyAPIBaseURL, err)
	}
	if cfg.API.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s: must be a positive duration", KeyAPITimeout)
	}
	if !cfg.Credentials.Backend.Valid() {
		return Config{}, fmt.Errorf("invalid %s %q: want file, pass or chain", KeyCredentialsBackend, cfg.Credentials.Backend)
	}
	if cfg.Credentials.Dir == "" {
		return Config{}, fmt.Errorf("invalid %s: path is empty", KeyCredentialsDir)
	}
	if cfg.Credentials.PassPrefix == "" {
		cfg.Credentials.PassPrefix = passstore.DefaultPrefix
	}
	if err := cfg.Log.Level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return cfg, nil
}

func expandHome(path string, homeDir string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "~":
		return homeDir
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(homeDir, path[2:])
	default:
		return path
	}
}
