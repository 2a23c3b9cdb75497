package config

import (
	"errors"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultGraphQLURL     = "https://api.github.com/graphql"
	DefaultPort           = ":8081"
	DefaultRetryBaseDelay = time.Second
	DefaultQuotaInterval  = 5 * time.Minute
)

type Config struct {
	GitHubToken    string
	GitHubUsername string
	GraphQLURL     string
	SiteURL        string
	Port           string
	RetryBaseDelay time.Duration
	QuotaInterval  time.Duration
	Debug          bool
}

// * LoadConfiguration reads .env (when present) and the process environment.
// * A missing GITHUB_TOKEN is not fatal: the API endpoints report it as a 500.
func LoadConfiguration() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("GITHUB_GRAPHQL_URL", DefaultGraphQLURL)
	v.SetDefault("SERVER_PORT", DefaultPort)
	v.SetDefault("RETRY_BASE_DELAY", DefaultRetryBaseDelay)
	v.SetDefault("QUOTA_INTERVAL", DefaultQuotaInterval)
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		GitHubToken:    strings.TrimSpace(v.GetString("GITHUB_TOKEN")),
		GitHubUsername: strings.TrimSpace(v.GetString("GITHUB_USERNAME")),
		GraphQLURL:     v.GetString("GITHUB_GRAPHQL_URL"),
		SiteURL:        strings.TrimRight(v.GetString("NEXT_PUBLIC_SITE_URL"), "/"),
		Port:           v.GetString("SERVER_PORT"),
		RetryBaseDelay: v.GetDuration("RETRY_BASE_DELAY"),
		QuotaInterval:  v.GetDuration("QUOTA_INTERVAL"),
		Debug:          v.GetBool("DEBUG"),
	}

	if cfg.GitHubUsername == "" {
		return nil, errors.New("GITHUB_USERNAME is required")
	}

	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN is not set, GitHub endpoints will fail")
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	if cfg.RetryBaseDelay < 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}

	logger.Info("✅ env content loaded successfully 🎉")
	return cfg, nil
}
