package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/agents"
	"github.com/xizzxy/NextMove/internal/ai/gemini"
	"github.com/xizzxy/NextMove/internal/jobsearch"
	"github.com/xizzxy/NextMove/internal/places"
	"github.com/xizzxy/NextMove/internal/scoring"
	"github.com/xizzxy/NextMove/internal/secrets"
)

// buildDeps assembles the agent collaborators from the configuration. Every
// collaborator is optional: a missing or broken one is logged and skipped,
// and the owning agent serves fallback data instead.
func buildDeps(ctx context.Context, config *Config, logger *zap.Logger) agents.Deps {
	deps := agents.Deps{
		Logger: logger,
		Tables: scoring.DefaultTables(),
	}

	if generator, err := buildGenerator(ctx, config.AI, logger); err != nil {
		logger.Warn("running without the AI collaborator", zap.Error(err))
	} else if generator != nil {
		deps.AI = generator
	}

	if jobs, err := buildJobSearcher(config.Jobs); err != nil {
		logger.Warn("running without the job search collaborator", zap.Error(err))
	} else if jobs != nil {
		deps.Jobs = jobs
	}

	if placeSearch, err := buildPlaceSearcher(config.Places); err != nil {
		logger.Warn("running without the places collaborator", zap.Error(err))
	} else if placeSearch != nil {
		deps.Places = placeSearch
	}

	return deps
}

func buildGenerator(ctx context.Context, config *AIConfig, logger *zap.Logger) (*gemini.Generator, error) {
	if config == nil || !config.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}
	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", config.Gemini.Model),
	)

	return gemini.New(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, genLogger)
}

func buildJobSearcher(config *JobsConfig) (*jobsearch.Client, error) {
	if config == nil || config.AppID == "" {
		return nil, nil
	}

	appKey, err := secrets.Load(secrets.Source{
		Name: "adzuna app key",
		File: config.AppKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set jobs.app-key-file or ADZUNA_APP_KEY_FILE)", err)
	}

	return jobsearch.NewClient(jobsearch.Config{
		AppID:   config.AppID,
		AppKey:  appKey,
		Country: config.Country,
	})
}

func buildPlaceSearcher(config *PlacesConfig) (*places.Client, error) {
	if config == nil || config.APIKeyFile == "" {
		return nil, nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "places api key",
		File: config.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set places.api-key-file or PLACES_API_KEY_FILE)", err)
	}

	return places.NewClient(places.Config{APIKey: apiKey})
}
