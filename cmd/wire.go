package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/bnema/honeybible-cli/internal/adapters/ingest/kakao"
	reportadapter "github.com/bnema/honeybible-cli/internal/adapters/render/report"
	tomlrepo "github.com/bnema/honeybible-cli/internal/adapters/repo/toml"
	"github.com/bnema/honeybible-cli/internal/application"
	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
	"github.com/bnema/honeybible-cli/internal/ports"
)

const reportsDirKey = "reports.dir"

type app struct {
	settingsRepo   *tomlrepo.Repository
	history        *application.HistoryService
	reader         ports.TranscriptReader
	reportRenderer func([]application.Analysis, reportadapter.RenderOptions) (string, error)
	reportsDir     string
	concurrency    int
	clock          ports.Clock
	log            *logger.Logger
}

func wireApp() (*app, error) {
	log, err := logger.New(envOrDefault("HB_LOG_MODE", "dev"))
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	log.SetLevel(envOrDefault("HB_LOG_LEVEL", "warn"))

	cfg := viper.New()
	if path := os.Getenv("HB_SETTINGS_PATH"); path != "" {
		cfg.Set("settings.path", path)
	}

	settingsRepo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	runRepo, err := tomlrepo.NewRunRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire run repository: %w", err)
	}

	concurrency, err := strconv.Atoi(envOrDefault("HB_CONCURRENCY", strconv.Itoa(application.DefaultConcurrency)))
	if err != nil || concurrency <= 0 {
		return nil, fmt.Errorf("invalid HB_CONCURRENCY %q", os.Getenv("HB_CONCURRENCY"))
	}

	return &app{
		settingsRepo:   settingsRepo,
		history:        application.NewHistoryService(runRepo, log),
		reader:         kakao.NewReader(log),
		reportRenderer: reportadapter.Render,
		reportsDir:     cfg.GetString(reportsDirKey),
		concurrency:    concurrency,
		clock:          ports.SystemClock{},
		log:            log,
	}, nil
}

func (a *app) settings(ctx context.Context) (domain.Settings, error) {
	settings, err := a.settingsRepo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings from %s: %w", a.settingsRepo.Path(), err)
	}
	return settings, nil
}

func (a *app) analysisService(ctx context.Context) (*application.AnalysisService, error) {
	settings, err := a.settings(ctx)
	if err != nil {
		return nil, err
	}
	return application.NewAnalysisService(a.reader, settings, a.clock, a.log), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
