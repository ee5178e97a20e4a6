package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-almanac/internal/config"
	cacherepo "github.com/riskibarqy/hoops-almanac/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hoops-almanac/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/hoops-almanac/internal/metrics"
	basecache "github.com/riskibarqy/hoops-almanac/internal/platform/cache"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"github.com/riskibarqy/hoops-almanac/internal/usecase"
)

// Options are per-invocation switches that do not come from the environment.
type Options struct {
	AllowLegacy bool
}

// App holds the services one CLI invocation needs, wired to the filesystem.
type App struct {
	Config      config.Config
	Logger      *logging.Logger
	Recorder    *metrics.Recorder
	Cache       *basecache.Store
	Build       *usecase.BuildService
	Mint        *usecase.MintService
	Verify      *usecase.VerifyService
	Patch       *usecase.PatchService
	Leaderboard *usecase.LeaderboardService
}

func New(cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default()
	}

	store := basecache.NewStore()
	seasonRepo := cacherepo.NewSeasonRepository(filesystem.NewSeasonRepository(logger), store)
	identityRepo := cacherepo.NewIdentityRepository(
		filesystem.NewIdentityRepository(cfg.PersonIndexPath, cfg.PersonMergesPath, cfg.InitialNextPID),
		store,
	)
	artifacts := filesystem.NewArtifactWriter(cfg.DerivedDir, logger)
	scanner := filesystem.NewSourceScanner(cfg.ScanRoot, cfg.ScanExtensions, cfg.DerivedDir)
	recorder := metrics.NewRecorder()

	return &App{
		Config:   cfg,
		Logger:   logger,
		Recorder: recorder,
		Cache:    store,
		Build: usecase.NewBuildService(seasonRepo, identityRepo, artifacts, recorder, logger, usecase.BuildConfig{
			LeaderboardSize: cfg.LeaderboardSize,
			AllowLegacy:     opts.AllowLegacy,
		}),
		Mint:        usecase.NewMintService(identityRepo, scanner, recorder, logger),
		Verify:      usecase.NewVerifyService(identityRepo, scanner),
		Patch:       usecase.NewPatchService(identityRepo, scanner, logger),
		Leaderboard: usecase.NewLeaderboardService(seasonRepo, identityRepo, cfg.Programs(), opts.AllowLegacy),
	}, nil
}

// Close flushes the metrics textfile when one is configured, then syncs the logger.
func (a *App) Close(ctx context.Context) error {
	var flushErr error
	if path := a.Config.MetricsTextfile; path != "" {
		if err := a.Recorder.WriteTextfile(path); err != nil {
			flushErr = fmt.Errorf("write metrics textfile: %w", err)
		} else {
			a.Logger.DebugContext(ctx, "metrics written", "path", path)
		}
	}
	stats := a.Cache.Stats()
	a.Logger.DebugContext(ctx, "cache usage", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
	_ = a.Logger.Sync()
	return flushErr
}
