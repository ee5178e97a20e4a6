package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/hoops-almanac/internal/domain/artifact"
	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/record"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"github.com/riskibarqy/hoops-almanac/internal/metrics"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const unmappedLogSample = 20

type programBoards struct {
	code   program.Code
	boards []leaderboard.Board
}

type BuildConfig struct {
	LeaderboardSize int
	// AllowLegacy lets unmapped ids resolve to themselves. It is forced on while the
	// identity store is still empty.
	AllowLegacy bool
}

// BuildSummary reports what one build read, skipped and wrote.
type BuildSummary struct {
	Programs   []career.Summary
	Players    int
	Resolution identity.Stats
	Unmapped   []string
	Legacy     bool
	Artifacts  artifact.Stats
	Duration   time.Duration
}

type BuildService struct {
	seasonRepo   season.Repository
	identityRepo identity.Repository
	artifacts    artifact.Repository
	recorder     *metrics.Recorder
	logger       *logging.Logger
	cfg          BuildConfig
	now          func() time.Time
}

func NewBuildService(
	seasonRepo season.Repository,
	identityRepo identity.Repository,
	artifacts artifact.Repository,
	recorder *metrics.Recorder,
	logger *logging.Logger,
	cfg BuildConfig,
) *BuildService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = leaderboard.DefaultLimit
	}
	return &BuildService{
		seasonRepo:   seasonRepo,
		identityRepo: identityRepo,
		artifacts:    artifacts,
		recorder:     recorder,
		logger:       logger,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Build folds every program's season files into careers, then writes player artifacts,
// the player index, per-program leaderboards and team records. A player who appears in
// more than one program gets a single artifact covering all of them.
func (s *BuildService) Build(ctx context.Context, programs []program.Program) (_ BuildSummary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuildService.Build", attribute.Int("programs", len(programs)))
	defer func() { endUsecaseSpan(span, err) }()

	started := s.now()
	if len(programs) == 0 {
		return BuildSummary{}, fmt.Errorf("%w: at least one program is required", ErrInvalidInput)
	}

	resolver, legacy, err := s.newResolver(ctx)
	if err != nil {
		return BuildSummary{}, err
	}

	summary := BuildSummary{Legacy: legacy}
	perProgram := make([]map[string]*career.Career, 0, len(programs))
	boards := make([]programBoards, 0, len(programs))
	records := make([]record.Program, 0, len(programs))

	// Every program is read before anything is written so a malformed file leaves the
	// previous build's artifacts untouched.
	for _, prog := range programs {
		seasons, err := s.seasonRepo.ListByProgram(ctx, prog)
		if err != nil {
			return BuildSummary{}, sourceError(fmt.Sprintf("list %s seasons", prog.Code), err)
		}
		if len(seasons) == 0 {
			s.logger.WarnContext(ctx, "no season files found", "program", prog.Code, "dir", prog.DataDir)
		}

		result := career.Aggregate(seasons, resolver, prog)
		s.logFold(ctx, result.Summary)
		summary.Programs = append(summary.Programs, result.Summary)
		perProgram = append(perProgram, result.Careers)

		boards = append(boards, programBoards{
			code:   prog.Code,
			boards: leaderboard.BuildAll(leaderboard.RowsFrom(result.Careers), s.cfg.LeaderboardSize),
		})
		records = append(records, record.Overall(prog.Code, seasons))
	}
	for _, folded := range summary.Programs {
		s.recordFold(folded)
	}

	careers := career.Sorted(career.Combine(perProgram...))
	summary.Players = len(careers)

	for _, pb := range boards {
		changed, err := s.artifacts.WriteLeaderboards(ctx, pb.code, pb.boards)
		if err != nil {
			return BuildSummary{}, fmt.Errorf("write %s leaderboards: %w", pb.code, err)
		}
		summary.Artifacts.Observe(changed)
	}

	written, err := s.artifacts.WriteCareers(ctx, careers)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("write careers: %w", err)
	}
	summary.Artifacts.Add(written)

	changed, err := s.artifacts.WriteIndex(ctx, career.BuildIndex(careers))
	if err != nil {
		return BuildSummary{}, fmt.Errorf("write player index: %w", err)
	}
	summary.Artifacts.Observe(changed)

	changed, err = s.artifacts.WriteRecords(ctx, records)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("write records: %w", err)
	}
	summary.Artifacts.Observe(changed)

	summary.Resolution = resolver.Stats()
	summary.Unmapped = resolver.Unmapped()
	summary.Duration = s.now().Sub(started)

	if n := len(summary.Unmapped); n > 0 {
		sample := summary.Unmapped
		if n > unmappedLogSample {
			sample = sample[:unmappedLogSample]
		}
		s.logger.DebugContext(ctx, "unmapped ids", "count", n, "sample", sample)
	}
	if summary.Resolution.Cycles > 0 {
		s.logger.WarnContext(ctx, "merge cycles broken", "count", summary.Resolution.Cycles)
	}

	s.recorder.MergeCycles(summary.Resolution.Cycles)
	s.recorder.Artifacts(metrics.ArtWritten, summary.Artifacts.Written)
	s.recorder.Artifacts(metrics.ArtUnchanged, summary.Artifacts.Unchanged)
	s.recorder.Artifacts(metrics.ArtPruned, summary.Artifacts.Pruned)
	s.recorder.Duration(summary.Duration)

	s.logger.InfoContext(ctx, "build complete",
		"players", summary.Players,
		"mapped", summary.Resolution.Mapped,
		"unmapped", summary.Resolution.Unmapped,
		"written", summary.Artifacts.Written,
		"unchanged", summary.Artifacts.Unchanged,
		"pruned", summary.Artifacts.Pruned,
		"legacy", summary.Legacy,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (s *BuildService) newResolver(ctx context.Context) (*identity.Resolver, bool, error) {
	idx, err := s.identityRepo.LoadIndex(ctx)
	if err != nil {
		return nil, false, identityError("load identity index", err)
	}
	merges, err := s.identityRepo.LoadMerges(ctx)
	if err != nil {
		return nil, false, identityError("load merges", err)
	}
	if err := idx.Validate(); err != nil {
		s.logger.WarnContext(ctx, "identity index inconsistent", "error", err)
	}

	legacy := s.cfg.AllowLegacy || len(idx.ByAlias) == 0
	if legacy {
		s.logger.InfoContext(ctx, "legacy passthrough enabled", "aliases", len(idx.ByAlias))
	}
	return identity.NewResolver(idx, merges, identity.Options{AllowLegacy: legacy}), legacy, nil
}

func (s *BuildService) logFold(ctx context.Context, sum career.Summary) {
	s.logger.DebugContext(ctx, "program folded",
		"program", sum.Program,
		"seasons", sum.Seasons,
		"careers", sum.Careers,
		"rows", sum.Rows,
		"kept", sum.RowsKept,
		"empty_id", sum.EmptyIDRows,
		"unmapped", sum.UnmappedRows,
		"without_roster", sum.RowsWithoutRoster,
		"roster_skipped", sum.RosterSkipped,
		"roster_duplicates", sum.RosterDuplicates,
		"roster_only", sum.RosterOnlySeasons,
	)
}

func (s *BuildService) recordFold(sum career.Summary) {
	code := string(sum.Program)
	s.recorder.SeasonsLoaded(code, sum.Seasons)
	s.recorder.Careers(code, sum.Careers)
	s.recorder.Rows(code, metrics.RowKept, sum.RowsKept)
	s.recorder.Rows(code, metrics.RowEmptyID, sum.EmptyIDRows)
	s.recorder.Rows(code, metrics.RowUnmapped, sum.UnmappedRows)
	s.recorder.Rows(code, metrics.RowNoRoster, sum.RowsWithoutRoster)
	s.recorder.RosterSkipped(code, sum.RosterSkipped)
}

func sourceError(op string, err error) error {
	if errors.Is(err, season.ErrMalformedSource) {
		return fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}

func identityError(op string, err error) error {
	if errors.Is(err, identity.ErrInvalidIndex) {
		return fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}
