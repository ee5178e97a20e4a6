package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"go.opentelemetry.io/otel/attribute"
)

// LeaderboardService computes a single board on demand without writing artifacts.
type LeaderboardService struct {
	seasonRepo   season.Repository
	identityRepo identity.Repository
	programs     []program.Program
	allowLegacy  bool
}

// NewLeaderboardService builds boards with the same id resolution as a build run with the
// given allowLegacy setting.
func NewLeaderboardService(seasonRepo season.Repository, identityRepo identity.Repository, programs []program.Program, allowLegacy bool) *LeaderboardService {
	return &LeaderboardService{
		seasonRepo:   seasonRepo,
		identityRepo: identityRepo,
		programs:     programs,
		allowLegacy:  allowLegacy,
	}
}

func (s *LeaderboardService) Top(ctx context.Context, code program.Code, key leaderboard.Key, limit int) (_ leaderboard.Board, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Top",
		attribute.String("program", string(code)),
		attribute.String("board", string(key)),
	)
	defer func() { endUsecaseSpan(span, err) }()

	std, err := leaderboard.FindStandard(key)
	if err != nil {
		if errors.Is(err, leaderboard.ErrUnknownKey) {
			return leaderboard.Board{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return leaderboard.Board{}, err
	}
	prog, ok := program.Find(s.programs, code)
	if !ok {
		return leaderboard.Board{}, fmt.Errorf("%w: program=%s", ErrNotFound, code)
	}
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}

	idx, err := s.identityRepo.LoadIndex(ctx)
	if err != nil {
		return leaderboard.Board{}, identityError("load identity index", err)
	}
	merges, err := s.identityRepo.LoadMerges(ctx)
	if err != nil {
		return leaderboard.Board{}, identityError("load merges", err)
	}
	resolver := identity.NewResolver(idx, merges, identity.Options{AllowLegacy: s.allowLegacy || len(idx.ByAlias) == 0})

	seasons, err := s.seasonRepo.ListByProgram(ctx, prog)
	if err != nil {
		return leaderboard.Board{}, sourceError(fmt.Sprintf("list %s seasons", prog.Code), err)
	}

	result := career.Aggregate(seasons, resolver, prog)
	return std.Build(leaderboard.RowsFrom(result.Careers), limit), nil
}
