package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/source"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// PatchService rewrites legacy ids embedded in source files to their canonical ids.
type PatchService struct {
	identityRepo identity.Repository
	scanner      source.Scanner
	logger       *logging.Logger
}

func NewPatchService(identityRepo identity.Repository, scanner source.Scanner, logger *logging.Logger) *PatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PatchService{
		identityRepo: identityRepo,
		scanner:      scanner,
		logger:       logger,
	}
}

// Patch replaces every legacy id that resolves, through merges and the alias table, to a
// canonical id. Ids without an alias entry are left in place and reported as missing.
func (s *PatchService) Patch(ctx context.Context, dryRun bool) (_ source.RewriteReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PatchService.Patch", attribute.Bool("dry_run", dryRun))
	defer func() { endUsecaseSpan(span, err) }()

	idx, err := s.identityRepo.LoadIndex(ctx)
	if err != nil {
		return source.RewriteReport{}, identityError("load identity index", err)
	}
	merges, err := s.identityRepo.LoadMerges(ctx)
	if err != nil {
		return source.RewriteReport{}, identityError("load merges", err)
	}

	replace := func(match string) (string, bool) {
		cur, _ := merges.Follow(match)
		if identity.IsCanonical(cur) {
			return cur, true
		}
		pid, ok := idx.ByAlias[cur]
		if !ok {
			return cur, false
		}
		return pid, true
	}

	report, err := s.scanner.Rewrite(ctx, identity.LegacyPattern, replace, dryRun)
	if err != nil {
		return report, fmt.Errorf("rewrite legacy ids: %w", err)
	}

	s.logger.InfoContext(ctx, "patch complete",
		"files", len(report.FilesTouched),
		"replacements", report.Replacements,
		"missing", len(report.Missing),
		"dry_run", dryRun,
	)
	return report, nil
}
