package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/source"
	"github.com/riskibarqy/hoops-almanac/internal/metrics"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// MintService assigns canonical ids to legacy identifiers found in the source tree.
type MintService struct {
	identityRepo identity.Repository
	scanner      source.Scanner
	recorder     *metrics.Recorder
	logger       *logging.Logger
	now          func() time.Time
}

func NewMintService(identityRepo identity.Repository, scanner source.Scanner, recorder *metrics.Recorder, logger *logging.Logger) *MintService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MintService{
		identityRepo: identityRepo,
		scanner:      scanner,
		recorder:     recorder,
		logger:       logger,
		now:          time.Now,
	}
}

// Mint scans for legacy ids and persists new alias entries. The store is saved only when at
// least one id was minted and dryRun is false.
func (s *MintService) Mint(ctx context.Context, dryRun bool) (_ identity.MintReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MintService.Mint", attribute.Bool("dry_run", dryRun))
	defer func() { endUsecaseSpan(span, err) }()

	aliases, err := s.scanner.Scan(ctx, identity.LegacyPattern)
	if err != nil {
		return identity.MintReport{}, fmt.Errorf("scan legacy ids: %w", err)
	}

	idx, err := s.identityRepo.LoadIndex(ctx)
	if err != nil {
		return identity.MintReport{}, identityError("load identity index", err)
	}
	merges, err := s.identityRepo.LoadMerges(ctx)
	if err != nil {
		return identity.MintReport{}, identityError("load merges", err)
	}

	report, err := idx.Mint(aliases, merges)
	if err != nil {
		return report, fmt.Errorf("mint ids: %w", err)
	}

	s.logger.InfoContext(ctx, "mint scan complete",
		"found", report.Found,
		"canonical", report.Canonical,
		"minted", len(report.Minted),
		"next_pid", report.NextPID,
		"dry_run", dryRun,
	)
	if len(report.Minted) == 0 || dryRun {
		return report, nil
	}

	idx.Meta.Updated = s.now().UTC().Format(time.RFC3339)
	if err := s.identityRepo.SaveIndex(ctx, idx); err != nil {
		return report, fmt.Errorf("save identity index: %w", err)
	}
	s.recorder.Minted(len(report.Minted))
	return report, nil
}
