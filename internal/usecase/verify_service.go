package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/source"
)

type VerifyReport struct {
	Referenced int
	People     int
	Orphans    []string
	// IndexProblem is the first consistency problem found in the store, if any.
	IndexProblem string
}

func (r VerifyReport) OK() bool {
	return len(r.Orphans) == 0 && r.IndexProblem == ""
}

type VerifyService struct {
	identityRepo identity.Repository
	scanner      source.Scanner
}

func NewVerifyService(identityRepo identity.Repository, scanner source.Scanner) *VerifyService {
	return &VerifyService{
		identityRepo: identityRepo,
		scanner:      scanner,
	}
}

// Orphans reports canonical ids referenced in the source tree that have no person record.
func (s *VerifyService) Orphans(ctx context.Context) (_ VerifyReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VerifyService.Orphans")
	defer func() { endUsecaseSpan(span, err) }()

	refs, err := s.scanner.Scan(ctx, identity.CanonicalRefPattern)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("scan canonical ids: %w", err)
	}
	idx, err := s.identityRepo.LoadIndex(ctx)
	if err != nil {
		return VerifyReport{}, identityError("load identity index", err)
	}

	report := VerifyReport{
		Referenced: len(refs),
		People:     len(idx.People),
		Orphans:    idx.Orphans(refs),
	}
	if err := idx.Validate(); err != nil {
		report.IndexProblem = err.Error()
	}
	return report, nil
}
