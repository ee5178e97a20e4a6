package artifact

import (
	"context"

	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/record"
)

// Stats counts what one write pass did.
type Stats struct {
	Written   int
	Unchanged int
	Pruned    int
}

// Observe counts one file as written or unchanged.
func (s *Stats) Observe(changed bool) {
	if changed {
		s.Written++
		return
	}
	s.Unchanged++
}

func (s *Stats) Add(o Stats) {
	s.Written += o.Written
	s.Unchanged += o.Unchanged
	s.Pruned += o.Pruned
}

// Repository persists the derived artifacts read by the page renderer. The bool results
// report whether the file content changed.
type Repository interface {
	WriteCareers(ctx context.Context, careers []*career.Career) (Stats, error)
	WriteIndex(ctx context.Context, entries []career.IndexEntry) (bool, error)
	WriteLeaderboards(ctx context.Context, code program.Code, boards []leaderboard.Board) (bool, error)
	WriteRecords(ctx context.Context, records []record.Program) (bool, error)
}
