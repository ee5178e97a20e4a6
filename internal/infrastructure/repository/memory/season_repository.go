package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

type SeasonRepository struct {
	mu        sync.RWMutex
	byProgram map[program.Code][]season.Record
}

func NewSeasonRepository(records []season.Record) *SeasonRepository {
	byProgram := make(map[program.Code][]season.Record)
	for _, item := range records {
		byProgram[item.Program] = append(byProgram[item.Program], item)
	}
	for code := range byProgram {
		sortRecords(byProgram[code])
	}
	return &SeasonRepository{byProgram: byProgram}
}

func (r *SeasonRepository) ListByProgram(_ context.Context, p program.Program) ([]season.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byProgram[p.Code]
	out := make([]season.Record, 0, len(items))
	out = append(out, items...)
	return out, nil
}

// Put adds or replaces the record for its program and year.
func (r *SeasonRepository) Put(_ context.Context, rec season.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byProgram[rec.Program]
	for i := range items {
		if items[i].YearEnd == rec.YearEnd {
			items[i] = rec
			return
		}
	}
	items = append(items, rec)
	sortRecords(items)
	r.byProgram[rec.Program] = items
}

func sortRecords(items []season.Record) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].YearEnd < items[j].YearEnd })
}
