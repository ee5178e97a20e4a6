package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
)

// IdentityRepository keeps the identity store in memory. Saves are counted so callers can
// assert on persistence.
type IdentityRepository struct {
	mu     sync.RWMutex
	index  identity.Index
	merges identity.MergeTable
	saves  int
}

func NewIdentityRepository(idx identity.Index, merges identity.MergeTable) *IdentityRepository {
	return &IdentityRepository{index: cloneIndex(idx), merges: maps.Clone(merges)}
}

func (r *IdentityRepository) LoadIndex(_ context.Context) (identity.Index, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneIndex(r.index), nil
}

func (r *IdentityRepository) SaveIndex(_ context.Context, idx identity.Index) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = cloneIndex(idx)
	r.saves++
	return nil
}

func (r *IdentityRepository) LoadMerges(_ context.Context) (identity.MergeTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := maps.Clone(r.merges)
	if out == nil {
		out = identity.MergeTable{}
	}
	return out, nil
}

func (r *IdentityRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func cloneIndex(idx identity.Index) identity.Index {
	out := identity.Index{
		People:  make(map[string]identity.Person, len(idx.People)),
		ByAlias: maps.Clone(idx.ByAlias),
		Meta:    idx.Meta,
	}
	if out.ByAlias == nil {
		out.ByAlias = map[string]string{}
	}
	for id, p := range idx.People {
		p.Roles = append([]string(nil), p.Roles...)
		p.Aliases = append([]string(nil), p.Aliases...)
		out.People[id] = p
	}
	return out
}
