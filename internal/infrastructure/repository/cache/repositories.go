package cache

import (
	"context"
	"maps"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	basecache "github.com/riskibarqy/hoops-almanac/internal/platform/cache"
)

// SeasonRepository memoises per-program loads so every consumer in a command shares one read.
type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) ListByProgram(ctx context.Context, p program.Program) ([]season.Record, error) {
	key := "season:list:" + string(p.Code) + ":" + p.DataDir
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]season.Record, error) {
		return r.next.ListByProgram(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return append([]season.Record(nil), items...), nil
}

// IdentityRepository caches the merge table and index reads; saving drops the cached index.
type IdentityRepository struct {
	next  identity.Repository
	cache *basecache.Store
}

func NewIdentityRepository(next identity.Repository, cache *basecache.Store) *IdentityRepository {
	return &IdentityRepository{next: next, cache: cache}
}

const (
	identityIndexKey  = "identity:index"
	identityMergesKey = "identity:merges"
)

func (r *IdentityRepository) LoadIndex(ctx context.Context) (identity.Index, error) {
	idx, err := basecache.Load(ctx, r.cache, identityIndexKey, r.next.LoadIndex)
	if err != nil {
		return identity.Index{}, err
	}
	return copyIndex(idx), nil
}

func (r *IdentityRepository) SaveIndex(ctx context.Context, idx identity.Index) error {
	if err := r.next.SaveIndex(ctx, idx); err != nil {
		return err
	}
	r.cache.Invalidate(identityIndexKey)
	return nil
}

func (r *IdentityRepository) LoadMerges(ctx context.Context) (identity.MergeTable, error) {
	merges, err := basecache.Load(ctx, r.cache, identityMergesKey, r.next.LoadMerges)
	if err != nil {
		return nil, err
	}
	out := maps.Clone(merges)
	if out == nil {
		out = identity.MergeTable{}
	}
	return out, nil
}

// copyIndex gives callers maps they may mutate without touching the cached value.
func copyIndex(idx identity.Index) identity.Index {
	out := identity.Index{
		People:  maps.Clone(idx.People),
		ByAlias: maps.Clone(idx.ByAlias),
		Meta:    idx.Meta,
	}
	if out.People == nil {
		out.People = map[string]identity.Person{}
	}
	if out.ByAlias == nil {
		out.ByAlias = map[string]string{}
	}
	return out
}
