package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
)

var identityJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// IdentityRepository persists the person index and reads the hard-merge table.
type IdentityRepository struct {
	indexPath      string
	mergesPath     string
	initialNextPID int
}

func NewIdentityRepository(indexPath, mergesPath string, initialNextPID int) *IdentityRepository {
	if initialNextPID <= 0 {
		initialNextPID = identity.DefaultNextPID
	}
	return &IdentityRepository{
		indexPath:      indexPath,
		mergesPath:     mergesPath,
		initialNextPID: initialNextPID,
	}
}

// LoadIndex reads the store. A missing store is an empty namespace starting at the
// configured counter.
func (r *IdentityRepository) LoadIndex(ctx context.Context) (identity.Index, error) {
	if err := ctx.Err(); err != nil {
		return identity.Index{}, err
	}

	idx := identity.NewIndex()
	raw, err := os.ReadFile(r.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			idx.Meta.NextPID = r.initialNextPID
			return idx, nil
		}
		return identity.Index{}, crerr.Wrapf(err, "read identity index %s", r.indexPath)
	}
	if err := identityJSON.Unmarshal(raw, &idx); err != nil {
		return identity.Index{}, crerr.Wrapf(identity.ErrInvalidIndex, "%s: %v", r.indexPath, err)
	}
	if idx.People == nil {
		idx.People = map[string]identity.Person{}
	}
	if idx.ByAlias == nil {
		idx.ByAlias = map[string]string{}
	}
	if idx.Meta.NextPID <= 0 {
		idx.Meta.NextPID = r.initialNextPID
	}
	return idx, nil
}

// SaveIndex writes idx back. Keys this program does not model, at the top level and on each
// person, are carried over from the file being replaced.
func (r *IdentityRepository) SaveIndex(ctx context.Context, idx identity.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := map[string]any{}
	if raw, err := os.ReadFile(r.indexPath); err == nil {
		if err := identityJSON.Unmarshal(raw, &doc); err != nil {
			doc = map[string]any{}
		}
	}

	existingPeople, _ := doc["people"].(map[string]any)
	people := make(map[string]any, len(idx.People))
	for id, person := range idx.People {
		fields, _ := existingPeople[id].(map[string]any)
		if fields == nil {
			fields = map[string]any{}
		}
		if err := overlay(fields, person); err != nil {
			return crerr.Wrapf(err, "encode person %s", id)
		}
		people[id] = fields
	}
	doc["people"] = people

	byAlias := make(map[string]any, len(idx.ByAlias))
	for alias, pid := range idx.ByAlias {
		byAlias[alias] = pid
	}
	doc["byAlias"] = byAlias

	meta, _ := doc["meta"].(map[string]any)
	if meta == nil {
		meta = map[string]any{}
	}
	if err := overlay(meta, idx.Meta); err != nil {
		return crerr.Wrap(err, "encode meta")
	}
	doc["meta"] = meta

	out, err := identityJSON.MarshalIndent(doc, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode identity index")
	}
	_, err = writeFileAtomic(r.indexPath, append(out, '\n'))
	return err
}

// LoadMerges reads the "hard_merge" table. A missing file means no merges.
func (r *IdentityRepository) LoadMerges(ctx context.Context) (identity.MergeTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.mergesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return identity.MergeTable{}, nil
		}
		return nil, crerr.Wrapf(err, "read merge table %s", r.mergesPath)
	}

	var doc struct {
		HardMerge map[string]string `json:"hard_merge"`
	}
	if err := identityJSON.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrapf(identity.ErrInvalidIndex, "%s: %v", r.mergesPath, err)
	}
	if doc.HardMerge == nil {
		return identity.MergeTable{}, nil
	}
	return identity.MergeTable(doc.HardMerge), nil
}

// overlay copies the JSON fields of v onto dst.
func overlay(dst map[string]any, v any) error {
	raw, err := identityJSON.Marshal(v)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := identityJSON.Unmarshal(raw, &fields); err != nil {
		return err
	}
	for k, val := range fields {
		dst[k] = val
	}
	return nil
}
