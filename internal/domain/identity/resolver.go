package identity

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// IDFields lists the record keys that may carry a player identifier, in priority order.
var IDFields = []string{"playerID", "playerId", "PlayerID", "PlayerId", "personID", "personId", "id", "ID"}

type Status string

const (
	StatusMapped   Status = "mapped"
	StatusUnmapped Status = "unmapped"
	StatusEmpty    Status = "empty"
)

// Result is the per-record outcome of a resolution.
type Result struct {
	Raw    string
	ID     string
	Status Status
}

func (r Result) OK() bool {
	return r.Status == StatusMapped
}

// Stats counts resolution outcomes for the build summary.
type Stats struct {
	Mapped   int
	Unmapped int
	Empty    int
	Cycles   int
}

type Options struct {
	// AllowLegacy resolves ids with no alias entry to themselves after merge resolution.
	AllowLegacy bool
}

// Resolver maps raw identifiers to canonical person ids.
type Resolver struct {
	byAlias     map[string]string
	merges      MergeTable
	allowLegacy bool
	stats       Stats
	unmapped    map[string]struct{}
}

func NewResolver(idx Index, merges MergeTable, opts Options) *Resolver {
	byAlias := idx.ByAlias
	if byAlias == nil {
		byAlias = map[string]string{}
	}
	if merges == nil {
		merges = MergeTable{}
	}
	return &Resolver{
		byAlias:     byAlias,
		merges:      merges,
		allowLegacy: opts.AllowLegacy,
		unmapped:    make(map[string]struct{}),
	}
}

// ResolveFields extracts the raw id from a decoded record and resolves it.
func (r *Resolver) ResolveFields(fields map[string]any) Result {
	return r.Resolve(ExtractRawID(fields))
}

func (r *Resolver) Resolve(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		r.stats.Empty++
		return Result{Status: StatusEmpty}
	}
	if IsCanonical(raw) {
		r.stats.Mapped++
		return Result{Raw: raw, ID: raw, Status: StatusMapped}
	}

	cur, cycle := r.merges.Follow(raw)
	if cycle {
		r.stats.Cycles++
	}
	if IsCanonical(cur) {
		r.stats.Mapped++
		return Result{Raw: raw, ID: cur, Status: StatusMapped}
	}

	if pid, ok := r.byAlias[cur]; ok && IsCanonical(pid) {
		r.stats.Mapped++
		return Result{Raw: raw, ID: pid, Status: StatusMapped}
	}
	if r.allowLegacy {
		r.stats.Mapped++
		return Result{Raw: raw, ID: cur, Status: StatusMapped}
	}

	r.stats.Unmapped++
	r.unmapped[cur] = struct{}{}
	return Result{Raw: raw, ID: cur, Status: StatusUnmapped}
}

func (r *Resolver) Stats() Stats {
	return r.stats
}

// Unmapped returns the distinct post-merge ids that had no alias entry.
func (r *Resolver) Unmapped() []string {
	out := make([]string, 0, len(r.unmapped))
	for id := range r.unmapped {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ExtractRawID returns the first non-empty identifier among IDFields.
func ExtractRawID(fields map[string]any) string {
	for _, key := range IDFields {
		if v := RawString(fields[key]); v != "" {
			return v
		}
	}
	return ""
}

// RawString renders a decoded JSON scalar as an identifier string.
func RawString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
