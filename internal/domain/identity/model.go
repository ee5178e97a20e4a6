package identity

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

var (
	canonicalPattern = regexp.MustCompile(`^p_\d{10}$`)
	// LegacyPattern matches composite ids such as ABEDYL2021 (three letters of last name,
	// three letters of first name, graduation year).
	LegacyPattern = regexp.MustCompile(`\b[A-Z]{6}\d{4}\b`)
	// CanonicalRefPattern matches canonical ids embedded in arbitrary text.
	CanonicalRefPattern = regexp.MustCompile(`\bp_\d{10}\b`)
)

const (
	RolePlayer = "player"
	RoleCoach  = "coach"
)

// DefaultNextPID is the first counter value used when a store has never minted.
const DefaultNextPID = 26

// Person is the canonical identity record stored under its canonical id.
type Person struct {
	Display string   `json:"display"`
	Sort    string   `json:"sort,omitempty"`
	Roles   []string `json:"roles,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

type Meta struct {
	NextPID int    `json:"nextPid"`
	Updated string `json:"updated,omitempty"`
}

// Index is the durable identity namespace shared across builds.
type Index struct {
	People  map[string]Person `json:"people"`
	ByAlias map[string]string `json:"byAlias"`
	Meta    Meta              `json:"meta"`
}

// MergeTable maps superseded identifiers to their replacement, possibly chained.
type MergeTable map[string]string

// Repository loads and persists the identity store and merge table.
type Repository interface {
	LoadIndex(ctx context.Context) (Index, error)
	SaveIndex(ctx context.Context, idx Index) error
	LoadMerges(ctx context.Context) (MergeTable, error)
}

// IsCanonical reports whether id has the p_ + 10 digit form.
func IsCanonical(id string) bool {
	return canonicalPattern.MatchString(id)
}

// NewIndex returns an empty index with its counter at DefaultNextPID.
func NewIndex() Index {
	return Index{
		People:  make(map[string]Person),
		ByAlias: make(map[string]string),
		Meta:    Meta{NextPID: DefaultNextPID},
	}
}

func (idx *Index) ensure() {
	if idx.People == nil {
		idx.People = make(map[string]Person)
	}
	if idx.ByAlias == nil {
		idx.ByAlias = make(map[string]string)
	}
	if idx.Meta.NextPID <= 0 {
		idx.Meta.NextPID = DefaultNextPID
	}
}

// Orphans returns canonical ids from referenced that have no person record, sorted.
func (idx Index) Orphans(referenced []string) []string {
	seen := make(map[string]struct{}, len(referenced))
	out := make([]string, 0)
	for _, id := range referenced {
		id = strings.TrimSpace(id)
		if !IsCanonical(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := idx.People[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Follow walks the merge chain starting at id until it reaches an id with no replacement.
// A cycle stops the walk at the first revisited id and reports cycle=true.
func (m MergeTable) Follow(id string) (resolved string, cycle bool) {
	cur := id
	seen := make(map[string]struct{})
	for {
		next, ok := m[cur]
		if !ok || next == "" {
			return cur, false
		}
		if _, visited := seen[cur]; visited {
			return cur, true
		}
		seen[cur] = struct{}{}
		cur = next
	}
}
