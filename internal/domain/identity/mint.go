package identity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/hoops-almanac/internal/platform/id"
)

// MintReport summarises one minting pass.
type MintReport struct {
	Found     int
	Canonical int
	Minted    []string
	NextPID   int
}

// Mint assigns canonical ids to every alias (after merge resolution) that has no byAlias entry.
// Aliases are processed in sorted order so repeated runs mint identically; the counter only grows.
// Ids already held by a person or an alias are skipped even when the counter lags behind them.
func (idx *Index) Mint(aliases []string, merges MergeTable) (MintReport, error) {
	idx.ensure()

	found := make(map[string]struct{}, len(aliases))
	canonical := make(map[string]struct{}, len(aliases))
	for _, raw := range aliases {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		found[raw] = struct{}{}
		resolved, _ := merges.Follow(raw)
		canonical[resolved] = struct{}{}
	}

	ordered := make([]string, 0, len(canonical))
	for alias := range canonical {
		ordered = append(ordered, alias)
	}
	sort.Strings(ordered)

	used := idx.usedIDs()
	seq := id.NewSequence(idx.Meta.NextPID)
	report := MintReport{
		Found:     len(found),
		Canonical: len(canonical),
		Minted:    make([]string, 0),
	}
	for _, alias := range ordered {
		if IsCanonical(alias) {
			continue
		}
		if _, ok := idx.ByAlias[alias]; ok {
			continue
		}

		pid, err := nextFree(seq, used)
		if err != nil {
			return report, fmt.Errorf("mint id for %s: %w", alias, err)
		}
		used[pid] = struct{}{}
		idx.ByAlias[alias] = pid
		if _, exists := idx.People[pid]; !exists {
			idx.People[pid] = Person{
				Display: alias,
				Sort:    alias,
				Roles:   []string{RolePlayer},
				Aliases: []string{alias},
			}
		}
		idx.Meta.NextPID = seq.Next()
		report.Minted = append(report.Minted, alias)
	}

	report.NextPID = idx.Meta.NextPID
	return report, nil
}

func (idx *Index) usedIDs() map[string]struct{} {
	used := make(map[string]struct{}, len(idx.People)+len(idx.ByAlias))
	for pid := range idx.People {
		used[pid] = struct{}{}
	}
	for _, pid := range idx.ByAlias {
		used[pid] = struct{}{}
	}
	return used
}

func nextFree(seq *id.Sequence, used map[string]struct{}) (string, error) {
	for {
		pid, err := seq.NewID()
		if err != nil {
			return "", err
		}
		if _, taken := used[pid]; !taken {
			return pid, nil
		}
	}
}

// Validate checks that every alias targets a canonical id and that the counter is ahead of
// every id already in use. Keys are checked in sorted order so the reported problem is stable.
func (idx Index) Validate() error {
	maxUsed := 0
	for _, alias := range sortedKeys(idx.ByAlias) {
		pid := idx.ByAlias[alias]
		if !IsCanonical(pid) {
			return fmt.Errorf("%w: alias %s maps to %q", ErrInvalidIndex, alias, pid)
		}
		maxUsed = max(maxUsed, sequenceNumber(pid))
	}
	for _, pid := range sortedKeys(idx.People) {
		if !IsCanonical(pid) {
			return fmt.Errorf("%w: person key %q is not canonical", ErrInvalidIndex, pid)
		}
		maxUsed = max(maxUsed, sequenceNumber(pid))
	}
	if maxUsed > 0 && idx.Meta.NextPID <= maxUsed {
		return fmt.Errorf("%w: nextPid=%d but %s is already in use", ErrInvalidIndex, idx.Meta.NextPID, id.Format(maxUsed))
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sequenceNumber(pid string) int {
	n := 0
	for _, c := range strings.TrimPrefix(pid, "p_") {
		n = n*10 + int(c-'0')
	}
	return n
}
