package career

import (
	"sort"
	"strings"
)

// IndexEntry is one row of the player index.
type IndexEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Last     string `json:"last"`
	First    string `json:"first"`
	GradYear *int   `json:"gradYear"`
}

// BuildIndex lists careers ordered by upper-cased last name, then full name, then id.
func BuildIndex(careers []*Career) []IndexEntry {
	out := make([]IndexEntry, 0, len(careers))
	for _, c := range careers {
		if c == nil {
			continue
		}
		out = append(out, IndexEntry{
			ID:       c.PlayerID,
			Name:     c.Name,
			Last:     c.LastName(),
			First:    c.First,
			GradYear: c.GradYear,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if la, lb := strings.ToUpper(a.Last), strings.ToUpper(b.Last); la != lb {
			return la < lb
		}
		if na, nb := strings.ToUpper(a.Name), strings.ToUpper(b.Name); na != nb {
			return na < nb
		}
		return a.ID < b.ID
	})
	return out
}

// Sorted returns the careers of m ordered by player id.
func Sorted(m map[string]*Career) []*Career {
	out := make([]*Career, 0, len(m))
	for _, c := range m {
		if c != nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// Combine merges per-program career maps into one career per player. Inputs are not modified.
func Combine(sets ...map[string]*Career) map[string]*Career {
	out := make(map[string]*Career)
	for _, set := range sets {
		for _, c := range Sorted(set) {
			if existing, ok := out[c.PlayerID]; ok {
				existing.Merge(c)
				continue
			}
			out[c.PlayerID] = c.clone()
		}
	}
	return out
}

func (c *Career) clone() *Career {
	cp := *c
	if c.GradYear != nil {
		gy := *c.GradYear
		cp.GradYear = &gy
	}
	cp.Aliases = append([]string(nil), c.Aliases...)
	cp.Participation = append([]Participation(nil), c.Participation...)
	cp.Seasons = append([]Season(nil), c.Seasons...)
	return &cp
}
