package leaderboard

import (
	"sort"

	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
)

// RowsFrom flattens careers into ranker rows, ordered by player id.
func RowsFrom(careers map[string]*career.Career) []Row {
	rows := make([]Row, 0, len(careers))
	for pid, c := range careers {
		if c == nil {
			continue
		}
		rows = append(rows, Row{PlayerID: pid, Name: c.Name, Totals: c.Totals})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })
	return rows
}

// Rank filters rows by the policy, sorts them by the key chain and truncates to the limit.
// Undefined values sort after defined ones whatever the direction; remaining ties fall back
// to ascending player id, so the result is independent of input order.
func Rank(rows []Row, policy Policy) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if policy.Qualify != nil && !policy.Qualify(r) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], policy.Keys)
	})

	if policy.Limit > 0 && len(out) > policy.Limit {
		out = out[:policy.Limit]
	}
	return out
}

func less(a, b Row, keys []SortKey) bool {
	for _, sk := range keys {
		av, bv := sk.Key.Value(a.Totals), sk.Key.Value(b.Totals)
		switch {
		case av == nil && bv == nil:
			continue
		case av == nil:
			return false
		case bv == nil:
			return true
		case *av == *bv:
			continue
		case sk.Direction == Asc:
			return *av < *bv
		default:
			return *av > *bv
		}
	}
	return a.PlayerID < b.PlayerID
}

// Entries numbers ranked rows 1..n and attaches the primary key value.
func Entries(rows []Row, primary Key) []Entry {
	out := make([]Entry, 0, len(rows))
	for i, r := range rows {
		out = append(out, Entry{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Value:    primary.Value(r.Totals),
			Totals:   r.Totals,
		})
	}
	return out
}
