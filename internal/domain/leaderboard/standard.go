package leaderboard

import (
	"fmt"
)

// DefaultLimit is the number of entries on a standard board.
const DefaultLimit = 10

// Standard describes one of the fixed record-book boards.
type Standard struct {
	Key     Key
	Title   string
	Chain   []Key
	Minimum Key
	Min     int
}

// Standards lists the record-book boards in display order. Rate boards carry a minimum
// sample so short careers cannot top them.
var Standards = []Standard{
	{Key: KeyPts, Title: "Career points", Chain: []Key{KeyPts, KeyGP}},
	{Key: KeyReb, Title: "Career rebounds", Chain: []Key{KeyReb, KeyGP}},
	{Key: KeyThreePM, Title: "Career 3-pointers made", Chain: []Key{KeyThreePM, KeyThreePA, KeyGP}},
	{Key: KeyThreePA, Title: "Career 3-pointers attempted", Chain: []Key{KeyThreePA, KeyThreePM, KeyGP}},
	{Key: KeyFTM, Title: "Career free throws made", Chain: []Key{KeyFTM, KeyFTA, KeyGP}},
	{Key: KeyFTA, Title: "Career free throws attempted", Chain: []Key{KeyFTA, KeyFTM, KeyGP}},
	{Key: KeyPPG, Title: "Career points per game", Chain: []Key{KeyPPG, KeyGP, KeyPts}, Minimum: KeyGP, Min: 30},
	{Key: KeyRPG, Title: "Career rebounds per game", Chain: []Key{KeyRPG, KeyGP, KeyReb}, Minimum: KeyGP, Min: 30},
	{Key: KeyFGPct, Title: "Career field goal percentage", Chain: []Key{KeyFGPct, KeyFGA, KeyFGM}, Minimum: KeyFGA, Min: 150},
	{Key: KeyThreePct, Title: "Career 3-point percentage", Chain: []Key{KeyThreePct, KeyThreePA, KeyThreePM}, Minimum: KeyThreePA, Min: 60},
	{Key: KeyFTPct, Title: "Career free throw percentage", Chain: []Key{KeyFTPct, KeyFTA, KeyFTM}, Minimum: KeyFTA, Min: 50},
	{Key: KeyDoubleDoubles, Title: "Career double-doubles", Chain: []Key{KeyDoubleDoubles, KeyGP, KeyReb, KeyPts}},
}

// FindStandard looks a board up by its key.
func FindStandard(key Key) (Standard, error) {
	for _, s := range Standards {
		if s.Key == key {
			return s, nil
		}
	}
	return Standard{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Policy turns the board definition into a ranking policy with the given limit.
func (s Standard) Policy(limit int) Policy {
	keys := make([]SortKey, 0, len(s.Chain))
	for _, k := range s.Chain {
		keys = append(keys, SortKey{Key: k, Direction: Desc})
	}
	p := Policy{Keys: keys, Limit: limit}
	if s.Minimum != "" {
		minKey, threshold := s.Minimum, float64(s.Min)
		p.Qualify = func(r Row) bool {
			v := minKey.Value(r.Totals)
			return v != nil && *v >= threshold
		}
	}
	return p
}

func (s Standard) minimumLabel() string {
	if s.Minimum == "" {
		return ""
	}
	return fmt.Sprintf("%s >= %d", s.Minimum, s.Min)
}

// Build ranks rows on the board and numbers the entries.
func (s Standard) Build(rows []Row, limit int) Board {
	return Board{
		Key:     s.Key,
		Title:   s.Title,
		Minimum: s.minimumLabel(),
		Entries: Entries(Rank(rows, s.Policy(limit)), s.Key),
	}
}

// BuildAll builds every standard board in display order.
func BuildAll(rows []Row, limit int) []Board {
	boards := make([]Board, 0, len(Standards))
	for _, s := range Standards {
		boards = append(boards, s.Build(rows, limit))
	}
	return boards
}
