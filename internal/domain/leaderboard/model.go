package leaderboard

import (
	"errors"

	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
)

var ErrUnknownKey = errors.New("unknown leaderboard key")

// Key names a numeric column of a row. Counting keys are always defined; rate keys may be nil.
type Key string

const (
	KeyGP            Key = "gp"
	KeyPts           Key = "pts"
	KeyReb           Key = "reb"
	KeyFGM           Key = "fgM"
	KeyFGA           Key = "fgA"
	KeyThreePM       Key = "threePM"
	KeyThreePA       Key = "threePA"
	KeyFTM           Key = "ftM"
	KeyFTA           Key = "ftA"
	KeyPPG           Key = "ppg"
	KeyRPG           Key = "rpg"
	KeyFGPct         Key = "fgPct"
	KeyThreePct      Key = "threePct"
	KeyFTPct         Key = "ftPct"
	KeyDoubleDoubles Key = "doubleDoubles"
	KeyTenPlusGames  Key = "tenPlusGames"
)

func count(n int) *float64 {
	v := float64(n)
	return &v
}

var accessors = map[Key]func(career.Totals) *float64{
	KeyGP:            func(t career.Totals) *float64 { return count(t.GP) },
	KeyPts:           func(t career.Totals) *float64 { return count(t.Pts) },
	KeyReb:           func(t career.Totals) *float64 { return count(t.Reb) },
	KeyFGM:           func(t career.Totals) *float64 { return count(t.FGM) },
	KeyFGA:           func(t career.Totals) *float64 { return count(t.FGA) },
	KeyThreePM:       func(t career.Totals) *float64 { return count(t.ThreePM) },
	KeyThreePA:       func(t career.Totals) *float64 { return count(t.ThreePA) },
	KeyFTM:           func(t career.Totals) *float64 { return count(t.FTM) },
	KeyFTA:           func(t career.Totals) *float64 { return count(t.FTA) },
	KeyPPG:           func(t career.Totals) *float64 { return t.PPG },
	KeyRPG:           func(t career.Totals) *float64 { return t.RPG },
	KeyFGPct:         func(t career.Totals) *float64 { return t.FGPct },
	KeyThreePct:      func(t career.Totals) *float64 { return t.ThreePct },
	KeyFTPct:         func(t career.Totals) *float64 { return t.FTPct },
	KeyDoubleDoubles: func(t career.Totals) *float64 { return count(t.DoubleDoubles) },
	KeyTenPlusGames:  func(t career.Totals) *float64 { return count(t.TenPlusGames) },
}

func (k Key) Valid() bool {
	_, ok := accessors[k]
	return ok
}

// Value reads k from totals; nil means undefined.
func (k Key) Value(t career.Totals) *float64 {
	get, ok := accessors[k]
	if !ok {
		return nil
	}
	return get(t)
}

type Direction int

const (
	Desc Direction = iota
	Asc
)

type SortKey struct {
	Key       Key
	Direction Direction
}

// Policy describes one ranking: its key chain, how many rows to keep, and which rows qualify.
type Policy struct {
	Keys    []SortKey
	Limit   int
	Qualify func(Row) bool
}

// Row is one player's program totals as seen by the ranker.
type Row struct {
	PlayerID string
	Name     string
	Totals   career.Totals
}

type Entry struct {
	Rank     int           `json:"rank"`
	PlayerID string        `json:"playerID"`
	Name     string        `json:"name"`
	Value    *float64      `json:"value"`
	Totals   career.Totals `json:"totals"`
}

type Board struct {
	Key     Key     `json:"key"`
	Title   string  `json:"title"`
	Minimum string  `json:"minimum,omitempty"`
	Entries []Entry `json:"entries"`
}
