package season

import (
	"context"
	"strings"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
)

// Record is one program-year as read from a <YYYY>.json file. It is never mutated after load.
type Record struct {
	Program    program.Code
	YearEnd    int
	SourceFile string
	Roster     []RosterEntry
	Schedule   []ScheduleEntry
	GameStats  []StatRow
}

// RosterEntry is a player's participation in one season.
type RosterEntry struct {
	RawID     string
	IDBase    string
	IDSuffix  string
	Jersey    string
	First     string
	Last      string
	Name      string
	Position  string
	Grade     string
	GradeFull string
	GradYear  int
}

// FullName prefers the explicit name and falls back to "First Last".
func (r RosterEntry) FullName() string {
	if r.Name != "" {
		return r.Name
	}
	return strings.TrimSpace(r.First + " " + r.Last)
}

type ScheduleEntry struct {
	GameID        string
	Date          string
	Opponent      string
	Site          string
	Outcome       string
	Notes         string
	PointsFor     *int
	PointsAgainst *int
}

// StatRow is one player's line for one game.
type StatRow struct {
	RawPlayerID  string
	GameID       string
	Jersey       string
	PlayerName   string
	TwoPM        int
	TwoPA        int
	ThreePM      int
	ThreePA      int
	FTM          int
	FTA          int
	Points       int
	Rebounds     int
	TenPlus      *bool
	DoubleDouble *bool
}

// IsTenPlus uses the recorded flag when present and otherwise derives it from points.
func (r StatRow) IsTenPlus() bool {
	if r.TenPlus != nil {
		return *r.TenPlus
	}
	return r.Points >= 10
}

// IsDoubleDouble uses the recorded flag when present and otherwise derives it from points and rebounds.
func (r StatRow) IsDoubleDouble() bool {
	if r.DoubleDouble != nil {
		return *r.DoubleDouble
	}
	return r.Points >= 10 && r.Rebounds >= 10
}

// Repository loads the season records for one program, sorted by year.
type Repository interface {
	ListByProgram(ctx context.Context, p program.Program) ([]Record, error)
}
