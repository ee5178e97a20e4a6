package career

import (
	"strings"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

// Totals is a field-wise sum of stat rows plus the rates derived from it.
// Rates are nil when their denominator is zero.
type Totals struct {
	GP            int      `json:"gp"`
	Pts           int      `json:"pts"`
	Reb           int      `json:"reb"`
	TwoPM         int      `json:"twoPM"`
	TwoPA         int      `json:"twoPA"`
	ThreePM       int      `json:"threePM"`
	ThreePA       int      `json:"threePA"`
	FTM           int      `json:"ftM"`
	FTA           int      `json:"ftA"`
	FGM           int      `json:"fgM"`
	FGA           int      `json:"fgA"`
	FGPct         *float64 `json:"fgPct"`
	ThreePct      *float64 `json:"threePct"`
	FTPct         *float64 `json:"ftPct"`
	PPG           *float64 `json:"ppg"`
	RPG           *float64 `json:"rpg"`
	TenPlusGames  int      `json:"tenPlusGames"`
	DoubleDoubles int      `json:"doubleDoubles"`
}

func (t *Totals) addLine(l GameLine) {
	t.GP++
	t.Pts += l.Pts
	t.Reb += l.Reb
	t.TwoPM += l.TwoPM
	t.TwoPA += l.TwoPA
	t.ThreePM += l.ThreePM
	t.ThreePA += l.ThreePA
	t.FTM += l.FTM
	t.FTA += l.FTA
	if l.TenPlus {
		t.TenPlusGames++
	}
	if l.DoubleDouble {
		t.DoubleDoubles++
	}
}

func (t *Totals) addTotals(o Totals) {
	t.GP += o.GP
	t.Pts += o.Pts
	t.Reb += o.Reb
	t.TwoPM += o.TwoPM
	t.TwoPA += o.TwoPA
	t.ThreePM += o.ThreePM
	t.ThreePA += o.ThreePA
	t.FTM += o.FTM
	t.FTA += o.FTA
	t.TenPlusGames += o.TenPlusGames
	t.DoubleDoubles += o.DoubleDoubles
}

// derive recomputes every derived field from the counts.
func (t *Totals) derive() {
	t.FGM = t.TwoPM + t.ThreePM
	t.FGA = t.TwoPA + t.ThreePA
	t.FGPct = ratio(t.FGM, t.FGA)
	t.ThreePct = ratio(t.ThreePM, t.ThreePA)
	t.FTPct = ratio(t.FTM, t.FTA)
	t.PPG = ratio(t.Pts, t.GP)
	t.RPG = ratio(t.Reb, t.GP)
}

func ratio(num, den int) *float64 {
	if den <= 0 {
		return nil
	}
	v := float64(num) / float64(den)
	return &v
}

// GameLine is a canonical per-game row as written to the career artifact.
type GameLine struct {
	GameID       string `json:"gameId"`
	Date         string `json:"date,omitempty"`
	Site         string `json:"site,omitempty"`
	Opponent     string `json:"opponent,omitempty"`
	Pts          int    `json:"pts"`
	Reb          int    `json:"reb"`
	TwoPM        int    `json:"twoPM"`
	TwoPA        int    `json:"twoPA"`
	ThreePM      int    `json:"threePM"`
	ThreePA      int    `json:"threePA"`
	FTM          int    `json:"ftM"`
	FTA          int    `json:"ftA"`
	TenPlus      bool   `json:"tenPlus"`
	DoubleDouble bool   `json:"doubleDouble"`
}

func newGameLine(row season.StatRow) GameLine {
	info := season.ParseGameID(row.GameID)
	return GameLine{
		GameID:       row.GameID,
		Date:         info.Date,
		Site:         info.Site,
		Opponent:     info.Opponent,
		Pts:          row.Points,
		Reb:          row.Rebounds,
		TwoPM:        row.TwoPM,
		TwoPA:        row.TwoPA,
		ThreePM:      row.ThreePM,
		ThreePA:      row.ThreePA,
		FTM:          row.FTM,
		FTA:          row.FTA,
		TenPlus:      row.IsTenPlus(),
		DoubleDouble: row.IsDoubleDouble(),
	}
}

type Participation struct {
	SportCode     program.Code `json:"sportCode"`
	SeasonYearEnd int          `json:"seasonYearEnd"`
	Level         string       `json:"level"`
	Role          string       `json:"role"`
}

type Season struct {
	SportCode     program.Code `json:"sportCode"`
	SeasonYearEnd int          `json:"seasonYearEnd"`
	Level         string       `json:"level"`
	OnRoster      bool         `json:"onRoster"`
	GamesPlayed   int          `json:"gamesPlayed"`
	Totals        Totals       `json:"totals"`
	GameStats     []GameLine   `json:"gameStats"`
}

// BestGame is the highest non-zero single-game value and how many games reached it.
type BestGame struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

type BestGames struct {
	Points   *BestGame `json:"points"`
	Rebounds *BestGame `json:"rebounds"`
}

// Career is everything known about one canonical player.
type Career struct {
	PlayerID      string          `json:"playerID"`
	IDBase        string          `json:"playerIDBase"`
	IDSuffix      string          `json:"playerIDSuffix"`
	Jersey        string          `json:"jersey"`
	First         string          `json:"first"`
	Last          string          `json:"last"`
	Name          string          `json:"name"`
	Position      string          `json:"pos"`
	Grade         string          `json:"grade"`
	GradeFull     string          `json:"gradeFull"`
	GradYear      *int            `json:"gradYear"`
	Aliases       []string        `json:"aliases"`
	Participation []Participation `json:"participation"`
	Seasons       []Season        `json:"seasons"`
	Totals        Totals          `json:"totals"`
	BestGames     BestGames       `json:"bestGames"`
}

// LastName returns the explicit last name, or derives one from Name ("Doe, Jane" or "Jane Doe").
func (c Career) LastName() string {
	if c.Last != "" {
		return c.Last
	}
	name := strings.TrimSpace(c.Name)
	if before, _, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(before)
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Summary counts what a fold kept and what it skipped.
type Summary struct {
	Program           program.Code
	Seasons           int
	Careers           int
	Rows              int
	RowsKept          int
	EmptyIDRows       int
	UnmappedRows      int
	RowsWithoutRoster int
	RosterSkipped     int
	RosterDuplicates  int
	RosterOnlySeasons int
}

type Result struct {
	Careers map[string]*Career
	Summary Summary
}
