// Package record tallies team win/loss records from season schedules.
package record

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

type Season struct {
	SeasonYearEnd int    `json:"seasonYearEnd"`
	SeasonLabel   string `json:"seasonLabel"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	PointsFor     int    `json:"pfTotal"`
	PointsAgainst int    `json:"paTotal"`
	Cancelled     int    `json:"cancelled"`
}

type Program struct {
	Program            program.Code `json:"program"`
	Wins               int          `json:"w"`
	Losses             int          `json:"l"`
	Ties               int          `json:"t"`
	Pct                float64      `json:"pct"`
	FirstSeasonYearEnd *int         `json:"firstSeasonYearEnd"`
	LastSeasonYearEnd  *int         `json:"lastSeasonYearEnd"`
	Seasons            []Season     `json:"seasons"`
}

// Label renders a season ending in yearEnd as e.g. "2024–25".
func Label(yearEnd int) string {
	return fmt.Sprintf("%d–%02d", yearEnd-1, yearEnd%100)
}

// IsCancelled reports games that never produced a final: anything marked cancelled, and the
// 0-0 placeholders recorded for covid cancellations.
func IsCancelled(g season.ScheduleEntry) bool {
	outcome := strings.ToLower(g.Outcome)
	notes := strings.ToLower(g.Notes)
	if strings.Contains(outcome, "cancel") || strings.Contains(notes, "cancel") {
		return true
	}
	return g.PointsFor != nil && g.PointsAgainst != nil &&
		*g.PointsFor == 0 && *g.PointsAgainst == 0 &&
		strings.Contains(notes, "covid")
}

// Summarize tallies one season. Only games with both scores count; the outcome letter
// decides the result and the score is the fallback.
func Summarize(rec season.Record) Season {
	out := Season{SeasonYearEnd: rec.YearEnd, SeasonLabel: Label(rec.YearEnd)}
	for _, g := range rec.Schedule {
		if IsCancelled(g) {
			out.Cancelled++
			continue
		}
		if g.PointsFor == nil || g.PointsAgainst == nil {
			continue
		}
		pf, pa := *g.PointsFor, *g.PointsAgainst
		out.PointsFor += pf
		out.PointsAgainst += pa

		outcome := strings.ToLower(strings.TrimSpace(g.Outcome))
		switch {
		case strings.HasPrefix(outcome, "w"):
			out.Wins++
		case strings.HasPrefix(outcome, "l"):
			out.Losses++
		case strings.HasPrefix(outcome, "t"):
			out.Ties++
		case pf > pa:
			out.Wins++
		case pa > pf:
			out.Losses++
		default:
			out.Ties++
		}
	}
	return out
}

// Overall sums every season of a program. Pct is wins over decided games, 0 when none.
func Overall(code program.Code, records []season.Record) Program {
	out := Program{Program: code, Seasons: make([]Season, 0, len(records))}
	for _, rec := range records {
		s := Summarize(rec)
		out.Seasons = append(out.Seasons, s)
		out.Wins += s.Wins
		out.Losses += s.Losses
		out.Ties += s.Ties
	}
	sort.SliceStable(out.Seasons, func(i, j int) bool {
		return out.Seasons[i].SeasonYearEnd < out.Seasons[j].SeasonYearEnd
	})
	if decided := out.Wins + out.Losses; decided > 0 {
		out.Pct = float64(out.Wins) / float64(decided)
	}
	if n := len(out.Seasons); n > 0 {
		first, last := out.Seasons[0].SeasonYearEnd, out.Seasons[n-1].SeasonYearEnd
		out.FirstSeasonYearEnd = &first
		out.LastSeasonYearEnd = &last
	}
	return out
}
