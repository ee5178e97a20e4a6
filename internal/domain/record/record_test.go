package record

import (
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(n int) *int { return &n }

func game(outcome string, pf, pa *int, notes string) season.ScheduleEntry {
	return season.ScheduleEntry{Outcome: outcome, PointsFor: pf, PointsAgainst: pa, Notes: notes}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	rec := season.Record{YearEnd: 2025, Schedule: []season.ScheduleEntry{
		game("W", score(50), score(40), ""),
		game("L 40-41", score(40), score(41), ""),
		game("", score(60), score(30), ""),
		game("", score(30), score(60), ""),
		game("Cancelled", nil, nil, ""),
		game("Tie", score(0), score(0), "COVID protocol"),
		game("", nil, nil, "postponed"),
	}}

	got := Summarize(rec)
	assert.Equal(t, Season{
		SeasonYearEnd: 2025,
		SeasonLabel:   "2024–25",
		Wins:          2,
		Losses:        2,
		PointsFor:     180,
		PointsAgainst: 171,
		Cancelled:     2,
	}, got)
}

func TestOverall(t *testing.T) {
	t.Parallel()

	recs := []season.Record{
		{YearEnd: 2021, Schedule: []season.ScheduleEntry{game("W", score(1), score(0), ""), game("T", score(3), score(3), "")}},
		{YearEnd: 2019, Schedule: []season.ScheduleEntry{game("L", score(0), score(1), ""), game("W", score(2), score(1), "")}},
	}

	got := Overall(program.CodeLWBB, recs)
	assert.Equal(t, 2, got.Wins)
	assert.Equal(t, 1, got.Losses)
	assert.Equal(t, 1, got.Ties)
	assert.InDelta(t, 2.0/3.0, got.Pct, 1e-9)
	require.NotNil(t, got.FirstSeasonYearEnd)
	assert.Equal(t, 2019, *got.FirstSeasonYearEnd)
	assert.Equal(t, 2021, *got.LastSeasonYearEnd)
	assert.Equal(t, 2019, got.Seasons[0].SeasonYearEnd)
}

func TestOverall_Empty(t *testing.T) {
	t.Parallel()

	got := Overall(program.CodeGWBB, nil)
	if got.Pct != 0 || got.FirstSeasonYearEnd != nil || got.LastSeasonYearEnd != nil {
		t.Fatalf("unexpected empty record %+v", got)
	}
}
