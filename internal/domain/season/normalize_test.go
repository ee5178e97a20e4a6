package season

import (
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TopLevelShape(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"roster": []any{
			map[string]any{"playerId": "A1", "name": "Jane Doe", "jersey": float64(12), "gradYear": float64(2026)},
			"not an object",
		},
		"gameStats": []any{
			map[string]any{"playerId": "A1", "gameId": "G1", "pts": float64(10), "reb": float64(5), "2PM": float64(3), "twoPA": float64(6), "3PM": float64(1), "3PA": float64(2), "FTM": float64(1), "ftA": float64(1)},
		},
	}

	rec := Normalize(program.CodeGWBB, 2025, "2025.json", doc)
	require.Len(t, rec.Roster, 1)
	require.Len(t, rec.GameStats, 1)
	assert.Equal(t, 2025, rec.YearEnd)
	assert.Equal(t, "A1", rec.Roster[0].RawID)
	assert.Equal(t, "12", rec.Roster[0].Jersey)
	assert.Equal(t, 2026, rec.Roster[0].GradYear)

	row := rec.GameStats[0]
	assert.Equal(t, "G1", row.GameID)
	assert.Equal(t, 3, row.TwoPM)
	assert.Equal(t, 6, row.TwoPA)
	assert.Equal(t, 1, row.ThreePM)
	assert.Equal(t, 2, row.ThreePA)
	assert.Equal(t, 1, row.FTM)
	assert.Equal(t, 1, row.FTA)
	assert.Equal(t, 10, row.Points)
	assert.Equal(t, 5, row.Rebounds)
}

func TestNormalize_NestedShapeAndYearOverride(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"season": map[string]any{
			"seasonYear": float64(2019),
			"players":    []any{map[string]any{"PlayerID": "SMIANN2019", "FirstName": "Ann", "LastName": "Smith"}},
			"stats":      []any{map[string]any{"PlayerID": "SMIANN2019", "Pts": "7", "Reb": "bad"}},
			"schedule":   []any{map[string]any{"GameID": "LWBB2019-20190110-H-Central", "Outcome": "W", "Points for": float64(50), "PA": float64(40)}},
		},
	}

	rec := Normalize(program.CodeLWBB, 2020, "2020.json", doc)
	assert.Equal(t, 2019, rec.YearEnd)
	require.Len(t, rec.Roster, 1)
	assert.Equal(t, "Ann Smith", rec.Roster[0].Name)
	require.Len(t, rec.GameStats, 1)
	assert.Equal(t, 7, rec.GameStats[0].Points)
	assert.Equal(t, 0, rec.GameStats[0].Rebounds)
	require.Len(t, rec.Schedule, 1)
	require.NotNil(t, rec.Schedule[0].PointsFor)
	assert.Equal(t, 50, *rec.Schedule[0].PointsFor)
	assert.Equal(t, 40, *rec.Schedule[0].PointsAgainst)
}

func TestNormalize_MissingSectionsAreEmpty(t *testing.T) {
	t.Parallel()

	rec := Normalize(program.CodeGWBB, 2021, "2021.json", map[string]any{})
	if len(rec.Roster) != 0 || len(rec.GameStats) != 0 || len(rec.Schedule) != 0 {
		t.Fatalf("expected empty record, got %+v", rec)
	}
}

func TestStatRow_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    map[string]any
		tenUp  bool
		double bool
	}{
		{name: "derived from counts", row: map[string]any{"pts": float64(12), "reb": float64(10)}, tenUp: true, double: true},
		{name: "below thresholds", row: map[string]any{"pts": float64(9), "reb": float64(10)}, tenUp: false, double: false},
		{name: "string true flag", row: map[string]any{"pts": float64(2), "doubleDouble": "true"}, tenUp: false, double: true},
		{name: "numeric one flag", row: map[string]any{"pts": float64(2), "doubleDouble": float64(1)}, tenUp: false, double: true},
		{name: "string one flag", row: map[string]any{"pts": float64(2), "doubleDouble": "1"}, tenUp: false, double: true},
		{name: "explicit false wins", row: map[string]any{"pts": float64(20), "reb": float64(11), "doubleDouble": false, "tenPlus": false}, tenUp: false, double: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := NormalizeStatRow(tt.row)
			if got := row.IsTenPlus(); got != tt.tenUp {
				t.Fatalf("IsTenPlus() = %v, want %v", got, tt.tenUp)
			}
			if got := row.IsDoubleDouble(); got != tt.double {
				t.Fatalf("IsDoubleDouble() = %v, want %v", got, tt.double)
			}
		})
	}
}

func TestRosterEntry_FullName(t *testing.T) {
	t.Parallel()

	if got := (RosterEntry{First: "Ann", Last: "Smith"}).FullName(); got != "Ann Smith" {
		t.Fatalf("FullName() = %q", got)
	}
	if got := (RosterEntry{Name: "Smith, Ann", First: "A"}).FullName(); got != "Smith, Ann" {
		t.Fatalf("FullName() = %q", got)
	}
}
