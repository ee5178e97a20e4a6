package career

import (
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_Order(t *testing.T) {
	t.Parallel()

	gy := 2020
	careers := []*Career{
		{PlayerID: "p_3", Name: "amy smith", First: "amy"},
		{PlayerID: "p_1", Name: "Zoe Adams", Last: "Adams", First: "Zoe", GradYear: &gy},
		{PlayerID: "p_2", Name: "Amy Smith"},
		{PlayerID: "p_0", Name: "Smith, Bea"},
		nil,
	}

	got := BuildIndex(careers)
	require.Len(t, got, 4)
	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"p_1", "p_2", "p_3", "p_0"}, ids)
	assert.Equal(t, "Smith", got[3].Last)
	assert.Equal(t, &gy, got[0].GradYear)
}

func TestCombine_LeavesInputsUntouched(t *testing.T) {
	t.Parallel()

	doc := func(pts float64) map[string]any {
		return map[string]any{
			"roster":    []any{map[string]any{"playerID": "p_0000000040", "name": "Kim Lee"}},
			"gameStats": []any{map[string]any{"playerID": "p_0000000040", "pts": pts}},
		}
	}
	g := Aggregate([]season.Record{season.Normalize(program.CodeGWBB, 2020, "2020.json", doc(4))}, passthrough(), gwbb).Careers
	l := Aggregate([]season.Record{season.Normalize(program.CodeLWBB, 2018, "2018.json", doc(6))}, passthrough(), lwbb).Careers

	all := Combine(g, l)
	require.Len(t, all, 1)
	assert.Equal(t, 10, all["p_0000000040"].Totals.Pts)
	assert.Equal(t, 2018, all["p_0000000040"].Seasons[0].SeasonYearEnd)
	assert.Equal(t, 4, g["p_0000000040"].Totals.Pts)
	assert.Len(t, g["p_0000000040"].Seasons, 1)
}
