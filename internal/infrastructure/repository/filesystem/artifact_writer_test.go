package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/artifact"
	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/record"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCareers(t *testing.T) []*career.Career {
	t.Helper()
	rec := season.Normalize(program.CodeGWBB, 2025, "2025.json", map[string]any{
		"roster": []any{
			map[string]any{"playerID": "p_0000000027", "name": "Zoe Adams", "gradYear": float64(2026)},
			map[string]any{"playerID": "p_0000000026", "first": "Jane", "last": "Doe"},
		},
		"gameStats": []any{
			map[string]any{"playerID": "p_0000000026", "pts": float64(10), "reb": float64(5), "twoPM": float64(4), "twoPA": float64(8), "ftM": float64(2), "ftA": float64(2)},
		},
	})
	resolver := identity.NewResolver(identity.NewIndex(), nil, identity.Options{})
	prog := program.Program{Code: program.CodeGWBB, IncludeRosterOnlySeasons: false}
	return career.Sorted(career.Aggregate([]season.Record{rec}, resolver, prog).Careers)
}

func writeAll(t *testing.T, w *ArtifactWriter, careers []*career.Career) artifact.Stats {
	t.Helper()
	ctx := context.Background()

	stats, err := w.WriteCareers(ctx, careers)
	require.NoError(t, err)
	_, err = w.WriteIndex(ctx, career.BuildIndex(careers))
	require.NoError(t, err)

	rows := make([]leaderboard.Row, 0, len(careers))
	for _, c := range careers {
		rows = append(rows, leaderboard.Row{PlayerID: c.PlayerID, Name: c.Name, Totals: c.Totals})
	}
	_, err = w.WriteLeaderboards(ctx, program.CodeGWBB, leaderboard.BuildAll(rows, leaderboard.DefaultLimit))
	require.NoError(t, err)
	_, err = w.WriteRecords(ctx, []record.Program{record.Overall(program.CodeGWBB, nil)})
	require.NoError(t, err)
	return stats
}

func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		out[rel] = string(raw)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestArtifactWriter_RerunIsByteIdentical(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewArtifactWriter(dir, nil)
	careers := sampleCareers(t)

	first := writeAll(t, w, careers)
	assert.Equal(t, 2, first.Written)
	before := snapshot(t, dir)

	second := writeAll(t, w, sampleCareers(t))
	assert.Equal(t, 0, second.Written)
	assert.Equal(t, 2, second.Unchanged)
	assert.Equal(t, before, snapshot(t, dir))

	for name, content := range before {
		assert.True(t, strings.HasSuffix(content, "\n"), "%s must end with a newline", name)
		assert.NotContains(t, name, ".tmp")
	}
}

func TestArtifactWriter_CareerContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewArtifactWriter(dir, nil)
	writeAll(t, w, sampleCareers(t))

	raw, err := os.ReadFile(w.PlayerPath("p_0000000026"))
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `"fgPct": 0.5`)
	assert.Regexp(t, `"ftPct": 1(\.0)?,`, text)
	assert.Contains(t, text, `"threePct": null`)
	assert.Contains(t, text, "\n  \"playerID\": \"p_0000000026\"")
	assert.NotContains(t, text, "NaN")

	index, err := os.ReadFile(filepath.Join(dir, "players", "index.json"))
	require.NoError(t, err)
	adams := strings.Index(string(index), "p_0000000027")
	doe := strings.Index(string(index), "p_0000000026")
	assert.True(t, adams >= 0 && doe > adams, "index must be ordered by last name")

	_, err = os.Stat(filepath.Join(dir, "leaderboards", "gwbb.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "records.json"))
	require.NoError(t, err)
}

func TestArtifactWriter_PrunesStalePlayers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "players", "p_0000000099.json"), `{}`)
	writeFile(t, filepath.Join(dir, "players", "p_0000000098.json.tmp"), `{}`)
	writeFile(t, filepath.Join(dir, "players", "README.md"), `keep`)

	w := NewArtifactWriter(dir, nil)
	stats, err := w.WriteCareers(context.Background(), sampleCareers(t))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pruned)

	_, err = os.Stat(filepath.Join(dir, "players", "p_0000000099.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "players", "README.md"))
	assert.NoError(t, err)
}
