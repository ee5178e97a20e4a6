package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "gwbb", "data", "2025.json"), `{"roster":[{"playerID":"DOEJAN2024"},{"playerID":"p_0000000026"}]}`)
	writeFile(t, filepath.Join(root, "pages", "player.njk"), `{{ "SMIANN2025" }} and DOEJAN2024`)
	writeFile(t, filepath.Join(root, "notes.txt"), `ZZZZZZ1999`)
	writeFile(t, filepath.Join(root, "_derived", "players", "x.json"), `"QQQQQQ2000"`)
	return root
}

func TestSourceScanner_Scan(t *testing.T) {
	t.Parallel()

	root := scanFixture(t)
	s := NewSourceScanner(root, []string{".json", ".njk", ".js"}, filepath.Join(root, "_derived"))

	aliases, err := s.Scan(context.Background(), identity.LegacyPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"DOEJAN2024", "SMIANN2025"}, aliases)

	pids, err := s.Scan(context.Background(), identity.CanonicalRefPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"p_0000000026"}, pids)
}

func TestSourceScanner_MissingRoot(t *testing.T) {
	t.Parallel()

	s := NewSourceScanner(filepath.Join(t.TempDir(), "missing"), []string{".json"})
	files, err := s.Files(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSourceScanner_Rewrite(t *testing.T) {
	t.Parallel()

	root := scanFixture(t)
	s := NewSourceScanner(root, []string{".json", ".njk"}, filepath.Join(root, "_derived"))
	replace := func(alias string) (string, bool) {
		if alias == "DOEJAN2024" {
			return "p_0000000026", true
		}
		return alias + "?", false
	}

	dry, err := s.Rewrite(context.Background(), identity.LegacyPattern, replace, true)
	require.NoError(t, err)
	assert.Equal(t, 2, dry.Replacements)
	assert.Len(t, dry.FilesTouched, 2)
	assert.Equal(t, []string{"SMIANN2025?"}, dry.Missing)

	raw, err := os.ReadFile(filepath.Join(root, "pages", "player.njk"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "DOEJAN2024", "dry run must not write")

	report, err := s.Rewrite(context.Background(), identity.LegacyPattern, replace, false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Replacements)

	raw, err = os.ReadFile(filepath.Join(root, "pages", "player.njk"))
	require.NoError(t, err)
	assert.Equal(t, `{{ "SMIANN2025" }} and p_0000000026`, string(raw))
}
