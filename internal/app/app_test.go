package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/config"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func testConfig(root string) config.Config {
	cfg := config.Config{
		AppEnv:           config.EnvDev,
		Root:             ".",
		GWBBDataDir:      "src/gwbb/data",
		LWBBDataDir:      "src/lwbb/data",
		PersonIndexPath:  "src/_data/personIndex.json",
		PersonMergesPath: "tools/personMerges.json",
		DerivedDir:       "src/_derived",
		LeaderboardSize:  10,
		ScanRoot:         "src",
		ScanExtensions:   []string{".json"},
		InitialNextPID:   26,
		MetricsTextfile:  "metrics/almanac.prom",
	}
	cfg.WithRoot(root)
	return cfg
}

func TestNew_BuildsAndFlushesMetrics(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(root)
	gwbb := filepath.Join(root, "src", "gwbb", "data")
	require.NoError(t, os.MkdirAll(gwbb, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gwbb, "2024.json"), []byte(`{
  "roster": [{"playerId": "ABLANN2025", "name": "Ann Able"}],
  "gameStats": [{"playerId": "ABLANN2025", "gameId": "g-20240105-H-rival", "pts": 11, "reb": 3}]
}`), 0o644))

	a, err := New(cfg, logging.NewNop(), Options{})
	require.NoError(t, err)

	ctx := context.Background()
	summary, err := a.Build.Build(ctx, cfg.Programs())
	require.NoError(t, err)
	if summary.Players != 1 {
		t.Fatalf("unexpected players: got=%d want=1", summary.Players)
	}
	if _, err := os.Stat(filepath.Join(cfg.DerivedDir, "players", "ABLANN2025.json")); err != nil {
		t.Fatalf("expected player artifact: %v", err)
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.MetricsTextfile), 0o755))
	require.NoError(t, a.Close(ctx))
	if _, err := os.Stat(cfg.MetricsTextfile); err != nil {
		t.Fatalf("expected metrics textfile: %v", err)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.LeaderboardSize = 0
	if _, err := New(cfg, logging.NewNop(), Options{}); err == nil {
		t.Fatalf("expected invalid config error")
	}
}
