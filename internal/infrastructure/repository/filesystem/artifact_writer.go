package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-almanac/internal/domain/artifact"
	"github.com/riskibarqy/hoops-almanac/internal/domain/career"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/record"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
)

const (
	playersDir      = "players"
	leaderboardsDir = "leaderboards"
	indexFile       = "index.json"
	recordsFile     = "records.json"
)

// ArtifactWriter persists derived JSON under one directory. Identical inputs always produce
// identical bytes, and files whose content is unchanged are not rewritten.
type ArtifactWriter struct {
	dir    string
	logger *logging.Logger
}

func NewArtifactWriter(dir string, logger *logging.Logger) *ArtifactWriter {
	if logger == nil {
		logger = logging.Default()
	}
	return &ArtifactWriter{dir: dir, logger: logger}
}

func (w *ArtifactWriter) Dir() string {
	return w.dir
}

// PlayerPath is where the career artifact for playerID lives.
func (w *ArtifactWriter) PlayerPath(playerID string) string {
	return filepath.Join(w.dir, playersDir, playerID+".json")
}

// WriteCareers writes one file per career and removes player files this pass did not produce.
func (w *ArtifactWriter) WriteCareers(ctx context.Context, careers []*career.Career) (artifact.Stats, error) {
	var stats artifact.Stats
	keep := map[string]struct{}{indexFile: {}}

	for _, c := range careers {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if c == nil || c.PlayerID == "" || strings.ContainsAny(c.PlayerID, `/\`) {
			continue
		}
		changed, err := w.write(w.PlayerPath(c.PlayerID), c)
		if err != nil {
			return stats, err
		}
		stats.Observe(changed)
		keep[c.PlayerID+".json"] = struct{}{}
	}

	pruned, err := w.prune(ctx, filepath.Join(w.dir, playersDir), keep)
	if err != nil {
		return stats, err
	}
	stats.Pruned = pruned
	return stats, nil
}

// WriteIndex writes players/index.json.
func (w *ArtifactWriter) WriteIndex(ctx context.Context, entries []career.IndexEntry) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if entries == nil {
		entries = []career.IndexEntry{}
	}
	return w.write(filepath.Join(w.dir, playersDir, indexFile), entries)
}

type leaderboardFile struct {
	Program program.Code        `json:"program"`
	Boards  []leaderboard.Board `json:"boards"`
}

// WriteLeaderboards writes leaderboards/<program>.json.
func (w *ArtifactWriter) WriteLeaderboards(ctx context.Context, code program.Code, boards []leaderboard.Board) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if boards == nil {
		boards = []leaderboard.Board{}
	}
	path := filepath.Join(w.dir, leaderboardsDir, code.Slug()+".json")
	return w.write(path, leaderboardFile{Program: code, Boards: boards})
}

// WriteRecords writes records.json keyed by program slug.
func (w *ArtifactWriter) WriteRecords(ctx context.Context, records []record.Program) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	doc := make(map[string]record.Program, len(records))
	for _, r := range records {
		doc[r.Program.Slug()] = r
	}
	return w.write(filepath.Join(w.dir, recordsFile), doc)
}

func (w *ArtifactWriter) write(path string, v any) (bool, error) {
	data, err := encodeJSON(v)
	if err != nil {
		return false, crerr.Wrapf(err, "encode %s", path)
	}
	changed, err := writeFileAtomic(path, data)
	if err != nil {
		return false, err
	}
	if changed {
		w.logger.Debug("artifact written", "path", path, "bytes", len(data))
	}
	return changed, nil
}

// prune removes *.json files in dir that are not in keep, and stray temp files.
func (w *ArtifactWriter) prune(ctx context.Context, dir string, keep map[string]struct{}) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, crerr.Wrapf(err, "read %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	pruned := 0
	for _, name := range names {
		if _, ok := keep[name]; ok {
			continue
		}
		if !strings.HasSuffix(name, ".json") && !strings.HasSuffix(name, ".json.tmp") {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return pruned, crerr.Wrapf(err, "remove %s", path)
		}
		pruned++
		w.logger.DebugContext(ctx, "stale artifact removed", "path", path)
	}
	return pruned, nil
}
