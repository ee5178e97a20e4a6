package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
)

var seasonFilePattern = regexp.MustCompile(`^(\d{4})\.json$`)

// SeasonRepository reads <YYYY>.json files from a program's data directory.
type SeasonRepository struct {
	logger *logging.Logger
}

func NewSeasonRepository(logger *logging.Logger) *SeasonRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonRepository{logger: logger}
}

// ListByProgram returns one record per season file, ordered by year. A missing directory
// yields no records; a file that does not decode aborts the whole load.
func (r *SeasonRepository) ListByProgram(ctx context.Context, p program.Program) ([]season.Record, error) {
	entries, err := os.ReadDir(p.DataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.DebugContext(ctx, "season directory missing", "program", p.Code, "dir", p.DataDir)
			return []season.Record{}, nil
		}
		return nil, crerr.Wrapf(err, "read season dir %s", p.DataDir)
	}

	type seasonFile struct {
		name string
		year int
	}
	files := make([]seasonFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := seasonFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		files = append(files, seasonFile{name: entry.Name(), year: year})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].year < files[j].year })

	records := make([]season.Record, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(p.DataDir, f.name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, crerr.Wrapf(err, "read season file %s", path)
		}

		var doc map[string]any
		if err := sonic.ConfigStd.Unmarshal(raw, &doc); err != nil {
			return nil, crerr.Wrapf(season.ErrMalformedSource, "%s: %v", path, err)
		}
		if doc == nil {
			return nil, crerr.Wrapf(season.ErrMalformedSource, "%s: expected a JSON object", path)
		}

		rec := season.Normalize(p.Code, f.year, path, doc)
		r.logger.DebugContext(ctx, "season loaded",
			"program", p.Code,
			"file", path,
			"year", rec.YearEnd,
			"roster", len(rec.Roster),
			"rows", len(rec.GameStats),
			"games", len(rec.Schedule),
		)
		records = append(records, rec)
	}

	// seasonYear overrides may reorder files.
	sort.SliceStable(records, func(i, j int) bool { return records[i].YearEnd < records[j].YearEnd })
	return records, nil
}
