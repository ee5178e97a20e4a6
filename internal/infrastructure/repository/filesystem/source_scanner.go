package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-almanac/internal/domain/source"
)

// SourceScanner walks the site source tree looking for identifiers embedded in text files.
type SourceScanner struct {
	root string
	exts map[string]struct{}
	skip []string
}

// NewSourceScanner scans files under root whose extension is in exts. Directories listed in
// skip (absolute or relative to the working directory) are not entered.
func NewSourceScanner(root string, exts []string, skip ...string) *SourceScanner {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	cleaned := make([]string, 0, len(skip))
	for _, dir := range skip {
		if dir != "" {
			cleaned = append(cleaned, filepath.Clean(dir))
		}
	}
	return &SourceScanner{root: root, exts: set, skip: cleaned}
}

// Files lists matching files in lexical order. A missing root has no files.
func (s *SourceScanner) Files(ctx context.Context) ([]string, error) {
	var out []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == s.root {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			for _, dir := range s.skip {
				if filepath.Clean(path) == dir {
					return fs.SkipDir
				}
			}
			return nil
		}
		if _, ok := s.exts[strings.ToLower(filepath.Ext(path))]; ok {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "walk %s", s.root)
	}
	sort.Strings(out)
	return out, nil
}

// Scan returns every distinct match of pattern across the scanned files, sorted.
func (s *SourceScanner) Scan(ctx context.Context, pattern *regexp.Regexp) ([]string, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, crerr.Wrapf(err, "read %s", path)
		}
		for _, m := range pattern.FindAll(raw, -1) {
			seen[string(m)] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// Rewrite replaces every match of pattern for which replace reports ok. Matches it declines
// are left in place and reported as missing under the name replace returned (or the match
// itself when that is empty). With dryRun nothing is written.
func (s *SourceScanner) Rewrite(ctx context.Context, pattern *regexp.Regexp, replace source.ReplaceFunc, dryRun bool) (source.RewriteReport, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return source.RewriteReport{}, err
	}

	var report source.RewriteReport
	missing := make(map[string]struct{})
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return source.RewriteReport{}, crerr.Wrapf(err, "read %s", path)
		}

		count := 0
		out := pattern.ReplaceAllFunc(raw, func(m []byte) []byte {
			next, ok := replace(string(m))
			if !ok {
				if next == "" {
					next = string(m)
				}
				missing[next] = struct{}{}
				return m
			}
			if next != string(m) {
				count++
			}
			return []byte(next)
		})
		if count == 0 {
			continue
		}

		report.Replacements += count
		report.FilesTouched = append(report.FilesTouched, path)
		if dryRun {
			continue
		}
		if _, err := writeFileAtomic(path, out); err != nil {
			return source.RewriteReport{}, err
		}
	}

	report.Missing = make([]string, 0, len(missing))
	for m := range missing {
		report.Missing = append(report.Missing, m)
	}
	sort.Strings(report.Missing)
	return report, nil
}
