package source

import (
	"context"
	"regexp"
)

// RewriteReport summarises a rewrite pass over the source tree.
type RewriteReport struct {
	FilesTouched []string
	Replacements int
	Missing      []string
}

// ReplaceFunc maps one match to its replacement. When ok is false the match is kept and the
// returned string (or the match, if empty) is reported as missing.
type ReplaceFunc func(match string) (replacement string, ok bool)

// Scanner searches and rewrites identifiers embedded in the site's source files.
type Scanner interface {
	Scan(ctx context.Context, pattern *regexp.Regexp) ([]string, error)
	Rewrite(ctx context.Context, pattern *regexp.Regexp, replace ReplaceFunc, dryRun bool) (RewriteReport, error)
}
