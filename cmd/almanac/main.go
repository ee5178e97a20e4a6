package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/riskibarqy/hoops-almanac/internal/app"
	"github.com/riskibarqy/hoops-almanac/internal/config"
	"github.com/riskibarqy/hoops-almanac/internal/domain/leaderboard"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
	"github.com/riskibarqy/hoops-almanac/internal/usecase"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	root    string
	out     string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "almanac:", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Build the basketball almanac's derived player data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Site root (overrides ALMANAC_ROOT)")
	rootCmd.PersistentFlags().StringVar(&flags.out, "out", "", "Derived output directory (overrides DERIVED_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level")

	var allowLegacy bool
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Aggregate season files into careers, leaderboards and records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, app.Options{AllowLegacy: allowLegacy}, func(ctx context.Context, a *app.App) error {
				summary, err := a.Build.Build(ctx, a.Config.Programs())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, p := range summary.Programs {
					fmt.Fprintf(w, "%s: seasons=%d careers=%d rows=%d kept=%d unmapped=%d no_roster=%d roster_skipped=%d\n",
						p.Program, p.Seasons, p.Careers, p.Rows, p.RowsKept, p.UnmappedRows, p.RowsWithoutRoster, p.RosterSkipped)
				}
				fmt.Fprintf(w, "players=%d written=%d unchanged=%d pruned=%d cycles=%d\n",
					summary.Players, summary.Artifacts.Written, summary.Artifacts.Unchanged, summary.Artifacts.Pruned, summary.Resolution.Cycles)
				return nil
			})
		},
	}
	buildCmd.Flags().BoolVar(&allowLegacy, "allow-legacy", false, "Resolve ids missing from the identity store to themselves")

	var mintDryRun bool
	mintCmd := &cobra.Command{
		Use:   "mint",
		Short: "Assign canonical ids to legacy ids found in the source tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, app.Options{}, func(ctx context.Context, a *app.App) error {
				report, err := a.Mint.Mint(ctx, mintDryRun)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "found=%d canonical=%d minted=%d next=%d\n", report.Found, report.Canonical, len(report.Minted), report.NextPID)
				for _, alias := range report.Minted {
					fmt.Fprintln(w, alias)
				}
				return nil
			})
		},
	}
	mintCmd.Flags().BoolVar(&mintDryRun, "dry-run", false, "Report without saving the identity store")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Report canonical ids referenced in source files but missing from the identity store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, app.Options{}, func(ctx context.Context, a *app.App) error {
				report, err := a.Verify.Orphans(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "referenced=%d people=%d orphans=%d\n", report.Referenced, report.People, len(report.Orphans))
				for _, id := range report.Orphans {
					fmt.Fprintln(w, id)
				}
				if report.IndexProblem != "" {
					fmt.Fprintln(w, report.IndexProblem)
				}
				if !report.OK() {
					return errors.New("identity store is inconsistent with source files")
				}
				return nil
			})
		},
	}

	var patchDryRun bool
	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Rewrite legacy ids in source files to their canonical ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, app.Options{}, func(ctx context.Context, a *app.App) error {
				report, err := a.Patch.Patch(ctx, patchDryRun)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "files=%d replacements=%d missing=%d\n", len(report.FilesTouched), report.Replacements, len(report.Missing))
				for _, path := range report.FilesTouched {
					fmt.Fprintln(w, path)
				}
				if len(report.Missing) > 0 {
					fmt.Fprintln(w, "missing:", strings.Join(report.Missing, " "))
				}
				return nil
			})
		},
	}
	patchCmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Report without rewriting files")

	var (
		limit         int
		leadersLegacy bool
	)
	leadersCmd := &cobra.Command{
		Use:   "leaders <program> <board>",
		Short: "Print one leaderboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := program.ParseCode(args[0])
			if err != nil {
				return err
			}
			key := leaderboard.Key(args[1])
			return withApp(cmd, flags, app.Options{AllowLegacy: leadersLegacy}, func(ctx context.Context, a *app.App) error {
				board, err := a.Leaderboard.Top(ctx, code, key, limit)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, board.Title)
				if board.Minimum != "" {
					fmt.Fprintln(w, board.Minimum)
				}
				for _, e := range board.Entries {
					fmt.Fprintf(w, "%2d. %-28s %s  %s\n", e.Rank, e.Name, formatValue(e.Value), e.PlayerID)
				}
				return nil
			})
		},
	}
	leadersCmd.Flags().IntVar(&limit, "limit", leaderboard.DefaultLimit, "Number of entries")
	leadersCmd.Flags().BoolVar(&leadersLegacy, "allow-legacy", false, "Rank ids missing from the identity store as themselves")

	rootCmd.AddCommand(buildCmd, mintCmd, verifyCmd, patchCmd, leadersCmd)
	return rootCmd
}

func withApp(cmd *cobra.Command, flags *rootFlags, opts app.Options, run func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.root != "" {
		cfg.WithRoot(flags.root)
	}
	if flags.out != "" {
		out, err := filepath.Abs(flags.out)
		if err != nil {
			return fmt.Errorf("resolve --out: %w", err)
		}
		cfg.DerivedDir = out
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat()}).Named(cmd.Name())
	if flags.verbose {
		logger.SetLevel(logging.LevelDebug)
	}
	logging.SetDefault(logger)

	a, err := app.New(cfg, logger, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runErr := run(ctx, a)
	if runErr != nil && errors.Is(runErr, usecase.ErrMalformedSource) {
		logger.ErrorContext(ctx, "malformed input", "error", runErr)
	}
	if err := a.Close(ctx); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v == float64(int64(*v)) {
		return fmt.Sprintf("%d", int64(*v))
	}
	return fmt.Sprintf("%.3f", *v)
}
