package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sheaf-tools/sheaf/internal/app"
	"github.com/sheaf-tools/sheaf/internal/cliconfig"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

const helpDescription = `
Split multi-page PDF timesheets into per-page files named after the
employee each page belongs to, then bundle everything into a zip.

Highlights:
  - Extracts employee names from page text; unreadable pages are kept
    and flagged for manual renaming.
  - Optional per-page compression with dead-object removal.
  - Watch mode processes every PDF dropped into a directory.
  - Configure via file ($HOME/.sheaf/config.toml), SHEAF_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  sheaf obra_1194.pdf obra_1203.pdf
  sheaf --no-compress --zip-level 9 folha.pdf
  sheaf --watch /srv/drop --work-dir /srv/sheaf
  sheaf history --limit 20
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath    string
		noCompress bool
		verbose    bool
	)

	newLogger := func() *log.Zerolog {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		if verbose {
			zl = zl.Level(zerolog.DebugLevel)
		} else {
			zl = zl.Level(zerolog.InfoLevel)
		}
		return log.NewZerologWithLogger(zl)
	}

	// loadConfig resolves file config, then env, then flags (flags win).
	loadConfig := func(cmd *cobra.Command) error {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		if noCompress {
			cfg.Compress = false
		}
		return cfg.Validate()
	}

	root := &cobra.Command{
		Use:     "sheaf [flags] [file.pdf ...]",
		Short:   "Split PDF timesheets into named per-page files and bundle them",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			logger := newLogger()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			if cfg.WatchDir != "" {
				return a.Watch(ctx)
			}

			if len(args) == 0 {
				return cmd.Usage()
			}

			summary, err := a.RunOnce(ctx, args)
			if err != nil {
				return err
			}
			if summary.Cancelled {
				logger.Warn("interrupted, partial bundle written",
					log.String("archive", summary.ArchivePath))
				return nil
			}
			fmt.Println(summary.ArchivePath)
			return nil
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			a, err := app.New(cfg, log.NewNoop())
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := a.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("no recorded jobs")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "JOB\tWHEN\tSTATUS\tFILES\tPAGES\tSAVED\tARCHIVE")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.1f%%\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Status,
					r.Files, r.Pages, r.SavedRatio, r.ArchivePath)
			}
			return tw.Flush()
		},
	}
	historyCmd.Flags().Int("limit", 10, "maximum number of jobs to list")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired job directories now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			a, err := app.New(cfg, newLogger())
			if err != nil {
				return err
			}
			defer a.Close()

			removed := a.SweepOnce()
			fmt.Printf("removed %d expired job dir(s)\n", removed)
			return nil
		},
	}

	for _, c := range []*cobra.Command{root, historyCmd, sweepCmd} {
		c.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.sheaf/config.toml)")
		c.Flags().StringVar(&cfg.WorkDir, "work-dir", cfg.WorkDir, "directory for job output and bundles")
		c.Flags().StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "path to the job history database (empty disables)")
		c.Flags().DurationVar(&cfg.Retention, "retention", cfg.Retention, "how long finished job dirs are kept")
		c.Flags().DurationVar(&cfg.SweepInterval, "sweep-interval", cfg.SweepInterval, "how often expired job dirs are removed in watch mode")
		c.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	}

	root.Flags().BoolVar(&noCompress, "no-compress", false, "keep page bytes as-is instead of compressing them")
	root.Flags().IntVar(&cfg.ZipLevel, "zip-level", cfg.ZipLevel, "deflate level for the bundle (1-9)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "source files processed concurrently (0 = auto)")
	root.Flags().BoolVar(&cfg.MetricsOnly, "metrics-only", cfg.MetricsOnly, "process without writing output, reporting peak memory")
	root.Flags().StringVar(&cfg.WatchDir, "watch", cfg.WatchDir, "process every PDF dropped into this directory")
	root.Flags().DurationVar(&cfg.SettleDelay, "settle", cfg.SettleDelay, "quiet period before a dropped file is processed")

	root.AddCommand(historyCmd, sweepCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sheaf: %v\n", err)
		os.Exit(1)
	}
}
