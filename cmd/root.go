package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/olivier-w/climp-spectrum/internal/config"
	"github.com/olivier-w/climp-spectrum/internal/logger"
	"github.com/olivier-w/climp-spectrum/internal/source"
	"github.com/olivier-w/climp-spectrum/internal/ui"
	"github.com/olivier-w/climp-spectrum/internal/visualizer"
)

var (
	fConfig   string
	fTickRate int
	fSource   string
	fPlatform string
	fLogFile  string
	fLogLevel string
	fSeed     uint64
)

var rootCmd = &cobra.Command{
	Use:   "climp-spectrum",
	Short: "Live audio spectrum in the terminal",
	Long: `Render a live, color-graded 12-band audio spectrum in the terminal.

Without an audio analysis collaborator attached, the built-in demo source
animates a synthetic signal. Use --source none to see the no-signal screen.

Keys:
  space/p  pause or resume the source
  n        drop or restore the signal
  q        quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fConfig, "config", "", "config file path")
	pf.IntVar(&fTickRate, "tick-rate", 0, "redraw interval in milliseconds")
	pf.StringVar(&fPlatform, "platform", "", "platform for no-signal hints (linux, windows, macos, other)")
	pf.StringVar(&fLogFile, "log-file", "", "write logs to this file")
	pf.StringVar(&fLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&fSource, "source", "", "spectrum source (demo, none)")
	rootCmd.Flags().Uint64Var(&fSeed, "seed", 0, "demo source seed (0 = random)")

	rootCmd.AddCommand(frameCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, then env, then flags, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if fConfig != "" {
		cfg, err = config.LoadFrom(fConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("tick-rate") {
		cfg.Behavior.TickRateMilliseconds = fTickRate
	}
	if flags.Changed("platform") {
		cfg.Visualizer.Platform = fPlatform
	}
	if flags.Changed("source") {
		cfg.Source.Kind = fSource
	}
	if flags.Changed("seed") {
		cfg.Source.Seed = fSeed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns the logger and a func that closes the log file.
func openLogger() (*slog.Logger, func(), error) {
	lc := logger.DefaultConfig()
	if fLogLevel != "" {
		level, err := logger.ParseLevel(fLogLevel)
		if err != nil {
			return nil, nil, err
		}
		lc.Level = level
	}
	if fLogFile == "" {
		return logger.New(lc), func() {}, nil
	}
	f, err := logger.OpenFile(fLogFile)
	if err != nil {
		return nil, nil, err
	}
	lc.Output = f
	return logger.New(lc), func() { f.Close() }, nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	src := startSource(ctx, &wg, cfg, log)
	log.Info("starting",
		"source", cfg.Source.Kind,
		"tick", opts.TickRate,
		"fps_hint", visualizer.FPS(opts.TickRate),
		"platform", opts.Platform)

	p := tea.NewProgram(ui.New(src, opts, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startSource builds the configured source. The demo producer runs on its
// own goroutine until ctx is done, like an audio analysis thread would.
func startSource(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log *slog.Logger) source.Source {
	if cfg.Source.Kind == config.SourceNone {
		return source.None()
	}

	interval := cfg.SourceInterval()
	fps := int(1000 / interval.Milliseconds())
	feed := source.NewFeed(log.With("component", "feed"))
	demo := source.NewDemo(fps, cfg.Source.Seed)

	wg.Add(1)
	go func() {
		defer wg.Done()
		feed.Run(ctx, demo, interval)
	}()
	return feed
}
