// quantum-flux is a live dashboard of randomly generated charts.
//
// Line, bar and pie charts and metric tiles refresh with mock data every
// refresh interval. By default the dashboard runs as an interactive
// Bubbletea TUI; -headless (implied when stdout is not a terminal) runs the
// same dashboard without a terminal and dumps its final state as YAML.
//
// Usage:
//
//	quantum-flux [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/quantum-flux/config.toml)
//	-headless         Run without a terminal UI and print the final state
//	-duration dur     How long -headless runs (default: 10s)
//	-snapshot string  Write one PNG per chart widget to this directory on exit
//	-inline           Print chart images to the terminal on exit (with -headless)
//	-theme string     Start with this theme (dark|light|custom name)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/app"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/config"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/dashboard"
	fluximage "gitlab.com/tinyland/lab/quantum-flux/pkg/image"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/logging"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/scheduler"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/series"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/terminal"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/theme"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		headless    = flag.Bool("headless", false, "Run without a terminal UI and print the final state")
		duration    = flag.Duration("duration", 10*time.Second, "How long -headless runs")
		snapshotDir = flag.String("snapshot", "", "Write one PNG per chart widget to this directory on exit")
		inline      = flag.Bool("inline", false, "Print chart images to the terminal on exit (with -headless)")
		themeName   = flag.String("theme", "", "Start with this theme")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("quantum-flux %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Without a terminal on stdout there is nothing to draw the TUI on.
	if !*headless && !isatty.IsTerminal(os.Stdout.Fd()) {
		*headless = true
	}

	// The TUI owns the terminal, so it logs to the file only.
	level := logging.LevelFromString(cfg.General.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	logOpts := logging.Options{Level: level, File: cfg.General.LogFile}
	if *headless {
		logOpts.Console = os.Stderr
		logOpts.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if cfg.Theme.CustomDir != "" {
		names, err := theme.LoadDir(cfg.Theme.CustomDir)
		if err != nil {
			logger.Warn("loading custom themes", "dir", cfg.Theme.CustomDir, "error", err)
		}
		logger.Debug("custom themes loaded", "themes", names)
	}
	if !theme.Has(cfg.Theme.Name) {
		logger.Warn("unknown theme, using dark", "theme", cfg.Theme.Name)
		cfg.Theme.Name = "dark"
	}

	backend := scheduler.NewCronBackend(logger)
	sched := scheduler.New(backend,
		scheduler.WithInterval(cfg.Dashboard.RefreshInterval.Duration),
		scheduler.WithBuffer(cfg.Dashboard.TickBuffer),
		scheduler.WithLogger(logger),
	)
	dash := dashboard.New(sched,
		dashboard.WithTheme(cfg.Theme.Name),
		dashboard.WithCanvas(float64(cfg.Dashboard.CanvasWidth), float64(cfg.Dashboard.CanvasHeight)),
		dashboard.WithGenerator(series.NewGenerator(series.NewSource(cfg.General.Seed))),
		dashboard.WithLogger(logger),
	)
	defer dash.Close()

	initial := startKinds(cfg, logger)

	if *headless {
		err = runHeadless(dash, initial, *duration, logger)
	} else {
		err = runTUI(dash, initial)
	}
	if err != nil {
		logger.Error("dashboard error", "error", err)
		os.Exit(1)
	}

	if *snapshotDir != "" {
		paths, err := fluximage.SaveAll(dash, *snapshotDir, float64(cfg.Image.Scale))
		if err != nil {
			logger.Error("snapshot failed", "error", err)
			os.Exit(1)
		}
		logger.Info("snapshots written", "dir", *snapshotDir, "files", len(paths))
	}

	if *inline && *headless {
		if err := printInline(os.Stdout, dash, cfg.Image.Protocol); err != nil && !errors.Is(err, fluximage.ErrDisabled) {
			logger.Error("inline render failed", "error", err)
			os.Exit(1)
		}
	}
}

// startKinds resolves the configured start widgets. Validate has already
// rejected unknown names.
func startKinds(cfg *config.Config, logger *slog.Logger) []widgets.Kind {
	var kinds []widgets.Kind
	for _, name := range cfg.StartWidgets() {
		kind, ok := widgets.ParseKind(name)
		if !ok {
			logger.Warn("skipping unknown widget type", "type", name)
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func runTUI(dash *dashboard.Dashboard, initial []widgets.Kind) error {
	appCfg := app.DefaultConfig()
	appCfg.ColorDepth = theme.DepthFromProfile(termenv.EnvColorProfile())

	model := app.NewAppModel(appCfg, dash, initial...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// runHeadless drives the dashboard for d or until SIGINT/SIGTERM, then
// prints its state as YAML on stdout.
func runHeadless(dash *dashboard.Dashboard, initial []widgets.Kind, d time.Duration, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	for _, kind := range initial {
		dash.AddWidget(kind)
	}
	logger.Info("running headless", "widgets", dash.Count(), "duration", d)

	if err := dash.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(dash.Snapshot())
}

// printInline draws every chart widget with the terminal's best image
// protocol.
func printInline(w io.Writer, dash *dashboard.Dashboard, override string) error {
	proto := terminal.SelectProtocolWithOverride(terminal.Detect(), override)
	size := terminal.GetSize()
	r := fluximage.NewRenderer(proto, size)
	cols, rows := max(size.Cols-2, 20), max(size.Rows/2, 10)

	for _, wd := range dash.Widgets() {
		img, ok := fluximage.Snapshot(dash, wd.ID, 1)
		if !ok {
			continue
		}
		out, err := r.Render(img, cols, rows)
		if err != nil {
			return fmt.Errorf("render %s: %w", wd.ID, err)
		}
		fmt.Fprintf(w, "%s\n%s\n", wd.Title, out)
	}
	return nil
}
