package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cornscore/internal/pages"
	"cornscore/internal/settings"
	"cornscore/internal/trace"
	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/cornscore/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Corn Score %s\n", pages.Version)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cornscore")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := settings.OpenBolt(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	mgr := settings.NewManager(store)
	first, err := mgr.FirstLaunch()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	ctx := context.Background()
	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := exporter.Shutdown(sctx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	zones := zone.New()
	defer zones.Close()

	reporter := ui.LogReporter{}
	app := ui.NewApp(
		ui.WithAppReporter(reporter),
		ui.WithZones(zones),
		ui.WithMouse(cfg.Mouse),
		ui.WithAppAnimations(cfg.Animate),
	)
	nav, _, err := pages.Build(pages.Env{
		App:          app,
		Settings:     mgr,
		WinningScore: cfg.WinningScore,
		FirstLaunch:  first,
	}, ui.WithReporter(reporter), ui.WithAnimations(cfg.Animate), ui.WithObserver(exporter.Observer()))
	if err != nil {
		return err
	}
	if err := app.Present(nav); err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
