package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"recipebook/internal/api"
	"recipebook/internal/config"
	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
	"recipebook/internal/ui"
)

const (
	Version = "0.1.0"
	appName = "recipebook"
)

// options holds the command line overrides
type options struct {
	configPath string
	theme      string
	baseURL    string
	logFile    string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal recipe browser",
		Long: `recipebook signs in to a dummyjson-compatible service, loads the
recipe collection and filters it by name as you type.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (TOML)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Initial theme (light, dark)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Base URL of the recipe service")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file path")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(opts options) error {
	configSvc := config.NewConfigService()
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath)
	}

	cfg, created, err := loadOrCreateConfig(configSvc)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	// Set up logging; the terminal belongs to the UI
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if created {
		log.Printf("Created default config at %s", configSvc.Path())
	} else {
		log.Printf("Loaded config from %s", configSvc.Path())
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	client := api.NewClient(cfg.API.BaseURL)

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(ctx, cfg, bus, client)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventFetchStateChanged,
		eventbus.EventThemeChanged,
		eventbus.EventLoginFailed,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Printf("Interrupted, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("run program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadOrCreateConfig loads the config file, writing the defaults when it does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	path := configSvc.Path()
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			return nil, false, err
		}
		return cfg, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("stat config: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// applyOverrides copies command line values over the loaded config
func applyOverrides(cfg *config.Config, opts options) error {
	if opts.theme != "" {
		t, err := domain.ParseTheme(opts.theme)
		if err != nil {
			return err
		}
		cfg.UI.Theme = string(t)
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg.Validate()
}
