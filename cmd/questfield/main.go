// Package main is the entry point for questfield.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/questfield/internal/events"
	"github.com/samdwyer/questfield/internal/game"
	"github.com/samdwyer/questfield/internal/gamedata"
	"github.com/samdwyer/questfield/internal/logger"
	"github.com/samdwyer/questfield/internal/mapexport"
	"github.com/samdwyer/questfield/internal/rng"
	"github.com/samdwyer/questfield/internal/telemetry"
	"github.com/samdwyer/questfield/internal/ui"
	"github.com/samdwyer/questfield/internal/world"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $QUESTFIELD_CONFIG or questfield.yaml)")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	mapPDF := flag.String("map-pdf", "", "write the overworld for -seed to this PDF file and exit")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	logFile, err := logger.Init()
	if err != nil {
		log.Printf("Warning: logging disabled: %v", err)
	}
	defer logFile.Close()

	cfg, err := game.LoadConfig(resolveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *mapPDF != "" {
		if err := exportMap(ctx, cfg, *mapPDF); err != nil {
			log.Fatalf("Map export failed: %v", err)
		}
		return
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Error("shutting down telemetry")
			}
		}()
	}

	if err := run(ctx, cfg); err != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return fmt.Errorf("loading enemies: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	defer screen.Close()

	src := rng.New(cfg.Seed)
	bus := events.NewBus()
	bus.Subscribe(func(e events.GameEvent) {
		logger.Component("events").WithField("event", events.Name(e)).Info(e.Text())
	})

	g := game.New(cfg, game.Deps{
		Enemies: enemies,
		Audio:   ui.NewBell(screen),
		Bus:     bus,
		RNG:     src,
	})
	logger.Log.WithField("seed", src.Seed()).Info("questfield starting")

	err = ui.NewShell(screen).Run(ctx, g)
	logger.Log.WithFields(logrus.Fields{
		"seed":  src.Seed(),
		"draws": src.Position(),
	}).Info("questfield stopped")
	return err
}

// exportMap generates the overworld a run with cfg would start on and
// writes it as a PDF.
func exportMap(ctx context.Context, cfg game.Config, path string) error {
	src := rng.New(cfg.Seed)
	m := world.Generate(ctx, cfg.Width, cfg.Height, gamedata.Catalog(), src)
	data, err := mapexport.Generate(m, fmt.Sprintf("Questfield overworld, seed %d", src.Seed()))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (seed %d)\n", path, src.Seed())
	return nil
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("QUESTFIELD_CONFIG"); env != "" {
		return env
	}
	return "questfield.yaml"
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference for the
	// headers, so build them here from the API key
	apiKey := os.Getenv("HONEYCOMB_QUESTFIELD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_QUESTFIELD_DATASET")
	if dataset == "" {
		dataset = "questfield"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
