// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", path, err)
	}

	g, err := game.New(cfg, path)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv maps our own env vars onto the standard OTEL_* ones.
// Anything already set in OTEL_* wins.
func setupOTelEnv() {
	if endpoint := os.Getenv("DUNGEONCRAWL_OTLP_ENDPOINT"); endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	apiKey := os.Getenv("DUNGEONCRAWL_OTLP_API_KEY")
	dataset := os.Getenv("DUNGEONCRAWL_OTLP_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
