package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/single1709/hw-python-oop/internal/config"
	"github.com/single1709/hw-python-oop/internal/ingest"
	"github.com/single1709/hw-python-oop/internal/sensor"
	"github.com/single1709/hw-python-oop/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// samplePackages is the built-in demo batch, processed when no readings file
// is configured.
var samplePackages = []sensor.Package{
	{Code: sensor.CodeSwimming, Params: []float64{720, 1, 80, 25, 40}},
	{Code: sensor.CodeRunning, Params: []float64{15000, 1, 75}},
	{Code: sensor.CodeWalking, Params: []float64{9000, 1, 75, 180}},
}

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "", "readings file (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	level, _ := cfg.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	log.Info("fitness tracker starting", "version", Version)

	packages, err := loadPackages(cfg.Input.Path)
	if err != nil {
		log.Error("failed to load readings", "path", cfg.Input.Path, "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, pkg := range packages {
		id := uuid.New()

		workout, err := sensor.Decode(pkg)
		if err != nil {
			log.Error("skipping reading", "reading_id", id, "code", pkg.Code, "error", err)
			failed++
			continue
		}

		summary := training.NewSummary(workout)
		log.Debug("reading processed", "reading_id", id, "type", summary.Label)
		fmt.Println(summary.Message())
	}

	if failed > 0 {
		log.Warn("batch finished with failures", "failed", failed, "total", len(packages))
		os.Exit(1)
	}
}

// loadPackages returns the readings to process: the file at path, or the
// built-in samples when no path is configured.
func loadPackages(path string) ([]sensor.Package, error) {
	if path == "" {
		return samplePackages, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ingest.Parse(f)
}
