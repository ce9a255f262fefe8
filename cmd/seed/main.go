package main

import (
	"campaign-lab/internal"
	"campaign-lab/repositories"
	"flag"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type seedConfig struct {
	BadgerFilepath string
	LogLevel       string
}

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	file := flag.String("file", "campaigns.json", "Seed document with campaigns and characters")
	flag.Parse()

	if err := run(seedConfig{BadgerFilepath: *dbPath, LogLevel: "WARN"}, *file); err != nil {
		color.Red.Printf("✗ seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(config seedConfig, path string) error {
	if config.BadgerFilepath == "" {
		return fmt.Errorf("no database path: set -db or BADGER_FILEPATH")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seed, err := internal.ReadSeedFile(f)
	if err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString(config.LogLevel)
	report, err := internal.Seed(seed,
		repositories.NewContentRepository(db, logger),
		repositories.NewCharacterRepository(db, logger),
		repositories.NewInventoryRepository(db, logger),
	)
	if err != nil {
		return err
	}

	for _, campaign := range seed.Campaigns {
		color.Cyan.Printf("• %s: %d steps, %d options, %d outcomes\n", campaign.Campaign.ID,
			len(campaign.Steps), len(campaign.Options), len(campaign.Outcomes))
	}
	color.Green.Printf("✓ seeded %d campaigns, %d characters, %d items into %s\n",
		report.Campaigns, report.Characters, report.Items, config.BadgerFilepath)
	return nil
}
