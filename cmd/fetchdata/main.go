package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/orlantha/e-commerce/config"
	"github.com/orlantha/e-commerce/dataset"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main downloads the dataset CSV to a local file so the dashboard can run
// offline with DATASET_PATH.
// Usage: go run cmd/fetchdata/main.go -out dashboard/all_data.csv
// This is a standalone CLI tool, not part of the main application
func main() {
	out := flag.String("out", "all_data.csv", "output file path")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("E-COMMERCE DASHBOARD - Dataset Fetcher")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.ConnectRedis()

	ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
	defer cancel()

	source := config.DatasetSource()
	log.Printf("✓ Fetching %s", source)

	payload, err := dataset.Fetch(ctx, source)
	if err != nil {
		log.Fatalf("Failed to fetch dataset: %v", err)
	}
	log.Printf("✓ Downloaded %d bytes", len(payload))

	// Parse before writing so a broken download never lands on disk
	records, err := dataset.Parse(bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Downloaded dataset does not parse: %v", err)
	}
	log.Printf("✓ Parsed %d records", len(records))

	if err := os.WriteFile(*out, payload, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Println()
	fmt.Printf("Saved to %s — run the dashboard with DATASET_PATH=%s\n", *out, *out)
}
