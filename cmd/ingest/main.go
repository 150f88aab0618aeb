package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jengzang/taxi-dashboard-go/internal/config"
	"github.com/jengzang/taxi-dashboard-go/internal/pipeline"
)

// ingest runs the fetch/clean/cache pipeline without starting the server,
// useful for pre-warming the processed cache on a new machine.
func main() {
	dataDir := pflag.StringP("data-dir", "d", "", "Data directory (default from DATA_DIR or ./data)")
	tripsURL := pflag.String("trips-url", "", "Trip records URL (default from TRIPS_URL)")
	zonesURL := pflag.String("zones-url", "", "Zone lookup URL (default from ZONES_URL)")
	force := pflag.BoolP("force", "f", false, "Delete the existing processed cache and rebuild it")
	pflag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *tripsURL != "" {
		cfg.TripsURL = *tripsURL
	}
	if *zonesURL != "" {
		cfg.ZonesURL = *zonesURL
	}

	if *force {
		if err := os.Remove(cfg.CleanDBPath()); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
	}

	trips, _, err := pipeline.Load(cfg)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cache ready at %s (%d trips)\n", cfg.CleanDBPath(), len(trips))
}
