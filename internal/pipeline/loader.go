package pipeline

import (
	"fmt"
	"log"
	"os"

	"github.com/jengzang/taxi-dashboard-go/internal/config"
	"github.com/jengzang/taxi-dashboard-go/internal/database"
	"github.com/jengzang/taxi-dashboard-go/internal/models"
	"github.com/jengzang/taxi-dashboard-go/internal/repository"
)

// Load runs the boot pipeline: ensure raw files exist locally, build or reuse
// the processed cache, then enrich the dataset in memory. The returned slice
// is the enriched dataset for the process lifetime.
func Load(cfg *config.Config) ([]models.Trip, map[int]models.ZoneInfo, error) {
	if err := EnsureLocal(cfg.TripsURL, cfg.RawTripsPath()); err != nil {
		return nil, nil, err
	}
	if err := EnsureLocal(cfg.ZonesURL, cfg.RawZonesPath()); err != nil {
		return nil, nil, err
	}

	zones, err := ReadZoneLookup(cfg.RawZonesPath())
	if err != nil {
		return nil, nil, err
	}

	trips, err := loadOrBuildClean(cfg)
	if err != nil {
		return nil, nil, err
	}

	return Enrich(trips, zones), zones, nil
}

// loadOrBuildClean loads the processed cache if it exists, otherwise runs the
// cleaner once and persists the result. An existing cache file is trusted
// without any staleness or version check.
func loadOrBuildClean(cfg *config.Config) ([]models.Trip, error) {
	cachePath := cfg.CleanDBPath()

	if _, err := os.Stat(cachePath); err == nil {
		// Known limitation: the artifact is not checked against the raw
		// input or the current cleaning rules. Delete it to force a rebuild.
		log.Printf("Loading cached dataset from %s (cache is trusted as-is)", cachePath)
		return loadCache(cachePath)
	}

	log.Printf("No cache at %s, cleaning raw trip records", cachePath)

	raws, err := ReadRawTrips(cfg.RawTripsPath())
	if err != nil {
		return nil, err
	}

	trips, dropped := Clean(raws, cfg.MonthStart)
	log.Printf("Cleaned %d trips (%d rows dropped)", len(trips), dropped)

	if err := writeCache(cachePath, trips); err != nil {
		// A half-written artifact would be trusted forever on the next boot.
		os.Remove(cachePath)
		return nil, err
	}

	return trips, nil
}

func loadCache(path string) ([]models.Trip, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	trips, err := repository.NewTripRepository(db).LoadTrips()
	if err != nil {
		return nil, fmt.Errorf("failed to load trip cache: %w", err)
	}
	return trips, nil
}

func writeCache(path string, trips []models.Trip) error {
	db, err := database.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.NewTripRepository(db).SaveTrips(trips); err != nil {
		return fmt.Errorf("failed to write trip cache: %w", err)
	}
	return nil
}
