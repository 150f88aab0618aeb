package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port       string
	DataDir    string
	TripsURL   string
	ZonesURL   string
	MonthStart time.Time // target calendar month, first day at 00:00 UTC
}

// Load 加载配置
func Load() *Config {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	tripsURL := os.Getenv("TRIPS_URL")
	if tripsURL == "" {
		tripsURL = "https://d37ci6vzurychx.cloudfront.net/trip-data/yellow_tripdata_2024-01.csv"
	}

	zonesURL := os.Getenv("ZONES_URL")
	if zonesURL == "" {
		zonesURL = "https://d37ci6vzurychx.cloudfront.net/misc/taxi_zone_lookup.csv"
	}

	month := os.Getenv("TARGET_MONTH")
	if month == "" {
		month = "2024-01"
	}
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		monthStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return &Config{
		Port:       port,
		DataDir:    dataDir,
		TripsURL:   tripsURL,
		ZonesURL:   zonesURL,
		MonthStart: monthStart,
	}
}

// RawTripsPath returns the local path of the fetched trip-records file.
func (c *Config) RawTripsPath() string {
	return filepath.Join(c.DataDir, "raw", filepath.Base(c.TripsURL))
}

// RawZonesPath returns the local path of the fetched zone lookup file.
func (c *Config) RawZonesPath() string {
	return filepath.Join(c.DataDir, "raw", filepath.Base(c.ZonesURL))
}

// CleanDBPath returns the path of the processed cache artifact.
func (c *Config) CleanDBPath() string {
	return filepath.Join(c.DataDir, "processed", "trips_clean.db")
}
