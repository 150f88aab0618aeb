package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/taxi-dashboard-go/internal/database"
	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

const dateLayout = "2006-01-02"

// TripRepository reads and writes the processed trips cache.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// InitSchema creates the trips table if it does not exist. Enrichment fields
// are not persisted; they are recomputed from the zone lookup on every boot.
func (r *TripRepository) InitSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pickup_time TEXT NOT NULL,
			dropoff_time TEXT NOT NULL,
			passenger_count INTEGER NOT NULL,
			trip_distance REAL NOT NULL,
			pickup_zone_id INTEGER NOT NULL,
			dropoff_zone_id INTEGER NOT NULL,
			payment_type INTEGER NOT NULL,
			fare_amount REAL NOT NULL,
			total_amount REAL NOT NULL,
			duration_minutes REAL NOT NULL,
			speed_mph REAL NOT NULL,
			pickup_hour INTEGER NOT NULL,
			pickup_weekday TEXT NOT NULL,
			pickup_date TEXT NOT NULL
		)
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create trips table: %w", err)
	}
	return nil
}

// SaveTrips writes cleaned trips in order inside a single transaction.
func (r *TripRepository) SaveTrips(trips []models.Trip) error {
	if err := r.InitSchema(); err != nil {
		return err
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO trips (
			pickup_time, dropoff_time, passenger_count, trip_distance,
			pickup_zone_id, dropoff_zone_id, payment_type, fare_amount, total_amount,
			duration_minutes, speed_mph, pickup_hour, pickup_weekday, pickup_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, t := range trips {
			_, err := stmt.Exec(
				t.PickupTime.Format(time.RFC3339),
				t.DropoffTime.Format(time.RFC3339),
				t.PassengerCount,
				t.TripDistance,
				t.PickupZoneID,
				t.DropoffZoneID,
				t.PaymentType,
				t.FareAmount,
				t.TotalAmount,
				t.DurationMinutes,
				t.SpeedMPH,
				t.PickupHour,
				t.PickupWeekday,
				t.PickupDate.Format(dateLayout),
			)
			if err != nil {
				return fmt.Errorf("failed to insert trip: %w", err)
			}
		}

		return nil
	})
}

// LoadTrips reads all cached trips back in insertion order.
func (r *TripRepository) LoadTrips() ([]models.Trip, error) {
	query := `SELECT pickup_time, dropoff_time, passenger_count, trip_distance,
		pickup_zone_id, dropoff_zone_id, payment_type, fare_amount, total_amount,
		duration_minutes, speed_mph, pickup_hour, pickup_weekday, pickup_date
		FROM trips ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		var pickup, dropoff, pickupDate string
		err := rows.Scan(
			&pickup, &dropoff, &t.PassengerCount, &t.TripDistance,
			&t.PickupZoneID, &t.DropoffZoneID, &t.PaymentType, &t.FareAmount, &t.TotalAmount,
			&t.DurationMinutes, &t.SpeedMPH, &t.PickupHour, &t.PickupWeekday, &pickupDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}

		if t.PickupTime, err = time.Parse(time.RFC3339, pickup); err != nil {
			return nil, fmt.Errorf("failed to parse cached pickup time: %w", err)
		}
		if t.DropoffTime, err = time.Parse(time.RFC3339, dropoff); err != nil {
			return nil, fmt.Errorf("failed to parse cached dropoff time: %w", err)
		}
		if t.PickupDate, err = time.ParseInLocation(dateLayout, pickupDate, time.UTC); err != nil {
			return nil, fmt.Errorf("failed to parse cached pickup date: %w", err)
		}

		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// Count returns the number of cached trips.
func (r *TripRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}
