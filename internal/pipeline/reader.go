package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

// Raw trip-records column names (TLC yellow taxi schema).
const (
	colPickupTime     = "tpep_pickup_datetime"
	colDropoffTime    = "tpep_dropoff_datetime"
	colPassengerCount = "passenger_count"
	colTripDistance   = "trip_distance"
	colPickupZone     = "PULocationID"
	colDropoffZone    = "DOLocationID"
	colPaymentType    = "payment_type"
	colFareAmount     = "fare_amount"
	colTotalAmount    = "total_amount"
)

// ReadRawTrips reads the raw trip-records CSV. Columns are located by header
// name so extra columns and column order do not matter. Rows shorter than the
// highest needed index are kept with empty fields; the cleaner drops them.
func ReadRawTrips(path string) ([]models.RawTrip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip records: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Allow variable numbers of fields

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read trip records header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{
		colPickupTime, colDropoffTime, colPassengerCount, colTripDistance,
		colPickupZone, colDropoffZone, colPaymentType, colFareAmount, colTotalAmount,
	} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("trip records missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var trips []models.RawTrip
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read trip records row: %w", err)
		}

		trips = append(trips, models.RawTrip{
			PickupTime:     field(row, colPickupTime),
			DropoffTime:    field(row, colDropoffTime),
			PassengerCount: field(row, colPassengerCount),
			TripDistance:   field(row, colTripDistance),
			PickupZoneID:   field(row, colPickupZone),
			DropoffZoneID:  field(row, colDropoffZone),
			PaymentType:    field(row, colPaymentType),
			FareAmount:     field(row, colFareAmount),
			TotalAmount:    field(row, colTotalAmount),
		})
	}

	return trips, nil
}

// ReadZoneLookup reads the zone lookup CSV (LocationID, Borough, Zone) into a
// map keyed by zone id. Rows with an unparseable id are skipped.
func ReadZoneLookup(path string) (map[int]models.ZoneInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zone lookup: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read zone lookup header: %w", err)
	}

	idIdx, boroughIdx, zoneIdx := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "LocationID":
			idIdx = i
		case "Borough":
			boroughIdx = i
		case "Zone":
			zoneIdx = i
		}
	}
	if idIdx < 0 || boroughIdx < 0 || zoneIdx < 0 {
		return nil, fmt.Errorf("zone lookup missing LocationID/Borough/Zone columns")
	}

	zones := make(map[int]models.ZoneInfo)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read zone lookup row: %w", err)
		}
		if idIdx >= len(row) || boroughIdx >= len(row) || zoneIdx >= len(row) {
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[idIdx]))
		if err != nil {
			continue
		}
		zones[id] = models.ZoneInfo{
			ZoneID:  id,
			Borough: strings.TrimSpace(row[boroughIdx]),
			Zone:    strings.TrimSpace(row[zoneIdx]),
		}
	}

	return zones, nil
}
