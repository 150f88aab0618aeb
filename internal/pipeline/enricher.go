package pipeline

import (
	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

// Enrich left-joins the pickup zone id against the zone lookup and maps the
// payment code to its display label. Unmatched zone ids keep empty
// borough/zone; the row is never dropped. The input slice is not modified, so
// enriching twice gives the same result.
func Enrich(trips []models.Trip, zones map[int]models.ZoneInfo) []models.Trip {
	enriched := make([]models.Trip, len(trips))
	for i, t := range trips {
		if z, ok := zones[t.PickupZoneID]; ok {
			t.PickupBorough = z.Borough
			t.PickupZoneName = z.Zone
		}
		t.PaymentLabel = models.PaymentLabelFor(t.PaymentType)
		enriched[i] = t
	}
	return enriched
}
