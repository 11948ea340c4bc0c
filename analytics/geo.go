package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/models"
)

// OrderLocations groups records by their exact (state, city, lat, lng) tuple,
// counting distinct orders and summing revenue per point. Coordinate variants
// of the same city stay separate partitions on purpose: the map plots raw
// geolocation points and no coordinate normalization happens here.
func OrderLocations(records []models.OrderRecord) []models.LocationSummary {
	type locationKey struct {
		state, city string
		lat, lng    float64
	}
	type bucket struct {
		orders  map[string]struct{}
		revenue decimal.Decimal
	}

	buckets := make(map[locationKey]*bucket)
	keys := make([]locationKey, 0)
	for _, r := range records {
		key := locationKey{state: r.GeoState, city: r.GeoCity, lat: r.GeoLat, lng: r.GeoLng}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.orders[r.OrderID] = struct{}{}
		b.revenue = b.revenue.Add(r.Price)
	}

	locations := make([]models.LocationSummary, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		locations = append(locations, models.LocationSummary{
			State:      key.state,
			City:       key.city,
			Latitude:   key.lat,
			Longitude:  key.lng,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	return locations
}

// MaxOrderLocation returns the location with the most distinct orders, or nil
// for an empty set. The first occurrence wins ties.
func MaxOrderLocation(locations []models.LocationSummary) *models.LocationSummary {
	var best *models.LocationSummary
	for i := range locations {
		if best == nil || locations[i].OrderCount > best.OrderCount {
			best = &locations[i]
		}
	}
	return best
}

// MaxRevenueLocation returns the location with the highest revenue, or nil
// for an empty set. The first occurrence wins ties.
func MaxRevenueLocation(locations []models.LocationSummary) *models.LocationSummary {
	var best *models.LocationSummary
	for i := range locations {
		if best == nil || locations[i].Revenue.GreaterThan(best.Revenue) {
			best = &locations[i]
		}
	}
	return best
}
