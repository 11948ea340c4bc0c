package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/models"
)

// testRecord builds an OrderRecord for the aggregator tests. Timestamps use
// the "2006-01-02 15:04:05" layout the loader parses.
func testRecord(orderID, customerID, purchased string, price float64) models.OrderRecord {
	ts, err := time.Parse("2006-01-02 15:04:05", purchased)
	if err != nil {
		panic(err)
	}
	return models.OrderRecord{
		OrderID:           orderID,
		CustomerID:        customerID,
		PurchaseTimestamp: ts,
		Price:             decimal.NewFromFloat(price),
	}
}

func withScore(r models.OrderRecord, score int) models.OrderRecord {
	r.ReviewScore = score
	return r
}

func withDeliveryTime(r models.OrderRecord, days float64) models.OrderRecord {
	r.DeliveryTime = &days
	return r
}

func withCategory(r models.OrderRecord, category string) models.OrderRecord {
	r.ProductCategory = category
	return r
}

func withLocation(r models.OrderRecord, state, city string, lat, lng float64) models.OrderRecord {
	r.GeoState = state
	r.GeoCity = city
	r.GeoLat = lat
	r.GeoLng = lng
	return r
}

func day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}
