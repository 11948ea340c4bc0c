package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/models"
)

// RFM segments customers by recency, frequency, and monetary value.
// Frequency counts line items (not distinct orders), monetary sums their
// prices, and recency is the whole-day gap between the customer's last
// purchase date and the latest purchase date anywhere in the input, so the
// freshest customers score 0. Results keep customer encounter order.
func RFM(records []models.OrderRecord) []models.RFMRecord {
	type bucket struct {
		last      time.Time
		frequency int
		monetary  decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	customers := make([]string, 0)
	var latest time.Time
	for _, r := range records {
		b, ok := buckets[r.CustomerID]
		if !ok {
			b = &bucket{}
			buckets[r.CustomerID] = b
			customers = append(customers, r.CustomerID)
		}
		b.frequency++
		b.monetary = b.monetary.Add(r.Price)
		if r.PurchaseTimestamp.After(b.last) {
			b.last = r.PurchaseTimestamp
		}
		if r.PurchaseTimestamp.After(latest) {
			latest = r.PurchaseTimestamp
		}
	}

	latestDay := truncateDay(latest)
	segments := make([]models.RFMRecord, 0, len(customers))
	for _, id := range customers {
		b := buckets[id]
		recency := int(latestDay.Sub(truncateDay(b.last)).Hours() / 24)
		segments = append(segments, models.RFMRecord{
			CustomerID: id,
			Recency:    recency,
			Frequency:  b.frequency,
			Monetary:   b.monetary,
		})
	}
	return segments
}
