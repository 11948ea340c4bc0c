package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/models"
)

// DailyOrders groups records by calendar day of purchase. Per day it counts
// distinct orders (multi-item orders count once) and sums revenue over every
// line item (multi-item orders contribute once per item). Days without orders
// are absent from the output, not zero-filled.
func DailyOrders(records []models.OrderRecord) []models.DailyOrderSummary {
	type bucket struct {
		orders  map[string]struct{}
		revenue decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	days := make([]string, 0)
	for _, r := range records {
		day := r.PurchaseTimestamp.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[day] = b
			days = append(days, day)
		}
		b.orders[r.OrderID] = struct{}{}
		b.revenue = b.revenue.Add(r.Price)
	}

	// ISO dates sort lexicographically, so this is chronological.
	sort.Strings(days)

	summaries := make([]models.DailyOrderSummary, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		summaries = append(summaries, models.DailyOrderSummary{
			OrderDate:  day,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	return summaries
}
