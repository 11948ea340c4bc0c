package analytics

import (
	"time"

	"github.com/orlantha/e-commerce/models"
)

// FilterByDateRange returns the records whose purchase timestamp falls within
// the calendar-date range [start, end]. Both bounds are inclusive whole days:
// a row stamped 23:59:59 on the end date is kept. An empty result is normal,
// never an error.
func FilterByDateRange(records []models.OrderRecord, start, end time.Time) []models.OrderRecord {
	from := truncateDay(start)
	to := truncateDay(end).AddDate(0, 0, 1)

	filtered := make([]models.OrderRecord, 0, len(records))
	for _, r := range records {
		if !r.PurchaseTimestamp.Before(from) && r.PurchaseTimestamp.Before(to) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
