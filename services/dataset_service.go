package services

import (
	"time"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
)

// DatasetService owns the loaded order table for the life of the process.
// The table is immutable after construction; every request derives its own
// filtered DashboardSession, so concurrent viewers never touch shared
// mutable state.
type DatasetService struct {
	records []models.OrderRecord
	minDate time.Time
	maxDate time.Time
}

// NewDatasetService wraps records already sorted ascending by purchase
// timestamp (the loader's contract), so the range bounds are the ends.
func NewDatasetService(records []models.OrderRecord) *DatasetService {
	svc := &DatasetService{records: records}
	if len(records) > 0 {
		svc.minDate = records[0].PurchaseTimestamp
		svc.maxDate = records[len(records)-1].PurchaseTimestamp
	}
	return svc
}

func (s *DatasetService) Count() int {
	return len(s.records)
}

// Bounds returns the earliest and latest purchase timestamps in the dataset.
// Both are zero for an empty dataset.
func (s *DatasetService) Bounds() (min, max time.Time) {
	return s.minDate, s.maxDate
}

// DashboardSession is the filtered view one render cycle works against.
// Nothing in it survives past the response.
type DashboardSession struct {
	Records []models.OrderRecord
	Start   time.Time
	End     time.Time
}

// Session filters the table to the closed date range [start, end]. Zero
// bounds clamp to the dataset's own extremes, matching the date picker's
// defaults.
func (s *DatasetService) Session(start, end time.Time) *DashboardSession {
	if start.IsZero() {
		start = s.minDate
	}
	if end.IsZero() {
		end = s.maxDate
	}
	return &DashboardSession{
		Records: analytics.FilterByDateRange(s.records, start, end),
		Start:   start,
		End:     end,
	}
}
