package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/orlantha/e-commerce/models"
)

// DeliveryAnalysis groups records by review score (1-5). Per score it counts
// distinct orders and computes max, mean, median, and sample standard
// deviation of the delivery time in days. Rows without a delivery time still
// count toward orders but are dropped from the statistics. StdTime stays nil
// when a score holds fewer than two delivery times, since the sample
// definition is undefined there. Output is ascending by score; scores absent
// from the input are absent from the output.
func DeliveryAnalysis(records []models.OrderRecord) []models.DeliveryScoreSummary {
	type bucket struct {
		orders map[string]struct{}
		times  []float64
	}

	buckets := make(map[int]*bucket)
	for _, r := range records {
		if r.ReviewScore < 1 || r.ReviewScore > 5 {
			continue
		}
		b, ok := buckets[r.ReviewScore]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[r.ReviewScore] = b
		}
		b.orders[r.OrderID] = struct{}{}
		if r.DeliveryTime != nil {
			b.times = append(b.times, *r.DeliveryTime)
		}
	}

	summaries := make([]models.DeliveryScoreSummary, 0, len(buckets))
	for score := 1; score <= 5; score++ {
		b, ok := buckets[score]
		if !ok {
			continue
		}
		summary := models.DeliveryScoreSummary{
			ReviewScore: score,
			OrderCount:  len(b.orders),
		}
		if len(b.times) > 0 {
			summary.MaxTime, _ = stats.Max(b.times)
			summary.MeanTime, _ = stats.Mean(b.times)
			summary.MedianTime, _ = stats.Median(b.times)
		}
		if len(b.times) >= 2 {
			if std, err := stats.StandardDeviationSample(b.times); err == nil {
				summary.StdTime = &std
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
