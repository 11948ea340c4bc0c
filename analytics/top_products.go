package analytics

import (
	"sort"

	"github.com/orlantha/e-commerce/models"
)

// TopProducts ranks product categories by distinct five-star orders, best
// first, returning at most limit entries. The stable sort keeps input
// encounter order on ties, so results are deterministic for a given dataset.
// No five-star rows means an empty result.
func TopProducts(records []models.OrderRecord, limit int) []models.ProductRanking {
	counts := make(map[string]map[string]struct{})
	categories := make([]string, 0)
	for _, r := range records {
		if r.ReviewScore != 5 {
			continue
		}
		set, ok := counts[r.ProductCategory]
		if !ok {
			set = make(map[string]struct{})
			counts[r.ProductCategory] = set
			categories = append(categories, r.ProductCategory)
		}
		set[r.OrderID] = struct{}{}
	}

	rankings := make([]models.ProductRanking, 0, len(categories))
	for _, category := range categories {
		rankings = append(rankings, models.ProductRanking{
			ProductCategory: category,
			OrderCount:      len(counts[category]),
		})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].OrderCount > rankings[j].OrderCount
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}
