package analytics_controller

import (
	"log"
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
	"github.com/orlantha/e-commerce/utils"
)

// rfmTopSize is how many customers each RFM leaderboard shows.
const rfmTopSize = 5

// GetRFM godoc
// @Summary Get customer RFM segmentation
// @Description Returns average recency/frequency/monetary values and the top-5 customers on each axis for the selected date range
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.RFMOverview}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/rfm [get]
func (ctl *Controller) GetRFM(c *gin.Context) {
	log.Printf("[dashboard.rfm] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	segments := analytics.RFM(session.Records)

	// ================================
	// Averages across all customers
	// ================================
	overview := models.RFMOverview{
		AvgMonetary:    decimal.Zero,
		TopByRecency:   []models.RFMRecord{},
		TopByFrequency: []models.RFMRecord{},
		TopByMonetary:  []models.RFMRecord{},
	}
	if len(segments) > 0 {
		totalRecency, totalFrequency := 0, 0
		totalMonetary := decimal.Zero
		for _, s := range segments {
			totalRecency += s.Recency
			totalFrequency += s.Frequency
			totalMonetary = totalMonetary.Add(s.Monetary)
		}
		n := int64(len(segments))
		overview.AvgRecency = math.Round(float64(totalRecency)/float64(n)*10) / 10
		overview.AvgFrequency = math.Round(float64(totalFrequency)/float64(n)*100) / 100
		overview.AvgMonetary = totalMonetary.Div(decimal.NewFromInt(n)).Round(2)
	}
	overview.AvgMonetaryFormatted = utils.FormatBRL(overview.AvgMonetary)

	// ================================
	// Top-5 per axis
	// ================================
	overview.TopByRecency = topSegments(segments, func(a, b models.RFMRecord) bool {
		return a.Recency < b.Recency
	})
	overview.TopByFrequency = topSegments(segments, func(a, b models.RFMRecord) bool {
		return a.Frequency > b.Frequency
	})
	overview.TopByMonetary = topSegments(segments, func(a, b models.RFMRecord) bool {
		return a.Monetary.GreaterThan(b.Monetary)
	})

	log.Printf("[dashboard.rfm] respond 200 customers=%d rows=%d",
		len(segments), len(session.Records))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "RFM analysis retrieved successfully", overview))
}

// topSegments returns the first rfmTopSize segments under less, leaving the
// input untouched.
func topSegments(segments []models.RFMRecord, less func(a, b models.RFMRecord) bool) []models.RFMRecord {
	ranked := make([]models.RFMRecord, len(segments))
	copy(ranked, segments)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > rfmTopSize {
		ranked = ranked[:rfmTopSize]
	}
	return ranked
}
