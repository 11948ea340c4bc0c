package analytics_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
)

// GetDeliveryAnalysis godoc
// @Summary Get delivery analysis by review score
// @Description Returns distinct order counts and delivery-time statistics per review score, best score first
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.DeliveryScoreSummary}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/delivery-analysis [get]
func (ctl *Controller) GetDeliveryAnalysis(c *gin.Context) {
	log.Printf("[dashboard.delivery-analysis] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	scores := analytics.DeliveryAnalysis(session.Records)

	// Highest score first for display
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].ReviewScore > scores[j].ReviewScore
	})

	log.Printf("[dashboard.delivery-analysis] respond 200 scores=%d rows=%d",
		len(scores), len(session.Records))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery analysis retrieved successfully", scores))
}
