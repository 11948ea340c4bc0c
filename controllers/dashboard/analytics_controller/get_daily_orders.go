package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
)

// GetDailyOrders godoc
// @Summary Get daily order trend
// @Description Returns per-day distinct order counts and revenue for the selected date range
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.DailyOrderSummary}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/daily-orders [get]
func (ctl *Controller) GetDailyOrders(c *gin.Context) {
	log.Printf("[dashboard.daily-orders] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	daily := analytics.DailyOrders(session.Records)

	log.Printf("[dashboard.daily-orders] respond 200 days=%d rows=%d",
		len(daily), len(session.Records))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily orders retrieved successfully", daily))
}
