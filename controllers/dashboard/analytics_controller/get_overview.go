package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
	"github.com/orlantha/e-commerce/utils"
)

// GetOverview godoc
// @Summary Get headline metrics
// @Description Returns total distinct orders and total revenue (raw and BRL-formatted) for the selected date range
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.DashboardOverview}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/overview [get]
func (ctl *Controller) GetOverview(c *gin.Context) {
	log.Printf("[dashboard.overview] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	// ================================
	// Totals over the daily trend
	// ================================
	daily := analytics.DailyOrders(session.Records)

	totalOrders := 0
	totalRevenue := decimal.Zero
	for _, day := range daily {
		totalOrders += day.OrderCount
		totalRevenue = totalRevenue.Add(day.Revenue)
	}

	overview := models.DashboardOverview{
		TotalOrders:           totalOrders,
		TotalRevenue:          totalRevenue,
		TotalRevenueFormatted: utils.FormatBRL(totalRevenue),
	}

	log.Printf("[dashboard.overview] respond 200 orders=%d revenue=%s",
		overview.TotalOrders, overview.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard overview retrieved successfully", overview))
}
