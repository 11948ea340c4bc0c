package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
)

// topProductLimit caps the best-performing-products chart at ten bars.
const topProductLimit = 10

// GetTopProducts godoc
// @Summary Get top products by five-star orders
// @Description Returns up to ten product categories ranked by distinct five-star orders in the selected date range
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductRanking}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/top-products [get]
func (ctl *Controller) GetTopProducts(c *gin.Context) {
	log.Printf("[dashboard.top-products] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	rankings := analytics.TopProducts(session.Records, topProductLimit)

	log.Printf("[dashboard.top-products] respond 200 categories=%d rows=%d",
		len(rankings), len(session.Records))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", rankings))
}
