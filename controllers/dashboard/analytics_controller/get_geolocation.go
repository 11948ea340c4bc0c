package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
)

// GetGeolocation godoc
// @Summary Get geospatial sales insights
// @Description Returns per-location order counts and revenue plus the highest-orders and highest-revenue locations
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.GeoInsights}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/geolocation [get]
func (ctl *Controller) GetGeolocation(c *gin.Context) {
	log.Printf("[dashboard.geolocation] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	locations := analytics.OrderLocations(session.Records)

	insights := models.GeoInsights{
		Locations:      locations,
		HighestOrders:  analytics.MaxOrderLocation(locations),
		HighestRevenue: analytics.MaxRevenueLocation(locations),
	}

	log.Printf("[dashboard.geolocation] respond 200 locations=%d rows=%d",
		len(locations), len(session.Records))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Geolocation insights retrieved successfully", insights))
}
