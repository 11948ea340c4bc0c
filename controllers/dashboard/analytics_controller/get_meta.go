package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/models"
)

// GetMeta godoc
// @Summary Get dataset metadata
// @Description Returns the dataset's purchase-date bounds and row count so the date-range picker can initialize
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DatasetMeta}
// @Router /dashboard/meta [get]
func (ctl *Controller) GetMeta(c *gin.Context) {
	log.Printf("[dashboard.meta] start")

	minDate, maxDate := ctl.dataset.Bounds()
	meta := models.DatasetMeta{
		RecordCount: ctl.dataset.Count(),
	}
	if ctl.dataset.Count() > 0 {
		meta.MinOrderDate = minDate.Format(dateLayout)
		meta.MaxOrderDate = maxDate.Format(dateLayout)
	}

	log.Printf("[dashboard.meta] respond 200 rows=%d range=%s..%s",
		meta.RecordCount, meta.MinOrderDate, meta.MaxOrderDate)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dataset metadata retrieved successfully", meta))
}
