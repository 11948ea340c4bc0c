package analytics_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/models"
	"github.com/orlantha/e-commerce/services"
)

// Controller serves the dashboard's aggregate views. It holds only the
// injected dataset handle; every request works on its own filtered session.
type Controller struct {
	dataset *services.DatasetService
}

func NewController(dataset *services.DatasetService) *Controller {
	return &Controller{dataset: dataset}
}

const dateLayout = "2006-01-02"

// parseRange reads the optional start_date/end_date query params. Missing
// params fall back to the dataset's own bounds; a malformed date or an
// inverted range responds 400 and reports not-ok.
func (ctl *Controller) parseRange(c *gin.Context) (start, end time.Time, ok bool) {
	minDate, maxDate := ctl.dataset.Bounds()
	start, end = minDate, maxDate

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid start_date, expected YYYY-MM-DD"))
			return start, end, false
		}
		start = t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid end_date, expected YYYY-MM-DD"))
			return start, end, false
		}
		end = t
	}

	if end.Before(start) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "start_date must not be after end_date"))
		return start, end, false
	}
	return start, end, true
}
