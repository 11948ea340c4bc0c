package map_controller

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/analytics"
	"github.com/orlantha/e-commerce/models"
	"github.com/orlantha/e-commerce/services"
	"github.com/orlantha/e-commerce/web"
)

const exportFilename = "geospatial_sales_map.html"

var mapTemplate = template.Must(template.ParseFS(web.Templates, "templates/map.html"))

// Controller renders the geospatial view as a standalone Leaflet page.
type Controller struct {
	dataset *services.DatasetService
}

func NewController(dataset *services.DatasetService) *Controller {
	return &Controller{dataset: dataset}
}

type mapData struct {
	Locations     []models.LocationSummary
	HighestOrders *models.LocationSummary
}

// ExportMap godoc
// @Summary Export the geospatial sales map
// @Description Renders the per-location sales map as a standalone HTML page; pass download=1 to receive it as an attachment
// @Tags Dashboard
// @Produce html
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param download query string false "Set to 1 to download as a file"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/map [get]
func (ctl *Controller) ExportMap(c *gin.Context) {
	log.Printf("[dashboard.map] start")

	start, end, ok := ctl.parseRange(c)
	if !ok {
		return
	}
	session := ctl.dataset.Session(start, end)

	locations := analytics.OrderLocations(session.Records)
	data := mapData{
		Locations:     locations,
		HighestOrders: analytics.MaxOrderLocation(locations),
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, data); err != nil {
		log.Printf("[dashboard.map] ERROR render err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render map"))
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename))
		c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	}

	log.Printf("[dashboard.map] respond 200 locations=%d bytes=%d", len(locations), buf.Len())

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// parseRange mirrors the analytics controller's query handling so the map
// honors the same date filter as every other view.
func (ctl *Controller) parseRange(c *gin.Context) (start, end time.Time, ok bool) {
	minDate, maxDate := ctl.dataset.Bounds()
	start, end = minDate, maxDate

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid start_date, expected YYYY-MM-DD"))
			return start, end, false
		}
		start = t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
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
