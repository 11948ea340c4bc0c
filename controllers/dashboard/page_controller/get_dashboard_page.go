package page_controller

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/web"
)

var pageTemplate = template.Must(template.ParseFS(web.Templates, "templates/dashboard.html"))

// GetDashboardPage serves the dashboard UI. The page is static glue: it pulls
// everything it shows from the JSON endpoints under /api/v1/dashboard.
func GetDashboardPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(c.Writer, nil); err != nil {
		log.Printf("[dashboard.page] ERROR render err=%v", err)
		c.Status(http.StatusInternalServerError)
	}
}
