package dashboard_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orlantha/e-commerce/controllers/dashboard/analytics_controller"
	"github.com/orlantha/e-commerce/controllers/dashboard/map_controller"
	"github.com/orlantha/e-commerce/services"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, dataset *services.DatasetService) {
	ctl := analytics_controller.NewController(dataset)
	mapCtl := map_controller.NewController(dataset)

	dashboard := rg.Group("/dashboard")

	dashboard.GET("/meta", ctl.GetMeta)
	dashboard.GET("/overview", ctl.GetOverview)
	dashboard.GET("/daily-orders", ctl.GetDailyOrders)
	dashboard.GET("/delivery-analysis", ctl.GetDeliveryAnalysis)
	dashboard.GET("/top-products", ctl.GetTopProducts)
	dashboard.GET("/rfm", ctl.GetRFM)
	dashboard.GET("/geolocation", ctl.GetGeolocation)
	dashboard.GET("/map", mapCtl.ExportMap)
}
