// @title E-Commerce Dashboard API
// @version 1.0
// @description Aggregated analytics over the flat e-commerce order table
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/orlantha/e-commerce/config"
	"github.com/orlantha/e-commerce/controllers/dashboard/page_controller"
	"github.com/orlantha/e-commerce/dataset"
	"github.com/orlantha/e-commerce/middleware"
	"github.com/orlantha/e-commerce/routes/dashboard_routes"
	"github.com/orlantha/e-commerce/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis is optional: cache and rate limiting degrade without it
	config.ConnectRedis()

	// ================================
	// Load the order table (all-or-nothing)
	// ================================
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	source := config.DatasetSource()
	log.Printf("[startup] loading dataset source=%s", source)

	records, err := dataset.Load(ctx, source)
	if err != nil {
		log.Fatalf("❌ failed to load dataset: %v", err)
	}

	datasetService := services.NewDatasetService(records)
	minDate, maxDate := datasetService.Bounds()
	log.Printf("✅ dataset loaded rows=%d range=%s..%s",
		datasetService.Count(), minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))

	// ================================
	// Router
	// ================================
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", page_controller.GetDashboardPage)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rows": datasetService.Count()})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(120, time.Minute))
	dashboard_routes.SetupDashboardRoutes(api, datasetService)

	port := config.Port()
	log.Printf("🚀 dashboard listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ server error: %v", err)
	}
}
