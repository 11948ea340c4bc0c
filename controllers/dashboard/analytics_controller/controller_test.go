package analytics_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlantha/e-commerce/models"
	"github.com/orlantha/e-commerce/services"
)

func fixtureRecord(orderID, customerID, purchased string, price float64, score int) models.OrderRecord {
	ts, err := time.Parse("2006-01-02 15:04:05", purchased)
	if err != nil {
		panic(err)
	}
	days := 5.0
	return models.OrderRecord{
		OrderID:           orderID,
		CustomerID:        customerID,
		PurchaseTimestamp: ts,
		Price:             decimal.NewFromFloat(price),
		ProductCategory:   "beds",
		ReviewScore:       score,
		DeliveryTime:      &days,
		GeoState:          "SP",
		GeoCity:           "sao paulo",
		GeoLat:            -23.55,
		GeoLng:            -46.63,
	}
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dataset := services.NewDatasetService([]models.OrderRecord{
		fixtureRecord("O1", "alice", "2024-01-01 08:00:00", 10, 5),
		fixtureRecord("O2", "alice", "2024-01-02 09:00:00", 20, 4),
		fixtureRecord("O3", "bob", "2024-01-03 10:00:00", 30, 5),
	})
	ctl := NewController(dataset)

	router := gin.New()
	api := router.Group("/api/v1/dashboard")
	api.GET("/meta", ctl.GetMeta)
	api.GET("/overview", ctl.GetOverview)
	api.GET("/daily-orders", ctl.GetDailyOrders)
	api.GET("/delivery-analysis", ctl.GetDeliveryAnalysis)
	api.GET("/top-products", ctl.GetTopProducts)
	api.GET("/rfm", ctl.GetRFM)
	api.GET("/geolocation", ctl.GetGeolocation)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body struct {
		Data  json.RawMessage `json:"data"`
		Error bool            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body.Data
}

func TestGetMeta(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/meta")
	require.Equal(t, http.StatusOK, w.Code)

	var meta models.DatasetMeta
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, "2024-01-01", meta.MinOrderDate)
	assert.Equal(t, "2024-01-03", meta.MaxOrderDate)
	assert.Equal(t, 3, meta.RecordCount)
}

func TestGetOverviewDefaultsToFullRange(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/overview")
	require.Equal(t, http.StatusOK, w.Code)

	var overview models.DashboardOverview
	require.NoError(t, json.Unmarshal(data, &overview))
	assert.Equal(t, 3, overview.TotalOrders)
	assert.Equal(t, "60", overview.TotalRevenue.String())
	assert.Equal(t, "R$ 60,00", overview.TotalRevenueFormatted)
}

func TestGetDailyOrdersHonorsRange(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/daily-orders?start_date=2024-01-02&end_date=2024-01-03")
	require.Equal(t, http.StatusOK, w.Code)

	var daily []models.DailyOrderSummary
	require.NoError(t, json.Unmarshal(data, &daily))
	require.Len(t, daily, 2)
	assert.Equal(t, "2024-01-02", daily[0].OrderDate)
	assert.Equal(t, "2024-01-03", daily[1].OrderDate)
}

func TestGetDeliveryAnalysisSortedByScoreDescending(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/delivery-analysis")
	require.Equal(t, http.StatusOK, w.Code)

	var scores []models.DeliveryScoreSummary
	require.NoError(t, json.Unmarshal(data, &scores))
	require.Len(t, scores, 2)
	assert.Equal(t, 5, scores[0].ReviewScore)
	assert.Equal(t, 4, scores[1].ReviewScore)
	assert.Equal(t, 2, scores[0].OrderCount)
}

func TestGetTopProducts(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/top-products")
	require.Equal(t, http.StatusOK, w.Code)

	var rankings []models.ProductRanking
	require.NoError(t, json.Unmarshal(data, &rankings))
	require.Len(t, rankings, 1)
	assert.Equal(t, "beds", rankings[0].ProductCategory)
	assert.Equal(t, 2, rankings[0].OrderCount) // O1 and O3 are five-star
}

func TestGetRFM(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/rfm")
	require.Equal(t, http.StatusOK, w.Code)

	var overview models.RFMOverview
	require.NoError(t, json.Unmarshal(data, &overview))
	require.Len(t, overview.TopByFrequency, 2)
	assert.Equal(t, "alice", overview.TopByFrequency[0].CustomerID)
	assert.Equal(t, 2, overview.TopByFrequency[0].Frequency)
	// bob ordered on the window's latest day
	require.Len(t, overview.TopByRecency, 2)
	assert.Equal(t, "bob", overview.TopByRecency[0].CustomerID)
	assert.Equal(t, 0, overview.TopByRecency[0].Recency)
	assert.Equal(t, 1.5, overview.AvgFrequency)
}

func TestGetGeolocation(t *testing.T) {
	router := testRouter()

	w, data := doGet(t, router, "/api/v1/dashboard/geolocation")
	require.Equal(t, http.StatusOK, w.Code)

	var insights models.GeoInsights
	require.NoError(t, json.Unmarshal(data, &insights))
	require.Len(t, insights.Locations, 1)
	require.NotNil(t, insights.HighestOrders)
	assert.Equal(t, "sao paulo", insights.HighestOrders.City)
	assert.Equal(t, 3, insights.HighestOrders.OrderCount)
}

func TestEmptyRangeReturnsEmptyViews(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"daily-orders", "delivery-analysis", "top-products"} {
		w, data := doGet(t, router, "/api/v1/dashboard/"+path+"?start_date=2025-06-01&end_date=2025-06-30")
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", string(data), path)
	}
}

func TestInvalidRangeResponds400(t *testing.T) {
	router := testRouter()

	w, _ := doGet(t, router, "/api/v1/dashboard/daily-orders?start_date=2024-01-03&end_date=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doGet(t, router, "/api/v1/dashboard/daily-orders?start_date=03-01-2024")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
