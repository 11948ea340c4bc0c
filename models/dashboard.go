package models

import "github.com/shopspring/decimal"

// DatasetMeta describes the loaded dataset so the UI can initialize its
// date-range picker.
type DatasetMeta struct {
	MinOrderDate string `json:"min_order_date"` // earliest purchase date (YYYY-MM-DD)
	MaxOrderDate string `json:"max_order_date"` // latest purchase date (YYYY-MM-DD)
	RecordCount  int    `json:"record_count"`   // line items in the dataset
}

// DashboardOverview holds the two headline metrics of the dashboard
type DashboardOverview struct {
	TotalOrders           int             `json:"total_orders"`            // distinct orders in the selected range
	TotalRevenue          decimal.Decimal `json:"total_revenue"`           // summed line-item prices
	TotalRevenueFormatted string          `json:"total_revenue_formatted"` // Brazilian-real rendering, e.g. "R$ 1.234,56"
}

// DailyOrderSummary is one point of the daily order/revenue trend
type DailyOrderSummary struct {
	OrderDate  string          `json:"order_date"`  // calendar day (YYYY-MM-DD)
	OrderCount int             `json:"order_count"` // distinct orders that day
	Revenue    decimal.Decimal `json:"revenue"`     // sum over all line items that day
}

// DeliveryScoreSummary groups delivery performance by customer review score
type DeliveryScoreSummary struct {
	ReviewScore int      `json:"review_score"`
	OrderCount  int      `json:"order_count"` // distinct orders with this score
	MaxTime     float64  `json:"max_time"`    // delivery-time stats in days
	MeanTime    float64  `json:"mean_time"`
	MedianTime  float64  `json:"median_time"`
	StdTime     *float64 `json:"std_time"` // sample std; null with fewer than two delivery times
}

// ProductRanking is one bar of the top-products chart
type ProductRanking struct {
	ProductCategory string `json:"product_category_name"`
	OrderCount      int    `json:"order_count"` // distinct five-star orders
}

// RFMRecord is one customer's recency/frequency/monetary segmentation row.
// Recency is measured against the filtered window's latest purchase date,
// not against the wall clock.
type RFMRecord struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"`   // whole days since the customer's last order
	Frequency  int             `json:"frequency"` // line items bought
	Monetary   decimal.Decimal `json:"monetary"`  // summed spend
}

// RFMOverview bundles the averages and the three top-5 leaderboards shown on
// the customer segmentation section.
type RFMOverview struct {
	AvgRecency           float64         `json:"avg_recency"`
	AvgFrequency         float64         `json:"avg_frequency"`
	AvgMonetary          decimal.Decimal `json:"avg_monetary"`
	AvgMonetaryFormatted string          `json:"avg_monetary_formatted"`
	TopByRecency         []RFMRecord     `json:"top_by_recency"`   // lowest recency first
	TopByFrequency       []RFMRecord     `json:"top_by_frequency"` // highest frequency first
	TopByMonetary        []RFMRecord     `json:"top_by_monetary"`  // highest monetary first
}

// LocationSummary aggregates sales at one exact geolocation point. The same
// city can appear under several coordinate variants; points are kept as-is.
type LocationSummary struct {
	State      string          `json:"state"`
	City       string          `json:"city"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	OrderCount int             `json:"order_count"` // distinct orders at this point
	Revenue    decimal.Decimal `json:"revenue"`
}

// GeoInsights is the geospatial view: every location plus the two highlighted
// ones the map calls out.
type GeoInsights struct {
	Locations      []LocationSummary `json:"locations"`
	HighestOrders  *LocationSummary  `json:"highest_orders"`  // nil for an empty range
	HighestRevenue *LocationSummary  `json:"highest_revenue"` // nil for an empty range
}
