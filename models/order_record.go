package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is one line item of the flat order table. An order with several
// line items appears as several records sharing the same OrderID, so counts
// that mean "orders" must de-duplicate on OrderID while revenue sums stay
// per line item.
type OrderRecord struct {
	OrderID           string          `json:"order_id"`
	CustomerID        string          `json:"customer_id"`
	PurchaseTimestamp time.Time       `json:"order_purchase_timestamp"`
	DeliveredAt       *time.Time      `json:"order_delivered_customer_date,omitempty"` // nil when not yet delivered
	Price             decimal.Decimal `json:"price"`
	ProductCategory   string          `json:"product_category_name"`
	ReviewScore       int             `json:"review_score"` // 1-5, 0 when absent or unparsable
	DeliveryTime      *float64        `json:"order_delivery_time,omitempty"` // days, nil when undelivered
	GeoState          string          `json:"geolocation_state"`
	GeoCity           string          `json:"geolocation_city"`
	GeoLat            float64         `json:"geolocation_lat"`
	GeoLng            float64         `json:"geolocation_lng"`
}
