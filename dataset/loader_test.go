package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `index,order_id,customer_id,order_purchase_timestamp,order_delivered_customer_date,price,product_category_name,review_score,order_delivery_time,geolocation_state,geolocation_city,geolocation_lat,geolocation_lng
0,O2,c2,2024-01-03 10:30:00,2024-01-08 14:00:00,59.90,beds,5.0,5.0,SP,sao paulo,-23.55,-46.63
1,O1,c1,2024-01-01 08:15:00,,19.50,toys,4.0,,RJ,rio de janeiro,-22.90,-43.20
`

func TestParseResolvesColumnsAndSorts(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// sorted ascending by purchase timestamp, not file order
	assert.Equal(t, "O1", records[0].OrderID)
	assert.Equal(t, "O2", records[1].OrderID)

	first := records[0]
	assert.Equal(t, "c1", first.CustomerID)
	assert.Equal(t, "2024-01-01 08:15:00", first.PurchaseTimestamp.Format("2006-01-02 15:04:05"))
	assert.Nil(t, first.DeliveredAt)
	assert.Nil(t, first.DeliveryTime)
	assert.Equal(t, "19.50", first.Price.String())
	assert.Equal(t, 4, first.ReviewScore)

	second := records[1]
	require.NotNil(t, second.DeliveredAt)
	require.NotNil(t, second.DeliveryTime)
	assert.InDelta(t, 5.0, *second.DeliveryTime, 1e-9)
	assert.Equal(t, "beds", second.ProductCategory)
	assert.InDelta(t, -23.55, second.GeoLat, 1e-9)
	assert.InDelta(t, -46.63, second.GeoLng, 1e-9)
}

func TestParseMissingColumnFails(t *testing.T) {
	csv := "order_id,customer_id\nO1,c1\n"

	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestParseBadTimestampFails(t *testing.T) {
	csv := strings.Replace(sampleCSV, "2024-01-03 10:30:00", "not-a-date", 1)

	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_purchase_timestamp")
}

func TestParseBadPriceFails(t *testing.T) {
	csv := strings.Replace(sampleCSV, "59.90", "free", 1)

	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseHeaderOnlyYieldsNoRecords(t *testing.T) {
	header := sampleCSV[:strings.Index(sampleCSV, "\n")+1]

	records, err := Parse(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadFromLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
