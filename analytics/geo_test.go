package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlantha/e-commerce/models"
)

func TestOrderLocationsGroupsByExactCoordinates(t *testing.T) {
	records := []models.OrderRecord{
		withLocation(testRecord("O1", "c1", "2024-01-01 08:00:00", 10), "SP", "sao paulo", -23.55, -46.63),
		withLocation(testRecord("O2", "c2", "2024-01-01 09:00:00", 20), "SP", "sao paulo", -23.55, -46.63),
		// same city, slightly different coordinates: separate partition
		withLocation(testRecord("O3", "c3", "2024-01-01 10:00:00", 30), "SP", "sao paulo", -23.56, -46.63),
	}

	locations := OrderLocations(records)

	require.Len(t, locations, 2)
	assert.Equal(t, 2, locations[0].OrderCount)
	assert.Equal(t, "30", locations[0].Revenue.String())
	assert.Equal(t, 1, locations[1].OrderCount)
	assert.Equal(t, "30", locations[1].Revenue.String())
}

func TestOrderLocationsRevenueIsConserved(t *testing.T) {
	records := []models.OrderRecord{
		withLocation(testRecord("O1", "c1", "2024-01-01 08:00:00", 10.35), "SP", "sao paulo", -23.55, -46.63),
		withLocation(testRecord("O1", "c1", "2024-01-01 08:00:00", 5.15), "SP", "sao paulo", -23.55, -46.63),
		withLocation(testRecord("O2", "c2", "2024-01-01 09:00:00", 99.90), "RJ", "rio de janeiro", -22.90, -43.20),
	}

	locations := OrderLocations(records)

	total := decimal.Zero
	for _, loc := range locations {
		total = total.Add(loc.Revenue)
	}
	assert.True(t, total.Equal(decimal.NewFromFloat(115.40)), "got %s", total)
}

func TestMaxLocationsPickFirstOnTies(t *testing.T) {
	locations := []models.LocationSummary{
		{City: "a", OrderCount: 3, Revenue: decimal.NewFromInt(50)},
		{City: "b", OrderCount: 3, Revenue: decimal.NewFromInt(80)},
		{City: "c", OrderCount: 1, Revenue: decimal.NewFromInt(80)},
	}

	byOrders := MaxOrderLocation(locations)
	require.NotNil(t, byOrders)
	assert.Equal(t, "a", byOrders.City)

	byRevenue := MaxRevenueLocation(locations)
	require.NotNil(t, byRevenue)
	assert.Equal(t, "b", byRevenue.City)
}

func TestMaxLocationsEmptyInput(t *testing.T) {
	assert.Nil(t, MaxOrderLocation(nil))
	assert.Nil(t, MaxRevenueLocation(nil))
}
