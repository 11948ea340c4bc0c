package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orlantha/e-commerce/cache/dataset_cache"
	"github.com/orlantha/e-commerce/models"
)

// Columns the loader requires in the source table. Extra columns are ignored.
var requiredColumns = []string{
	"order_id",
	"customer_id",
	"order_purchase_timestamp",
	"order_delivered_customer_date",
	"price",
	"product_category_name",
	"review_score",
	"order_delivery_time",
	"geolocation_state",
	"geolocation_city",
	"geolocation_lat",
	"geolocation_lng",
}

// Timestamp layouts tried in order when parsing the two datetime columns.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Load fetches the flat order table from source (an http(s) URL or a local
// file path), parses it, and returns the records sorted ascending by purchase
// timestamp. Loading is all-or-nothing: an unreachable source, a missing
// required column, or an unparsable value fails the whole load.
func Load(ctx context.Context, source string) ([]models.OrderRecord, error) {
	payload, err := Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(payload))
}

// Fetch returns the raw bytes of the dataset. Network fetches go through the
// Redis payload cache when one is configured; the parsed table itself is
// never cached, only the immutable source bytes.
func Fetch(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		payload, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("dataset: read %s: %w", source, err)
		}
		return payload, nil
	}

	if payload, ok := dataset_cache.Get(ctx, source); ok {
		log.Printf("[dataset.fetch] cache hit source=%s bytes=%d", source, len(payload))
		return payload, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset: fetch %s: unexpected status %s", source, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset: read body: %w", err)
	}

	dataset_cache.Set(ctx, source, payload)
	return payload, nil
}

// Parse reads the CSV table, resolving columns by header name so column order
// and extra columns do not matter.
func Parse(r io.Reader) ([]models.OrderRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset: missing column %q", name)
		}
	}

	records := make([]models.OrderRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row %d: %w", line+1, err)
		}
		line++

		record, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", line, err)
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PurchaseTimestamp.Before(records[j].PurchaseTimestamp)
	})
	return records, nil
}

func parseRow(row []string, col map[string]int) (models.OrderRecord, error) {
	field := func(name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	purchased, err := parseTimestamp(field("order_purchase_timestamp"))
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("order_purchase_timestamp: %w", err)
	}

	var delivered *time.Time
	if raw := field("order_delivered_customer_date"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			return models.OrderRecord{}, fmt.Errorf("order_delivered_customer_date: %w", err)
		}
		delivered = &t
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("price %q: %w", field("price"), err)
	}

	// Review scores ride along as floats in the merged table ("5.0"); values
	// that are absent or malformed load as 0 and fall out of the score-keyed
	// views downstream.
	score := 0
	if raw := field("review_score"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			score = int(f)
		}
	}

	var deliveryTime *float64
	if raw := field("order_delivery_time"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.OrderRecord{}, fmt.Errorf("order_delivery_time %q: %w", raw, err)
		}
		deliveryTime = &f
	}

	lat, err := parseCoordinate(field("geolocation_lat"))
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("geolocation_lat: %w", err)
	}
	lng, err := parseCoordinate(field("geolocation_lng"))
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("geolocation_lng: %w", err)
	}

	return models.OrderRecord{
		OrderID:           field("order_id"),
		CustomerID:        field("customer_id"),
		PurchaseTimestamp: purchased,
		DeliveredAt:       delivered,
		Price:             price,
		ProductCategory:   field("product_category_name"),
		ReviewScore:       score,
		DeliveryTime:      deliveryTime,
		GeoState:          field("geolocation_state"),
		GeoCity:           field("geolocation_city"),
		GeoLat:            lat,
		GeoLng:            lng,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", raw)
}

func parseCoordinate(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
