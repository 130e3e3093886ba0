package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/mehanizm/airtable"
	"go.uber.org/zap/zaptest"

	"github.com/verdora/voicecart-server/domain/entities"
)

func TestNewAirtableCatalog(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Test without credentials
	os.Unsetenv("AIRTABLE_API_KEY")
	os.Unsetenv("AIRTABLE_BASE_ID")
	config := NewAirtableConfigFromEnv()
	_, err := NewAirtableCatalog(config, logger)
	if err == nil {
		t.Error("Expected error when API key is not set")
	}

	// Test with credentials
	os.Setenv("AIRTABLE_API_KEY", "test-api-key")
	os.Setenv("AIRTABLE_BASE_ID", "appTestBase")
	defer os.Unsetenv("AIRTABLE_API_KEY")
	defer os.Unsetenv("AIRTABLE_BASE_ID")

	config = NewAirtableConfigFromEnv()
	catalog, err := NewAirtableCatalog(config, logger)
	if err != nil {
		t.Fatalf("Failed to create AirtableCatalog: %v", err)
	}
	if catalog == nil {
		t.Fatal("Expected catalog instance")
	}
}

func TestAirtableCatalog_Search_CapAndSort(t *testing.T) {
	logger := zaptest.NewLogger(t)

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()

		type fakeRecord struct {
			ID     string                 `json:"id"`
			Fields map[string]interface{} `json:"fields"`
		}
		records := make([]fakeRecord, 0, 12)
		for i := 1; i <= 12; i++ {
			records = append(records, fakeRecord{
				ID: fmt.Sprintf("rec%02d", i),
				Fields: map[string]interface{}{
					"title":    fmt.Sprintf("Title %02d", i),
					"in_stock": true,
				},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"records": records})
	}))
	defer server.Close()

	client := airtable.NewClient("test-api-key")
	client.SetBaseURL(server.URL)
	catalog := &AirtableCatalog{
		table:  client.GetTable("appTestBase", "products"),
		logger: logger,
	}

	products, err := catalog.Search(context.Background(), entities.ProductQuery{Category: "potting-soil"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(products) != maxSearchResults {
		t.Fatalf("Expected %d products from an oversized store page, got %d", maxSearchResults, len(products))
	}
	if products[0].Title != "Title 01" || products[9].Title != "Title 10" {
		t.Errorf("Expected store order preserved up to the cap, got first %q last %q",
			products[0].Title, products[9].Title)
	}

	if got := gotQuery.Get("filterByFormula"); got != `AND({in_stock} = TRUE(), {category} = "potting-soil")` {
		t.Errorf("Unexpected filter formula sent to store: %q", got)
	}
	if gotQuery.Get("sort[0][field]") != fieldTitle || gotQuery.Get("sort[0][direction]") != "asc" {
		t.Errorf("Expected title-ascending sort parameters, got %v", gotQuery)
	}
	if gotQuery.Get("maxRecords") != "10" {
		t.Errorf("Expected maxRecords=10 on the query, got %q", gotQuery.Get("maxRecords"))
	}
}

func TestAirtableCatalog_Search_StoreFailure(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"INVALID_FILTER_BY_FORMULA"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := airtable.NewClient("test-api-key")
	client.SetBaseURL(server.URL)
	catalog := &AirtableCatalog{
		table:  client.GetTable("appTestBase", "products"),
		logger: logger,
	}

	if _, err := catalog.Search(context.Background(), entities.ProductQuery{}); err == nil {
		t.Error("Expected error for non-2xx store response")
	}
}

func TestRecordToProduct(t *testing.T) {
	fields := map[string]interface{}{
		"product_id":        "SKU-1042",
		"title":             "EcoMix Potting Soil",
		"brand":             "GreenGrow",
		"category":          "potting-soil",
		"tags":              []interface{}{"organic", "drainage"},
		"short_description": "Lightweight organic mix with added perlite.",
		"price":             12.99,
		"bag-size":          "20L",
		"in_stock":          true,
		"image_url":         "https://cdn.example.com/ecomix.jpg",
		"use-case":          "indoor container plants",
		"voice_script":      "EcoMix keeps roots airy and drains fast.",
	}

	product := recordToProduct("rec123", fields)

	if product.ID != "rec123" {
		t.Errorf("Expected record ID 'rec123', got %q", product.ID)
	}
	if product.ProductID != "SKU-1042" {
		t.Errorf("Expected product_id 'SKU-1042', got %q", product.ProductID)
	}
	if product.Title != "EcoMix Potting Soil" {
		t.Errorf("Expected title 'EcoMix Potting Soil', got %q", product.Title)
	}
	if product.BagSize != "20L" {
		t.Errorf("Expected hyphenated bag-size field to map, got %q", product.BagSize)
	}
	if product.UseCase != "indoor container plants" {
		t.Errorf("Expected hyphenated use-case field to map, got %q", product.UseCase)
	}
	if product.Price != 12.99 {
		t.Errorf("Expected price 12.99, got %f", product.Price)
	}
	if !product.InStock {
		t.Error("Expected in_stock true")
	}
	if len(product.Tags) != 2 || product.Tags[0] != "organic" || product.Tags[1] != "drainage" {
		t.Errorf("Expected tags [organic drainage], got %v", product.Tags)
	}
}

func TestRecordToProduct_AbsentOptionalFields(t *testing.T) {
	product := recordToProduct("rec456", map[string]interface{}{
		"title": "Bare Record",
	})

	if product.Title != "Bare Record" {
		t.Errorf("Expected title 'Bare Record', got %q", product.Title)
	}
	if product.Brand != "" || product.ImageURL != "" {
		t.Error("Expected absent string fields to normalize to empty")
	}
	if product.Tags != nil {
		t.Errorf("Expected nil tags, got %v", product.Tags)
	}
	if product.Price != 0 {
		t.Errorf("Expected zero price, got %f", product.Price)
	}
}

func TestTagsField_CommaSeparatedString(t *testing.T) {
	tags := tagsField(map[string]interface{}{"tags": "organic, drainage , "}, "tags")

	if len(tags) != 2 || tags[0] != "organic" || tags[1] != "drainage" {
		t.Errorf("Expected [organic drainage], got %v", tags)
	}
}
