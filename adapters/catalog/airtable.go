package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mehanizm/airtable"
	"go.uber.org/zap"

	"github.com/verdora/voicecart-server/domain/entities"
	"github.com/verdora/voicecart-server/domain/repositories"
)

const (
	defaultTableName = "products"

	// Search responses never exceed this many products.
	maxSearchResults = 10
)

// AirtableConfig holds configuration for the AirtableCatalog adapter
// Required fields:
// - APIKey: Airtable personal access token
// - BaseID: the base/workspace identifier holding the catalog table
// Optional fields with defaults:
// - TableName: the catalog table name (default: "products")
type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
}

// AirtableCatalog implements ProductCatalog against an Airtable base
type AirtableCatalog struct {
	table  *airtable.Table
	logger *zap.Logger
}

// Ensure AirtableCatalog implements the ProductCatalog interface
var _ repositories.ProductCatalog = (*AirtableCatalog)(nil)

// ValidateAirtableConfig validates the AirtableConfig
func ValidateAirtableConfig(config AirtableConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("airtable API key is required")
	}
	if config.BaseID == "" {
		return fmt.Errorf("airtable base ID is required")
	}
	return nil
}

// NewAirtableCatalog creates a new Airtable-backed catalog. The underlying
// client is constructed once and reused across requests.
func NewAirtableCatalog(config AirtableConfig, logger *zap.Logger) (*AirtableCatalog, error) {
	if err := ValidateAirtableConfig(config); err != nil {
		return nil, err
	}

	tableName := config.TableName
	if tableName == "" {
		tableName = defaultTableName
		logger.Info("Using default table name", zap.String("tableName", tableName))
	}

	client := airtable.NewClient(config.APIKey)
	table := client.GetTable(config.BaseID, tableName)

	return &AirtableCatalog{
		table:  table,
		logger: logger,
	}, nil
}

// NewAirtableConfigFromEnv creates a new AirtableConfig from environment variables
func NewAirtableConfigFromEnv() AirtableConfig {
	return AirtableConfig{
		APIKey:    os.Getenv("AIRTABLE_API_KEY"),
		BaseID:    os.Getenv("AIRTABLE_BASE_ID"),
		TableName: os.Getenv("AIRTABLE_TABLE_NAME"),
	}
}

// Search executes a filtered lookup against the catalog table. Results are
// sorted by title ascending by the store and capped at maxSearchResults.
func (a *AirtableCatalog) Search(ctx context.Context, query entities.ProductQuery) ([]entities.Product, error) {
	formula := BuildFilterFormula(query)

	a.logger.Info("Searching catalog",
		zap.String("category", query.Category),
		zap.Strings("tags", query.Tags),
		zap.String("formula", formula))

	result, err := a.table.GetRecords().
		WithFilterFormula(formula).
		WithSort(struct {
			FieldName string
			Direction string
		}{FieldName: fieldTitle, Direction: "asc"}).
		MaxRecords(maxSearchResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("airtable query failed: %w", err)
	}

	products := make([]entities.Product, 0, len(result.Records))
	for _, record := range result.Records {
		if len(products) == maxSearchResults {
			break
		}
		products = append(products, recordToProduct(record.ID, record.Fields))
	}

	a.logger.Info("Catalog search completed", zap.Int("count", len(products)))
	return products, nil
}

// recordToProduct projects a raw store record onto the normalized Product
// shape. The store's hyphenated "bag-size" and "use-case" fields map to the
// underscored names.
func recordToProduct(id string, fields map[string]interface{}) entities.Product {
	return entities.Product{
		ID:               id,
		ProductID:        stringField(fields, "product_id"),
		Title:            stringField(fields, "title"),
		Brand:            stringField(fields, "brand"),
		Category:         stringField(fields, "category"),
		Tags:             tagsField(fields, "tags"),
		ShortDescription: stringField(fields, "short_description"),
		Price:            numberField(fields, "price"),
		BagSize:          stringField(fields, "bag-size"),
		InStock:          boolField(fields, "in_stock"),
		ImageURL:         stringField(fields, "image_url"),
		UseCase:          stringField(fields, "use-case"),
		VoiceScript:      stringField(fields, "voice_script"),
	}
}

func stringField(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}

func numberField(fields map[string]interface{}, name string) float64 {
	if v, ok := fields[name].(float64); ok {
		return v
	}
	return 0
}

func boolField(fields map[string]interface{}, name string) bool {
	if v, ok := fields[name].(bool); ok {
		return v
	}
	return false
}

// tagsField accepts either a multi-select array or a comma-separated string.
func tagsField(fields map[string]interface{}, name string) []string {
	switch v := fields[name].(type) {
	case []interface{}:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		tags := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
		return tags
	default:
		return nil
	}
}
