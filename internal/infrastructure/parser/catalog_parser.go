package parser

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

type catalogParser struct{}

// NewCatalogParser builds the Excel catalog parser.
func NewCatalogParser() repository.CatalogParser {
	return &catalogParser{}
}

// ParseProducts reads products from a spreadsheet file on disk.
func (p *catalogParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return p.parseFile(f)
}

// ParseProductsFromBytes reads products from in-memory file data.
func (p *catalogParser) ParseProductsFromBytes(ctx context.Context, data []byte) ([]entity.Product, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel data: %w", err)
	}
	defer f.Close()

	return p.parseFile(f)
}

func (p *catalogParser) parseFile(f *excelize.File) ([]entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("excel file has no data rows")
	}

	columns := mapColumns(rows[0])
	if _, ok := columns["product_id"]; !ok {
		return nil, fmt.Errorf("header row is missing the product_id column")
	}

	var products []entity.Product
	for i, row := range rows[1:] {
		product, err := parseRow(columns, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if product.ProductID == "" {
			continue // skip blank rows
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("no products found in excel file")
	}
	return products, nil
}

// mapColumns matches header names to column indexes, tolerating case and
// spacing differences.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			columns[key] = i
		}
	}
	return columns
}

func parseRow(columns map[string]int, row []string) (entity.Product, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	product := entity.Product{
		ProductID:   cell("product_id"),
		Name:        cell("name"),
		Category:    cell("category"),
		Brand:       cell("brand"),
		Size:        cell("size"),
		Description: cell("description"),
		ImageURL:    cell("image_url"),
		Ingredients: splitList(cell("ingredients")),
		DietaryInfo: splitList(cell("dietary_info")),
	}

	var err error
	if product.Price, err = parseNumber(cell("price")); err != nil {
		return entity.Product{}, fmt.Errorf("bad price: %w", err)
	}
	if product.MRP, err = parseNumber(cell("mrp")); err != nil {
		return entity.Product{}, fmt.Errorf("bad mrp: %w", err)
	}
	if product.Rating, err = parseNumber(cell("rating")); err != nil {
		return entity.Product{}, fmt.Errorf("bad rating: %w", err)
	}

	if raw := cell("reviews_count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Product{}, fmt.Errorf("bad reviews_count: %w", err)
		}
		product.ReviewsCount = count
	}

	product.InStock = parseBool(cell("in_stock"))
	return product, nil
}

func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "yes", "1", "y", "in stock":
		return true
	default:
		return false
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
