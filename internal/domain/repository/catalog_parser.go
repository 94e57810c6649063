package repository

import (
	"context"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
)

// CatalogParser reads catalog spreadsheets for bulk product loads.
type CatalogParser interface {
	// ParseProducts reads products from a spreadsheet file on disk.
	ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error)

	// ParseProductsFromBytes reads products from in-memory file data.
	ParseProductsFromBytes(ctx context.Context, data []byte) ([]entity.Product, error)
}
