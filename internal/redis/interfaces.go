package redis

import (
	"context"

	"cab/internal/domain"
)

// QuoteStoreInterface defines the interface for quote snapshot storage.
type QuoteStoreInterface interface {
	Put(ctx context.Context, quote *domain.Quote) error
	Get(ctx context.Context, quoteID string) (*domain.Quote, error)
	Delete(ctx context.Context, quoteID string) error
}

// Ensure concrete types implement interfaces.
var _ QuoteStoreInterface = (*QuoteStore)(nil)
