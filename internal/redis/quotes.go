package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cab/internal/domain"
)

// QuoteTTL is how long a quote snapshot stays bookable.
const QuoteTTL = 15 * time.Minute

const quoteKeyPrefix = "quote:"

// QuoteStore holds quote snapshots in Redis so a confirmation books exactly
// the price that was quoted, without recomputation.
type QuoteStore struct {
	client *redis.Client
}

// NewQuoteStore creates a new QuoteStore.
func NewQuoteStore(client *redis.Client) *QuoteStore {
	return &QuoteStore{client: client}
}

// Put stores a quote snapshot with the standard TTL.
func (s *QuoteStore) Put(ctx context.Context, quote *domain.Quote) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, quoteKeyPrefix+quote.ID, data, QuoteTTL).Err()
}

// Get retrieves a quote snapshot. Returns (nil, nil) when the quote is
// missing or expired.
func (s *QuoteStore) Get(ctx context.Context, quoteID string) (*domain.Quote, error) {
	data, err := s.client.Get(ctx, quoteKeyPrefix+quoteID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var quote domain.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// Delete removes a quote snapshot once it has been consumed by a booking.
func (s *QuoteStore) Delete(ctx context.Context, quoteID string) error {
	return s.client.Del(ctx, quoteKeyPrefix+quoteID).Err()
}
