package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"cab/internal/domain"
	"cab/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount           int32
	UpdateStatusCallCount     int32
	SetPaymentStatusCallCount int32

	// Error injection
	CreateError           error
	UpdateStatusError     error
	SetPaymentStatusError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking seeds a booking into the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if len(result) >= limit {
			break
		}
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	return nil
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id string, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = domain.StatusCancelled
	booking.CancelReason = reason
	return nil
}

func (m *MockBookingRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) error {
	atomic.AddInt32(&m.SetPaymentStatusCallCount, 1)
	if m.SetPaymentStatusError != nil {
		return m.SetPaymentStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.PaymentStatus = status
	booking.PaymentID = paymentID
	return nil
}

// GetBooking returns a booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// CountBookings returns the number of stored bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK QUOTE STORE
// ──────────────────────────────────────────────

// MockQuoteStore is an in-memory implementation of the quote snapshot store.
type MockQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]*domain.Quote

	PutError error
	GetError error
}

// NewMockQuoteStore creates a new mock quote store.
func NewMockQuoteStore() *MockQuoteStore {
	return &MockQuoteStore{quotes: make(map[string]*domain.Quote)}
}

func (m *MockQuoteStore) Put(ctx context.Context, quote *domain.Quote) error {
	if m.PutError != nil {
		return m.PutError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[quote.ID] = quote
	return nil
}

func (m *MockQuoteStore) Get(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	quote, ok := m.quotes[quoteID]
	if !ok {
		return nil, nil // missing or expired
	}
	copy := *quote
	return &copy, nil
}

func (m *MockQuoteStore) Delete(ctx context.Context, quoteID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quotes, quoteID)
	return nil
}

// HasQuote reports whether a quote is still stored.
func (m *MockQuoteStore) HasQuote(quoteID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.quotes[quoteID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK DISTANCE PROVIDER
// ──────────────────────────────────────────────

// MockDistanceProvider is a mock implementation of DistanceProvider.
type MockDistanceProvider struct {
	Result domain.DistanceResult
	Err    error

	CallCount int32
}

func (m *MockDistanceProvider) Distance(ctx context.Context, origin, destination string) (domain.DistanceResult, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.Err != nil {
		return domain.DistanceResult{}, m.Err
	}
	return m.Result, nil
}

// ──────────────────────────────────────────────
// MOCK NOTIFIER
// ──────────────────────────────────────────────

// MockNotifier records notification calls.
type MockNotifier struct {
	mu        sync.Mutex
	Created   []string
	Cancelled []string
}

func (m *MockNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, booking.ID)
}

func (m *MockNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cancelled = append(m.Cancelled, booking.ID)
}
