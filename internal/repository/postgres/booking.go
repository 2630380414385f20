package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cab/internal/domain"
	"cab/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `id, name, phone, email, origin, destination, rental_package, trip_type, car_type, trip_date, trip_time, return_date, passengers, child_on_board, patient_on_board, pet_on_board, status, distance_km, distance_estimated, total_amount, price_metadata, payment_status, payment_id, cancel_reason, cancelled_at, created_at, updated_at`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	`

	_, err := r.q.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Phone,
		nullString(b.Email),
		b.Origin,
		nullString(b.Destination),
		nullString(b.RentalPackage),
		b.TripType,
		b.CarType,
		b.Date,
		b.Time,
		nullString(b.ReturnDate),
		b.Passengers,
		b.ChildOnBoard,
		b.PatientOnBoard,
		b.PetOnBoard,
		b.Status,
		b.DistanceKm,
		b.DistanceEstimated,
		b.TotalAmount,
		b.PriceMetadata,
		b.PaymentStatus,
		nullString(b.PaymentID),
		nullString(b.CancelReason),
		nullTime(b.CancelledAt),
		b.CreatedAt,
		b.UpdatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetRecent retrieves the most recent bookings, newest first.
func (r *BookingRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	rows, err := r.q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateStatus transitions a booking to a new lifecycle status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Cancel marks a booking cancelled with a reason.
func (r *BookingRepository) Cancel(ctx context.Context, id string, reason string) error {
	query := `
		UPDATE bookings
		SET status = $1, cancel_reason = $2, cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.q.ExecContext(ctx, query, domain.StatusCancelled, nullString(reason), id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// SetPaymentStatus records a payment state change for a booking.
func (r *BookingRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) error {
	query := `UPDATE bookings SET payment_status = $1, payment_id = $2, updated_at = NOW() WHERE id = $3`

	result, err := r.q.ExecContext(ctx, query, status, nullString(paymentID), id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var email, destination, rentalPackage, returnDate sql.NullString
	var paymentID, cancelReason sql.NullString
	var cancelledAt sql.NullTime

	err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Phone,
		&email,
		&b.Origin,
		&destination,
		&rentalPackage,
		&b.TripType,
		&b.CarType,
		&b.Date,
		&b.Time,
		&returnDate,
		&b.Passengers,
		&b.ChildOnBoard,
		&b.PatientOnBoard,
		&b.PetOnBoard,
		&b.Status,
		&b.DistanceKm,
		&b.DistanceEstimated,
		&b.TotalAmount,
		&b.PriceMetadata,
		&b.PaymentStatus,
		&paymentID,
		&cancelReason,
		&cancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Email = email.String
	b.Destination = destination.String
	b.RentalPackage = rentalPackage.String
	b.ReturnDate = returnDate.String
	b.PaymentID = paymentID.String
	b.CancelReason = cancelReason.String
	if cancelledAt.Valid {
		b.CancelledAt = cancelledAt.Time
	}

	return &b, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
