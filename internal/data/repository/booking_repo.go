package repository

import (
	"context"
	"fmt"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error)
	CountByCustomerEmail(ctx context.Context, email string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, movie_id, showroom, starts_at, customer_name, customer_email,
	promo_code, discount_percent, ticket_sum, discount, net, booking_fee, tax, total_price, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.OrderID,
		&b.MovieID,
		&b.Showtime.Showroom,
		&b.Showtime.StartsAt,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.PromoCode,
		&b.DiscountPercent,
		&b.TicketSum,
		&b.Discount,
		&b.Net,
		&b.BookingFee,
		&b.Tax,
		&b.TotalPrice,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Showtime.MovieID = b.MovieID
	b.Showtime.StartsAt = b.Showtime.StartsAt.UTC()
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.MovieID,
		booking.Showtime.Showroom,
		booking.Showtime.StartsAt.UTC(),
		booking.CustomerName,
		booking.CustomerEmail,
		booking.PromoCode,
		booking.DiscountPercent,
		booking.TicketSum,
		booking.Discount,
		booking.Net,
		booking.BookingFee,
		booking.Tax,
		booking.TotalPrice,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("movie_id", booking.MovieID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCustomerEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE LOWER(customer_email) = LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by customer",
			zap.Error(err),
			zap.String("email", email),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by customer: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) CountByCustomerEmail(ctx context.Context, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE LOWER(customer_email) = LOWER($1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, email).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by customer",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("count bookings by customer: %w", err)
	}

	return count, nil
}
