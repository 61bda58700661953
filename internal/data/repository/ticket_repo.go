package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// ReserveBatch inserts every ticket of a booking inside tx and returns the
	// seats that were already held by another booking for the same slot.
	// Nothing is inserted for those seats; the caller must roll back.
	ReserveBatch(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) (taken []string, err error)
	FindBookedSeats(ctx context.Context, slot entity.Slot) ([]string, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingTicket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_ticket")),
	}
}

func (r *ticketRepository) ReserveBatch(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) ([]string, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO booking_tickets (id, booking_id, movie_id, showroom, starts_at, seat, category, unit_price, created_at)
		VALUES `)

	// a fixed seat order keeps concurrent batches from deadlocking on each other
	ordered := slices.Clone(tickets)
	slices.SortFunc(ordered, func(a, b *entity.BookingTicket) int {
		return strings.Compare(a.Seat, b.Seat)
	})

	const cols = 9
	args := make([]any, 0, len(ordered)*cols)
	for i, t := range ordered {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9)
		args = append(args,
			t.ID,
			t.BookingID,
			slot.MovieID,
			slot.Showroom,
			slot.StartsAt.UTC(),
			t.Seat,
			t.Category,
			t.UnitPrice,
			t.CreatedAt,
		)
	}
	sb.WriteString(`
		ON CONFLICT (movie_id, showroom, starts_at, seat) DO NOTHING
		RETURNING seat`)

	rows, err := tx.Query(ctx, sb.String(), args...)
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.String("movie_id", slot.MovieID.String()),
			zap.Int("seats", len(tickets)),
		)
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	inserted, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect reserved seats: %w", err)
	}

	got := make(map[string]struct{}, len(inserted))
	for _, seat := range inserted {
		got[seat] = struct{}{}
	}

	var taken []string
	for _, t := range tickets {
		if _, ok := got[t.Seat]; !ok {
			taken = append(taken, t.Seat)
		}
	}

	if len(taken) > 0 {
		r.log.Info("Seats already booked",
			zap.Strings("seats", taken),
			zap.String("movie_id", slot.MovieID.String()),
			zap.String("showroom", string(slot.Showroom)),
		)
	}
	return taken, nil
}

func (r *ticketRepository) FindBookedSeats(ctx context.Context, slot entity.Slot) ([]string, error) {
	query := `
		SELECT seat
		FROM booking_tickets
		WHERE movie_id = $1 AND showroom = $2 AND starts_at = $3
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, slot.MovieID, slot.Showroom, slot.StartsAt.UTC())
	if err != nil {
		r.log.Error("Failed to find booked seats",
			zap.Error(err),
			zap.String("movie_id", slot.MovieID.String()),
		)
		return nil, fmt.Errorf("find booked seats: %w", err)
	}

	seats, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect booked seats: %w", err)
	}
	if seats == nil {
		seats = []string{}
	}
	return seats, nil
}

func (r *ticketRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingTicket, error) {
	query := `
		SELECT id, booking_id, seat, category, unit_price, created_at
		FROM booking_tickets
		WHERE booking_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find tickets by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find tickets for booking %s: %w", bookingID, err)
	}
	defer rows.Close()

	var tickets []*entity.BookingTicket
	for rows.Next() {
		var t entity.BookingTicket
		if err := rows.Scan(&t.ID, &t.BookingID, &t.Seat, &t.Category, &t.UnitPrice, &t.CreatedAt); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}
	return tickets, nil
}
