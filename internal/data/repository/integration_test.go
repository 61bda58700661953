package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestDB connects to TEST_DATABASE_URL, applies the schema and empties
// every table. Tests are skipped when the variable is not set.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, url, 20)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	schema, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = db.Exec(ctx, string(schema))
	require.NoError(t, err)

	_, err = db.Exec(ctx, `TRUNCATE booking_tickets, bookings, showtimes, promo_codes, price_config, promo_subscribers, movies CASCADE`)
	require.NoError(t, err)

	return db
}

func seedMovie(t *testing.T, repo *Repository, title string) *entity.Movie {
	t.Helper()

	now := time.Now().UTC()
	movie := &entity.Movie{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:  title,
		Rating: "PG-13",
	}
	require.NoError(t, repo.Movie.Create(context.Background(), movie))
	return movie
}

func TestShowtimeUniquePerShowroomAndInstant(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	first := seedMovie(t, repo, "First")
	second := seedMovie(t, repo, "Second")
	startsAt := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)

	created, err := repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    first.ID,
		Showroom:   entity.Showroom1,
		StartsAt:   startsAt,
	})
	require.NoError(t, err)
	assert.True(t, created)

	// same instant written with another offset
	created, err = repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    second.ID,
		Showroom:   entity.Showroom1,
		StartsAt:   startsAt.In(time.FixedZone("CEST", 2*60*60)),
	})
	require.NoError(t, err)
	assert.False(t, created)

	created, err = repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    second.ID,
		Showroom:   entity.Showroom2,
		StartsAt:   startsAt,
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, err = repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    uuid.New(),
		Showroom:   entity.Showroom3,
		StartsAt:   startsAt,
	})
	assert.ErrorIs(t, err, ErrForeignKey)
}

var errSeatTaken = errors.New("seat taken")

func TestConcurrentReservationSingleWinner(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Contested")
	slot := entity.Slot{
		MovieID:  movie.ID,
		Showroom: entity.Showroom1,
		StartsAt: time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC),
	}
	_, err := repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    slot.MovieID,
		Showroom:   slot.Showroom,
		StartsAt:   slot.StartsAt,
	})
	require.NoError(t, err)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
				booking := newTestBooking(slot, fmt.Sprintf("ORDER-%02d", i), "A1", "B2")
				if err := repo.Booking.Create(ctx, tx, booking); err != nil {
					return err
				}
				taken, err := repo.Ticket.ReserveBatch(ctx, tx, slot, booking.Tickets)
				if err != nil {
					return err
				}
				if len(taken) > 0 {
					return errSeatTaken
				}
				return nil
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, errSeatTaken):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	seats, err := repo.Ticket.FindBookedSeats(ctx, slot)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "B2"}, seats)
}

func TestReserveBatchReportsTakenSeats(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Partial")
	slot := entity.Slot{MovieID: movie.ID, Showroom: entity.Showroom2, StartsAt: time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)}

	err := repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		first := newTestBooking(slot, "ORDER-FIRST", "C3")
		require.NoError(t, repo.Booking.Create(ctx, tx, first))
		_, err := repo.Ticket.ReserveBatch(ctx, tx, slot, first.Tickets)
		return err
	})
	require.NoError(t, err)

	err = repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		second := newTestBooking(slot, "ORDER-SECOND", "C2", "C3", "C4")
		require.NoError(t, repo.Booking.Create(ctx, tx, second))
		taken, err := repo.Ticket.ReserveBatch(ctx, tx, slot, second.Tickets)
		require.NoError(t, err)
		assert.Equal(t, []string{"C3"}, taken)
		return errSeatTaken
	})
	assert.ErrorIs(t, err, errSeatTaken)

	// the rolled back booking left nothing behind
	seats, err := repo.Ticket.FindBookedSeats(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, []string{"C3"}, seats)
}

func newTestBooking(slot entity.Slot, orderID string, seats ...string) *entity.Booking {
	now := time.Now().UTC()
	booking := &entity.Booking{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		OrderID:       orderID,
		MovieID:       slot.MovieID,
		Showtime:      slot,
		CustomerName:  "Test",
		CustomerEmail: "test@example.com",
	}
	for _, seat := range seats {
		booking.Tickets = append(booking.Tickets, &entity.BookingTicket{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:  booking.ID,
			Seat:       seat,
			Category:   entity.CategoryAdult,
			UnitPrice:  10,
		})
	}
	return booking
}

func TestMovieDeleteCascadesShowtimesUnlessBooked(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	free := seedMovie(t, repo, "Unbooked")
	_, err := repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    free.ID,
		Showroom:   entity.Showroom1,
		StartsAt:   time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	deleted, err := repo.Movie.Delete(ctx, free.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	showtimes, err := repo.Showtime.FindByMovieID(ctx, free.ID)
	require.NoError(t, err)
	assert.Empty(t, showtimes)

	booked := seedMovie(t, repo, "Booked")
	slot := entity.Slot{MovieID: booked.ID, Showroom: entity.Showroom2, StartsAt: time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC)}
	err = repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return repo.Booking.Create(ctx, tx, newTestBooking(slot, "ORDER-KEEP", "A1"))
	})
	require.NoError(t, err)

	deleted, err = repo.Movie.Delete(ctx, booked.ID)
	assert.ErrorIs(t, err, ErrReferenced)
	assert.False(t, deleted)

	movie, err := repo.Movie.FindByID(ctx, booked.ID)
	require.NoError(t, err)
	assert.NotNil(t, movie)

	deleted, err = repo.Movie.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLockSlotSeesRemovedShowtime(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Locked")
	slot := entity.Slot{MovieID: movie.ID, Showroom: entity.Showroom1, StartsAt: time.Date(2024, 6, 4, 19, 0, 0, 0, time.UTC)}
	_, err := repo.Showtime.Create(ctx, &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    slot.MovieID,
		Showroom:   slot.Showroom,
		StartsAt:   slot.StartsAt,
	})
	require.NoError(t, err)

	err = repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		found, err := repo.Showtime.LockSlot(ctx, tx, slot)
		require.NoError(t, err)
		assert.True(t, found)
		return nil
	})
	require.NoError(t, err)

	removed, err := repo.Showtime.Delete(ctx, slot.MovieID, slot.Showroom, slot.StartsAt)
	require.NoError(t, err)
	require.True(t, removed)

	err = repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		found, err := repo.Showtime.LockSlot(ctx, tx, slot)
		require.NoError(t, err)
		assert.False(t, found)
		return nil
	})
	require.NoError(t, err)
}

func TestPriceUpsertReturnsStoredValues(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	cfg := &entity.PriceConfig{
		TicketPrices: map[entity.TicketCategory]float64{
			entity.CategoryAdult:  12,
			entity.CategoryChild:  8,
			entity.CategorySenior: 9,
		},
		BookingFee: 1.234,
		TaxRate:    0.07,
	}
	created, err := repo.Price.Upsert(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1.23, cfg.BookingFee)

	stored, err := repo.Price.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.BookingFee, stored.BookingFee)
}
