package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	// Create inserts the showtime unless the showroom is already taken at that
	// instant; created is false in that case.
	Create(ctx context.Context, showtime *entity.Showtime) (created bool, err error)
	Delete(ctx context.Context, movieID uuid.UUID, showroom entity.Showroom, startsAt time.Time) (bool, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error)
	Exists(ctx context.Context, slot entity.Slot) (bool, error)
	// LockSlot takes a share lock on the showtime row inside tx so that it
	// cannot be removed before tx commits. found is false when it is gone.
	LockSlot(ctx context.Context, tx pgx.Tx, slot entity.Slot) (found bool, err error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) (bool, error) {
	query := `
		INSERT INTO showtimes (id, movie_id, showroom, starts_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (showroom, starts_at) DO NOTHING
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.Showroom,
		showtime.StartsAt.UTC(),
		showtime.CreatedAt,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		r.log.Debug("Showroom already booked",
			zap.String("showroom", string(showtime.Showroom)),
			zap.Time("starts_at", showtime.StartsAt),
		)
		return false, nil
	}
	if err != nil {
		return false, r.createFailed(showtime, err)
	}

	return true, nil
}

func (r *showtimeRepository) createFailed(showtime *entity.Showtime, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("create showtime for movie %s: %w", showtime.MovieID, ErrForeignKey)
	}
	r.log.Error("Failed to create showtime",
		zap.Error(err),
		zap.String("movie_id", showtime.MovieID.String()),
		zap.String("showroom", string(showtime.Showroom)),
	)
	return fmt.Errorf("create showtime: %w", err)
}

func (r *showtimeRepository) Delete(ctx context.Context, movieID uuid.UUID, showroom entity.Showroom, startsAt time.Time) (bool, error) {
	query := `DELETE FROM showtimes WHERE movie_id = $1 AND showroom = $2 AND starts_at = $3`

	result, err := r.db.Exec(ctx, query, movieID, showroom, startsAt.UTC())
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("showroom", string(showroom)),
		)
		return false, fmt.Errorf("delete showtime: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, showroom, starts_at, created_at
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY starts_at ASC, showroom ASC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find showtimes by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find showtimes for movie %s: %w", movieID, err)
	}
	defer rows.Close()

	showtimes := []*entity.Showtime{}
	for rows.Next() {
		var st entity.Showtime
		if err := rows.Scan(&st.ID, &st.MovieID, &st.Showroom, &st.StartsAt, &st.CreatedAt); err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		st.StartsAt = st.StartsAt.UTC()
		showtimes = append(showtimes, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}
	return showtimes, nil
}

func (r *showtimeRepository) Exists(ctx context.Context, slot entity.Slot) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM showtimes
			WHERE movie_id = $1 AND showroom = $2 AND starts_at = $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slot.MovieID, slot.Showroom, slot.StartsAt.UTC()).Scan(&exists); err != nil {
		r.log.Error("Failed to check showtime",
			zap.Error(err),
			zap.String("movie_id", slot.MovieID.String()),
		)
		return false, fmt.Errorf("check showtime: %w", err)
	}
	return exists, nil
}

func (r *showtimeRepository) LockSlot(ctx context.Context, tx pgx.Tx, slot entity.Slot) (bool, error) {
	query := `
		SELECT 1 FROM showtimes
		WHERE movie_id = $1 AND showroom = $2 AND starts_at = $3
		FOR SHARE
	`

	var one int
	err := tx.QueryRow(ctx, query, slot.MovieID, slot.Showroom, slot.StartsAt.UTC()).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		r.log.Error("Failed to lock showtime",
			zap.Error(err),
			zap.String("movie_id", slot.MovieID.String()),
		)
		return false, fmt.Errorf("lock showtime: %w", err)
	}
	return true, nil
}
