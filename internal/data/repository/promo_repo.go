package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromoRepository interface {
	Create(ctx context.Context, promo *entity.PromoCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)
	FindByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	FindAll(ctx context.Context) ([]*entity.PromoCode, error)
	Update(ctx context.Context, promo *entity.PromoCode) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// RecordBroadcast adds sent to sent_count and stamps last_sent_at.
	RecordBroadcast(ctx context.Context, id uuid.UUID, sent int, at time.Time) error
}

type promoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromoRepository(db database.PgxIface, log *zap.Logger) PromoRepository {
	return &promoRepository{
		db:  db,
		log: log.With(zap.String("repository", "promo")),
	}
}

const promoColumns = `id, promo_code, discount_percent, start_date, end_date, is_active,
	sent_count, last_sent_at, created_at, updated_at`

func scanPromo(row pgx.Row) (*entity.PromoCode, error) {
	var p entity.PromoCode
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.DiscountPercent,
		&p.StartDate,
		&p.EndDate,
		&p.IsActive,
		&p.SentCount,
		&p.LastSentAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promoRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	query := `
		INSERT INTO promo_codes (` + promoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.DiscountPercent,
		promo.StartDate,
		promo.EndDate,
		promo.IsActive,
		promo.SentCount,
		promo.LastSentAt,
		promo.CreatedAt,
		promo.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create promo %s: %w", promo.Code, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create promo",
			zap.Error(err),
			zap.String("code", promo.Code),
		)
		return fmt.Errorf("create promo %s: %w", promo.Code, err)
	}

	return nil
}

func (r *promoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE id = $1`

	promo, err := scanPromo(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo by ID",
			zap.Error(err),
			zap.String("promo_id", id.String()),
		)
		return nil, fmt.Errorf("find promo by ID %s: %w", id, err)
	}
	return promo, nil
}

func (r *promoRepository) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE promo_code = $1`

	promo, err := scanPromo(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find promo by code %s: %w", code, err)
	}
	return promo, nil
}

func (r *promoRepository) FindAll(ctx context.Context) ([]*entity.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all promos", zap.Error(err))
		return nil, fmt.Errorf("find promos: %w", err)
	}
	defer rows.Close()

	promos := []*entity.PromoCode{}
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			r.log.Error("Failed to scan promo row", zap.Error(err))
			return nil, fmt.Errorf("scan promo row: %w", err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promo rows: %w", err)
	}
	return promos, nil
}

func (r *promoRepository) Update(ctx context.Context, promo *entity.PromoCode) error {
	query := `
		UPDATE promo_codes
		SET promo_code = $2, discount_percent = $3, start_date = $4, end_date = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.DiscountPercent,
		promo.StartDate,
		promo.EndDate,
		promo.IsActive,
		promo.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("update promo %s: %w", promo.Code, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to update promo",
			zap.Error(err),
			zap.String("promo_id", promo.ID.String()),
		)
		return fmt.Errorf("update promo %s: %w", promo.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promo %s not found", promo.ID)
	}
	return nil
}

func (r *promoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete promo",
			zap.Error(err),
			zap.String("promo_id", id.String()),
		)
		return false, fmt.Errorf("delete promo %s: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *promoRepository) RecordBroadcast(ctx context.Context, id uuid.UUID, sent int, at time.Time) error {
	query := `
		UPDATE promo_codes
		SET sent_count = sent_count + $2, last_sent_at = $3, updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id, sent, at); err != nil {
		r.log.Error("Failed to record promo broadcast",
			zap.Error(err),
			zap.String("promo_id", id.String()),
			zap.Int("sent", sent),
		)
		return fmt.Errorf("record broadcast for promo %s: %w", id, err)
	}
	return nil
}
