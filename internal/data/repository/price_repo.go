package repository

import (
	"context"
	"fmt"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PriceRepository interface {
	// Find returns nil, nil while no configuration has been stored.
	Find(ctx context.Context) (*entity.PriceConfig, error)
	// Upsert writes the singleton row and reloads cfg from what was stored,
	// so column rounding is visible to the caller. created is true when the
	// row did not exist before.
	Upsert(ctx context.Context, cfg *entity.PriceConfig) (created bool, err error)
}

type priceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPriceRepository(db database.PgxIface, log *zap.Logger) PriceRepository {
	return &priceRepository{
		db:  db,
		log: log.With(zap.String("repository", "price_config")),
	}
}

func (r *priceRepository) Find(ctx context.Context) (*entity.PriceConfig, error) {
	query := `
		SELECT ticket_prices, booking_fee, tax_rate, created_at, updated_at
		FROM price_config
		WHERE id = 1
	`

	var cfg entity.PriceConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&cfg.TicketPrices,
		&cfg.BookingFee,
		&cfg.TaxRate,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load price config", zap.Error(err))
		return nil, fmt.Errorf("load price config: %w", err)
	}

	return &cfg, nil
}

func (r *priceRepository) Upsert(ctx context.Context, cfg *entity.PriceConfig) (bool, error) {
	// xmax is 0 only for a freshly inserted tuple
	query := `
		INSERT INTO price_config (id, ticket_prices, booking_fee, tax_rate, created_at, updated_at)
		VALUES (1, $1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET ticket_prices = EXCLUDED.ticket_prices,
		    booking_fee = EXCLUDED.booking_fee,
		    tax_rate = EXCLUDED.tax_rate,
		    updated_at = NOW()
		RETURNING ticket_prices, booking_fee, tax_rate, created_at, updated_at, (xmax = 0) AS inserted
	`

	var created bool
	err := r.db.QueryRow(ctx, query, cfg.TicketPrices, cfg.BookingFee, cfg.TaxRate).
		Scan(&cfg.TicketPrices, &cfg.BookingFee, &cfg.TaxRate, &cfg.CreatedAt, &cfg.UpdatedAt, &created)
	if err != nil {
		r.log.Error("Failed to upsert price config", zap.Error(err))
		return false, fmt.Errorf("upsert price config: %w", err)
	}

	r.log.Info("Price config saved", zap.Bool("created", created))
	return created, nil
}
