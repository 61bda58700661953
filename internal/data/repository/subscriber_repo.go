package repository

import (
	"context"
	"fmt"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SubscriberRepository interface {
	// FindPromoRecipients lists opted-in, active, non-suspended accounts.
	FindPromoRecipients(ctx context.Context) ([]*entity.PromoSubscriber, error)
}

type subscriberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubscriberRepository(db database.PgxIface, log *zap.Logger) SubscriberRepository {
	return &subscriberRepository{
		db:  db,
		log: log.With(zap.String("repository", "subscriber")),
	}
}

func (r *subscriberRepository) FindPromoRecipients(ctx context.Context) ([]*entity.PromoSubscriber, error) {
	query := `
		SELECT name, email
		FROM promo_subscribers
		WHERE opted_in AND active AND NOT suspended
		ORDER BY email
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find promo recipients", zap.Error(err))
		return nil, fmt.Errorf("find promo recipients: %w", err)
	}

	subscribers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.PromoSubscriber])
	if err != nil {
		return nil, fmt.Errorf("collect promo recipients: %w", err)
	}
	return subscribers, nil
}
