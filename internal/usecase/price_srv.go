package usecase

import (
	"context"

	"cinema-ebooking/internal/data/cache"
	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"

	"go.uber.org/zap"
)

type PriceService interface {
	GetPrices(ctx context.Context) (*response.PriceConfigResponse, error)
	// UpsertPrices creates the singleton on first call and replaces it after.
	UpsertPrices(ctx context.Context, req *request.PriceConfigRequest) (res *response.PriceConfigResponse, created bool, err error)

	// Current returns nil, nil when nothing has been configured yet.
	Current(ctx context.Context) (*entity.PriceConfig, error)
}

type priceService struct {
	repo  *repository.Repository
	cache cache.PriceCache
	log   *zap.Logger
}

func NewPriceService(repo *repository.Repository, priceCache cache.PriceCache, log *zap.Logger) PriceService {
	return &priceService{
		repo:  repo,
		cache: priceCache,
		log:   log.With(zap.String("service", "price")),
	}
}

func (s *priceService) Current(ctx context.Context) (*entity.PriceConfig, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("Price cache unavailable, reading database", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	cfg, err := s.repo.Price.Find(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, cfg); err != nil {
		s.log.Warn("Failed to cache price config", zap.Error(err))
	}
	return cfg, nil
}

func (s *priceService) GetPrices(ctx context.Context) (*response.PriceConfigResponse, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperror.NotFound("Prices not configured")
	}

	res := response.PriceConfigToResponse(cfg)
	return &res, nil
}

func (s *priceService) UpsertPrices(ctx context.Context, req *request.PriceConfigRequest) (*response.PriceConfigResponse, bool, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Price config validation failed", zap.Error(err))
		return nil, false, err
	}

	cfg := &entity.PriceConfig{
		TicketPrices: map[entity.TicketCategory]float64{
			entity.CategoryAdult:  *req.Adult,
			entity.CategoryChild:  *req.Child,
			entity.CategorySenior: *req.Senior,
		},
		BookingFee: *req.BookingFee,
		TaxRate:    *req.TaxRate,
	}

	created, err := s.repo.Price.Upsert(ctx, cfg)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate price cache", zap.Error(err))
	}

	s.log.Info("Prices updated",
		zap.Bool("created", created),
		zap.Float64("booking_fee", cfg.BookingFee),
		zap.Float64("tax_rate", cfg.TaxRate),
	)

	// cfg now holds the stored row, which is what pricing will read
	res := response.PriceConfigToResponse(cfg)
	return &res, created, nil
}
