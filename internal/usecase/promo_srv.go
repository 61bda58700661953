package usecase

import (
	"context"
	"errors"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"
	"cinema-ebooking/pkg/notify"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PromoService interface {
	// Validate checks code against its activation flag and validity window at now.
	Validate(ctx context.Context, code string, now time.Time) (*response.PromoValidationResponse, error)

	// Admin endpoints
	CreatePromo(ctx context.Context, req *request.PromoRequest) (*response.PromoResponse, error)
	GetPromos(ctx context.Context) ([]response.PromoResponse, error)
	GetPromoByID(ctx context.Context, promoID string) (*response.PromoResponse, error)
	UpdatePromo(ctx context.Context, promoID string, req *request.PromoUpdateRequest) (*response.PromoResponse, error)
	DeletePromo(ctx context.Context, promoID string) error
	BroadcastPromo(ctx context.Context, promoID string) (*response.PromoBroadcastResponse, error)
}

type promoService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	from     string
	now      func() time.Time
	log      *zap.Logger
}

func NewPromoService(repo *repository.Repository, notifier notify.Notifier, cfg utils.NotifyConfig, log *zap.Logger) PromoService {
	return &promoService{
		repo:     repo,
		notifier: notifier,
		from:     cfg.From,
		now:      time.Now,
		log:      log.With(zap.String("service", "promo")),
	}
}

func (s *promoService) Validate(ctx context.Context, code string, now time.Time) (*response.PromoValidationResponse, error) {
	code = normalizePromoCode(code)
	if code == "" {
		return nil, apperror.Validation("Promo code is required")
	}

	promo, err := s.repo.Promo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	switch {
	case promo == nil:
		return nil, apperror.ErrPromoNotFound
	case !promo.IsActive:
		return nil, apperror.ErrPromoInactive
	case now.Before(promo.StartDate):
		return nil, apperror.ErrPromoNotYetValid
	case now.After(promo.EndDate):
		return nil, apperror.ErrPromoExpired
	}

	return &response.PromoValidationResponse{
		PromoCode:       promo.Code,
		DiscountPercent: promo.DiscountPercent,
	}, nil
}

func (s *promoService) CreatePromo(ctx context.Context, req *request.PromoRequest) (*response.PromoResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create promo validation failed", zap.Error(err))
		return nil, err
	}

	start, end, err := parsePromoWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	code := normalizePromoCode(req.PromoCode)
	existing, err := s.repo.Promo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrPromoExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	promo := &entity.PromoCode{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		StartDate:       start,
		EndDate:         end,
		IsActive:        isActive,
	}

	if err := s.repo.Promo.Create(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.ErrPromoExists
		}
		return nil, err
	}

	s.log.Info("Promo created",
		zap.String("promo_id", promo.ID.String()),
		zap.String("code", promo.Code),
		zap.Int("discount_percent", promo.DiscountPercent),
	)

	res := response.PromoToResponse(promo)
	return &res, nil
}

func (s *promoService) GetPromos(ctx context.Context) ([]response.PromoResponse, error) {
	promos, err := s.repo.Promo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.PromoResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, response.PromoToResponse(p))
	}
	return out, nil
}

func (s *promoService) GetPromoByID(ctx context.Context, promoID string) (*response.PromoResponse, error) {
	promo, err := s.findPromo(ctx, promoID)
	if err != nil {
		return nil, err
	}

	res := response.PromoToResponse(promo)
	return &res, nil
}

func (s *promoService) UpdatePromo(ctx context.Context, promoID string, req *request.PromoUpdateRequest) (*response.PromoResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update promo validation failed", zap.Error(err))
		return nil, err
	}

	promo, err := s.findPromo(ctx, promoID)
	if err != nil {
		return nil, err
	}

	if req.PromoCode != nil {
		code := normalizePromoCode(*req.PromoCode)
		if code != promo.Code {
			existing, err := s.repo.Promo.FindByCode(ctx, code)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperror.ErrPromoExists
			}
			promo.Code = code
		}
	}
	if req.DiscountPercent != nil {
		promo.DiscountPercent = *req.DiscountPercent
	}
	if req.StartDate != nil {
		if promo.StartDate, err = parseDateTime(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if promo.EndDate, err = parseDateTime(*req.EndDate); err != nil {
			return nil, err
		}
	}
	if !promo.EndDate.After(promo.StartDate) {
		return nil, apperror.Validation("End date must be after start date")
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}
	promo.UpdatedAt = s.now()

	if err := s.repo.Promo.Update(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.ErrPromoExists
		}
		return nil, err
	}

	s.log.Info("Promo updated", zap.String("promo_id", promo.ID.String()))

	res := response.PromoToResponse(promo)
	return &res, nil
}

func (s *promoService) DeletePromo(ctx context.Context, promoID string) error {
	id, err := parseID(promoID, "promo ID")
	if err != nil {
		return err
	}

	deleted, err := s.repo.Promo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Promo not found")
	}

	s.log.Info("Promo deleted", zap.String("promo_id", promoID))
	return nil
}

// BroadcastPromo emails every subscribed recipient one at a time. A failed
// send is counted and skipped; it never aborts the run.
func (s *promoService) BroadcastPromo(ctx context.Context, promoID string) (*response.PromoBroadcastResponse, error) {
	promo, err := s.findPromo(ctx, promoID)
	if err != nil {
		return nil, err
	}

	recipients, err := s.repo.Subscriber.FindPromoRecipients(ctx)
	if err != nil {
		return nil, err
	}

	res := &response.PromoBroadcastResponse{
		PromoCode:       promo.Code,
		TotalSubscribed: len(recipients),
	}
	if len(recipients) == 0 {
		s.log.Info("No subscribers for promo broadcast", zap.String("code", promo.Code))
		return res, nil
	}

	for _, sub := range recipients {
		email, err := promoEmail(s.from, promo, sub)
		if err == nil {
			err = s.notifier.Send(ctx, email)
		}
		if err != nil {
			res.Failed++
			s.log.Warn("Promo email failed",
				zap.Error(err),
				zap.String("code", promo.Code),
				zap.String("to", sub.Email),
			)
			continue
		}
		res.Sent++
	}

	if err := s.repo.Promo.RecordBroadcast(ctx, promo.ID, res.Sent, s.now()); err != nil {
		return nil, err
	}

	s.log.Info("Promo broadcast finished",
		zap.String("code", promo.Code),
		zap.Int("total", res.TotalSubscribed),
		zap.Int("sent", res.Sent),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *promoService) findPromo(ctx context.Context, promoID string) (*entity.PromoCode, error) {
	id, err := parseID(promoID, "promo ID")
	if err != nil {
		return nil, err
	}

	promo, err := s.repo.Promo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, apperror.NotFound("Promo not found")
	}
	return promo, nil
}

func parsePromoWindow(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := parseDateTime(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateTime(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, apperror.Validation("End date must be after start date")
	}
	return start, end, nil
}
