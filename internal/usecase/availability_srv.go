package usecase

import (
	"context"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	BookedSeats(ctx context.Context, req *request.ShowtimeRequest) (*response.AvailabilityResponse, error)

	// Reserve claims every ticket's seat inside tx. If any seat is taken it
	// returns a seat conflict naming those seats and the caller must roll back.
	Reserve(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) error
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) BookedSeats(ctx context.Context, req *request.ShowtimeRequest) (*response.AvailabilityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	slot, err := parseSlot(req.MovieID, req.Showroom, req.DateTime)
	if err != nil {
		return nil, err
	}

	seats, err := s.repo.Ticket.FindBookedSeats(ctx, slot)
	if err != nil {
		return nil, err
	}
	if seats == nil {
		seats = []string{}
	}

	return &response.AvailabilityResponse{BookedSeats: seats}, nil
}

func (s *availabilityService) Reserve(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) error {
	taken, err := s.repo.Ticket.ReserveBatch(ctx, tx, slot, tickets)
	if err != nil {
		return err
	}
	if len(taken) > 0 {
		return apperror.SeatConflict(taken)
	}
	return nil
}
