package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"
	"cinema-ebooking/pkg/notify"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const defaultNotifyTimeout = 10 * time.Second

type BookingService interface {
	// PlaceBooking prices and stores a booking and reserves its seats in one
	// transaction. The confirmation email is sent afterwards in the background.
	PlaceBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.PlaceBookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetCustomerBookings(ctx context.Context, req *request.CustomerBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	// ResendConfirmation sends synchronously and reports delivery errors.
	ResendConfirmation(ctx context.Context, bookingID string) error
	// Drain blocks until background confirmation sends have finished or ctx
	// is done.
	Drain(ctx context.Context) error
}

type bookingService struct {
	repo          *repository.Repository
	prices        PriceService
	promos        PromoService
	seats         AvailabilityService
	notifier      notify.Notifier
	from          string
	notifyTimeout time.Duration
	now           func() time.Time
	log           *zap.Logger

	pending sync.WaitGroup
}

func NewBookingService(
	repo *repository.Repository,
	prices PriceService,
	promos PromoService,
	seats AvailabilityService,
	notifier notify.Notifier,
	cfg utils.NotifyConfig,
	log *zap.Logger,
) BookingService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return &bookingService{
		repo:          repo,
		prices:        prices,
		promos:        promos,
		seats:         seats,
		notifier:      notifier,
		from:          cfg.From,
		notifyTimeout: timeout,
		now:           time.Now,
		log:           log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) PlaceBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.PlaceBookingResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}
	if len(req.Seats) != len(req.TicketCategories) {
		return nil, apperror.Validation("seats and ticket_categories must have the same length")
	}

	slot, err := parseSlot(req.MovieID, req.Showroom, req.DateTime)
	if err != nil {
		return nil, err
	}

	layout, err := entity.LayoutOf(slot.Showroom)
	if err != nil {
		return nil, apperror.Validation("unknown showroom %q", slot.Showroom)
	}
	for _, seat := range req.Seats {
		if !layout.Contains(seat) {
			return nil, apperror.Validation("seat %s does not exist in %s", seat, slot.Showroom)
		}
	}

	movie, err := s.repo.Movie.FindByID(ctx, slot.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	exists, err := s.repo.Showtime.Exists(ctx, slot)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("Showtime not found")
	}

	now := s.now()
	if slot.StartsAt.Before(now) {
		return nil, apperror.Validation("Showtime has already started")
	}

	priceCfg, err := s.prices.Current(ctx)
	if err != nil {
		return nil, err
	}
	if priceCfg == nil {
		return nil, apperror.ErrPricingNotConfigured
	}

	var (
		promoCode       *string
		discountPercent int
	)
	if req.PromoCode != nil && strings.TrimSpace(*req.PromoCode) != "" {
		promo, err := s.promos.Validate(ctx, *req.PromoCode, now)
		if err != nil {
			return nil, rejectPromo(err)
		}
		promoCode = &promo.PromoCode
		discountPercent = promo.DiscountPercent
	}

	categories := make([]entity.TicketCategory, len(req.TicketCategories))
	for i, c := range req.TicketCategories {
		categories[i] = entity.TicketCategory(c)
	}

	quote, err := PriceTickets(priceCfg, categories, discountPercent)
	if err != nil {
		return nil, err
	}

	bookingID := uuid.New()
	tickets := make([]*entity.BookingTicket, len(req.Seats))
	for i, seat := range req.Seats {
		tickets[i] = &entity.BookingTicket{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:  bookingID,
			Seat:       seat,
			Category:   categories[i],
			UnitPrice:  quote.UnitPrices[i].InexactFloat64(),
		}
	}

	booking := &entity.Booking{
		BaseSimple:      entity.BaseSimple{ID: bookingID, CreatedAt: now},
		OrderID:         utils.GenerateOrderID(now),
		MovieID:         slot.MovieID,
		Showtime:        slot,
		CustomerName:    strings.TrimSpace(req.Customer.Name),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(req.Customer.Email)),
		PromoCode:       promoCode,
		DiscountPercent: discountPercent,
		TicketSum:       quote.TicketSum.InexactFloat64(),
		Discount:        quote.Discount.InexactFloat64(),
		Net:             quote.Net.InexactFloat64(),
		BookingFee:      quote.BookingFee.InexactFloat64(),
		Tax:             quote.Tax.InexactFloat64(),
		TotalPrice:      quote.Total.InexactFloat64(),
		Tickets:         tickets,
	}

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// the showtime may have been removed since the check above
		found, err := s.repo.Showtime.LockSlot(ctx, tx, slot)
		if err != nil {
			return err
		}
		if !found {
			return apperror.NotFound("Showtime not found")
		}

		if err := s.repo.Booking.Create(ctx, tx, booking); err != nil {
			return err
		}
		return s.seats.Reserve(ctx, tx, slot, tickets)
	})
	if err != nil {
		if errors.Is(err, apperror.ErrSeatConflict) {
			s.log.Info("Booking rejected, seats taken",
				zap.String("order_id", booking.OrderID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s.log.Info("Booking placed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("movie_id", booking.MovieID.String()),
		zap.Strings("seats", booking.Seats()),
		zap.Float64("total", booking.TotalPrice),
	)

	s.sendConfirmationAsync(ctx, booking, movie.Title)

	return &response.PlaceBookingResponse{
		Booking:   response.BookingToResponse(booking, movie.Title),
		TotalPaid: booking.TotalPrice,
	}, nil
}

// rejectPromo turns any promo failure into a validation error that keeps the
// validator's reason.
func rejectPromo(err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		return err
	}
	return &apperror.Error{
		Kind:    apperror.KindValidation,
		Code:    appErr.Code,
		Message: appErr.Message,
		Err:     err,
	}
}

func (s *bookingService) sendConfirmationAsync(ctx context.Context, booking *entity.Booking, movieTitle string) {
	ctx = context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()

		if err := s.sendConfirmation(ctx, booking, movieTitle); err != nil {
			s.log.Warn("Confirmation email not sent",
				zap.Error(err),
				zap.String("order_id", booking.OrderID),
			)
		}
	}()
}

func (s *bookingService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *bookingService) sendConfirmation(ctx context.Context, booking *entity.Booking, movieTitle string) error {
	email, err := bookingConfirmationEmail(s.from, booking, movieTitle)
	if err != nil {
		return err
	}
	return s.notifier.Send(ctx, email)
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, title, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	res := response.BookingToResponse(booking, title)
	return &res, nil
}

func (s *bookingService) GetCustomerBookings(ctx context.Context, req *request.CustomerBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	limit := req.Limit()

	bookings, err := s.repo.Booking.FindByCustomerEmail(ctx, email, limit, req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	titles := map[uuid.UUID]string{}
	out := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if b.Tickets, err = s.repo.Ticket.FindByBookingID(ctx, b.ID); err != nil {
			return nil, err
		}

		title, ok := titles[b.MovieID]
		if !ok {
			title = s.movieTitle(ctx, b.MovieID)
			titles[b.MovieID] = title
		}
		out = append(out, response.BookingToResponse(b, title))
	}

	return response.NewPaginatedResponse(out, req.Page, limit, total), nil
}

func (s *bookingService) ResendConfirmation(ctx context.Context, bookingID string) error {
	booking, title, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.sendConfirmation(ctx, booking, title); err != nil {
		s.log.Error("Failed to resend confirmation",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return err
	}

	s.log.Info("Confirmation resent", zap.String("order_id", booking.OrderID))
	return nil
}

func (s *bookingService) loadBooking(ctx context.Context, bookingID string) (*entity.Booking, string, error) {
	id, err := parseID(bookingID, "booking ID")
	if err != nil {
		return nil, "", err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if booking == nil {
		return nil, "", apperror.NotFound("Booking not found")
	}

	if booking.Tickets, err = s.repo.Ticket.FindByBookingID(ctx, booking.ID); err != nil {
		return nil, "", err
	}

	return booking, s.movieTitle(ctx, booking.MovieID), nil
}

// movieTitle is best effort; a booking outlives edits to its movie.
func (s *bookingService) movieTitle(ctx context.Context, movieID uuid.UUID) string {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Warn("Failed to load movie title", zap.Error(err), zap.String("movie_id", movieID.String()))
		return ""
	}
	if movie == nil {
		return ""
	}
	return movie.Title
}
