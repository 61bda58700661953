package usecase

import (
	"context"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/pkg/notify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MovieRepoMock struct{ mock.Mock }

func (m *MovieRepoMock) Create(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MovieRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MovieRepoMock) Update(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MovieRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MovieRepoMock) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MovieRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ShowtimeRepoMock struct{ mock.Mock }

func (m *ShowtimeRepoMock) Create(ctx context.Context, showtime *entity.Showtime) (bool, error) {
	args := m.Called(ctx, showtime)
	return args.Bool(0), args.Error(1)
}

func (m *ShowtimeRepoMock) Delete(ctx context.Context, movieID uuid.UUID, showroom entity.Showroom, startsAt time.Time) (bool, error) {
	args := m.Called(ctx, movieID, showroom, startsAt)
	return args.Bool(0), args.Error(1)
}

func (m *ShowtimeRepoMock) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Showtime), args.Error(1)
}

func (m *ShowtimeRepoMock) Exists(ctx context.Context, slot entity.Slot) (bool, error) {
	args := m.Called(ctx, slot)
	return args.Bool(0), args.Error(1)
}

func (m *ShowtimeRepoMock) LockSlot(ctx context.Context, tx pgx.Tx, slot entity.Slot) (bool, error) {
	args := m.Called(ctx, tx, slot)
	return args.Bool(0), args.Error(1)
}

type TicketRepoMock struct{ mock.Mock }

func (m *TicketRepoMock) ReserveBatch(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) ([]string, error) {
	args := m.Called(ctx, tx, slot, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *TicketRepoMock) FindBookedSeats(ctx context.Context, slot entity.Slot) ([]string, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *TicketRepoMock) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingTicket, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingTicket), args.Error(1)
}

type BookingRepoMock struct{ mock.Mock }

func (m *BookingRepoMock) Create(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	return m.Called(ctx, tx, booking).Error(0)
}

func (m *BookingRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *BookingRepoMock) FindByCustomerEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, email, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *BookingRepoMock) CountByCustomerEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type PromoRepoMock struct{ mock.Mock }

func (m *PromoRepoMock) Create(ctx context.Context, promo *entity.PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *PromoRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromoCode), args.Error(1)
}

func (m *PromoRepoMock) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromoCode), args.Error(1)
}

func (m *PromoRepoMock) FindAll(ctx context.Context) ([]*entity.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PromoCode), args.Error(1)
}

func (m *PromoRepoMock) Update(ctx context.Context, promo *entity.PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *PromoRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PromoRepoMock) RecordBroadcast(ctx context.Context, id uuid.UUID, sent int, at time.Time) error {
	return m.Called(ctx, id, sent, at).Error(0)
}

type SubscriberRepoMock struct{ mock.Mock }

func (m *SubscriberRepoMock) FindPromoRecipients(ctx context.Context) ([]*entity.PromoSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PromoSubscriber), args.Error(1)
}

type PriceRepoMock struct{ mock.Mock }

func (m *PriceRepoMock) Find(ctx context.Context) (*entity.PriceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PriceConfig), args.Error(1)
}

func (m *PriceRepoMock) Upsert(ctx context.Context, cfg *entity.PriceConfig) (bool, error) {
	args := m.Called(ctx, cfg)
	return args.Bool(0), args.Error(1)
}

// TxMock runs fn directly; a nil pgx.Tx is handed to the repository mocks.
type TxMock struct{ mock.Mock }

func (m *TxMock) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	m.Called(ctx)
	return fn(ctx, nil)
}

type PriceCacheMock struct{ mock.Mock }

func (m *PriceCacheMock) Get(ctx context.Context) (*entity.PriceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PriceConfig), args.Error(1)
}

func (m *PriceCacheMock) Set(ctx context.Context, cfg *entity.PriceConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *PriceCacheMock) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) Send(ctx context.Context, email notify.Email) error {
	return m.Called(ctx, email).Error(0)
}

type repoMocks struct {
	tx         *TxMock
	movie      *MovieRepoMock
	showtime   *ShowtimeRepoMock
	ticket     *TicketRepoMock
	booking    *BookingRepoMock
	promo      *PromoRepoMock
	subscriber *SubscriberRepoMock
	price      *PriceRepoMock
}

func newRepoMocks() (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		tx:         &TxMock{},
		movie:      &MovieRepoMock{},
		showtime:   &ShowtimeRepoMock{},
		ticket:     &TicketRepoMock{},
		booking:    &BookingRepoMock{},
		promo:      &PromoRepoMock{},
		subscriber: &SubscriberRepoMock{},
		price:      &PriceRepoMock{},
	}
	repo := &repository.Repository{
		Tx:         m.tx,
		Movie:      m.movie,
		Showtime:   m.showtime,
		Ticket:     m.ticket,
		Booking:    m.booking,
		Promo:      m.promo,
		Subscriber: m.subscriber,
		Price:      m.price,
	}
	return repo, m
}
