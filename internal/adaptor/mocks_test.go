package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type BookingServiceMock struct{ mock.Mock }

func (m *BookingServiceMock) PlaceBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.PlaceBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PlaceBookingResponse), args.Error(1)
}

func (m *BookingServiceMock) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *BookingServiceMock) GetCustomerBookings(ctx context.Context, req *request.CustomerBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.BookingResponse]), args.Error(1)
}

func (m *BookingServiceMock) ResendConfirmation(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *BookingServiceMock) Drain(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type AvailabilityServiceMock struct{ mock.Mock }

func (m *AvailabilityServiceMock) BookedSeats(ctx context.Context, req *request.ShowtimeRequest) (*response.AvailabilityResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AvailabilityResponse), args.Error(1)
}

func (m *AvailabilityServiceMock) Reserve(ctx context.Context, tx pgx.Tx, slot entity.Slot, tickets []*entity.BookingTicket) error {
	return m.Called(ctx, tx, slot, tickets).Error(0)
}

type PromoServiceMock struct{ mock.Mock }

func (m *PromoServiceMock) Validate(ctx context.Context, code string, now time.Time) (*response.PromoValidationResponse, error) {
	args := m.Called(ctx, code, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PromoValidationResponse), args.Error(1)
}

func (m *PromoServiceMock) CreatePromo(ctx context.Context, req *request.PromoRequest) (*response.PromoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PromoResponse), args.Error(1)
}

func (m *PromoServiceMock) GetPromos(ctx context.Context) ([]response.PromoResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.PromoResponse), args.Error(1)
}

func (m *PromoServiceMock) GetPromoByID(ctx context.Context, promoID string) (*response.PromoResponse, error) {
	args := m.Called(ctx, promoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PromoResponse), args.Error(1)
}

func (m *PromoServiceMock) UpdatePromo(ctx context.Context, promoID string, req *request.PromoUpdateRequest) (*response.PromoResponse, error) {
	args := m.Called(ctx, promoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PromoResponse), args.Error(1)
}

func (m *PromoServiceMock) DeletePromo(ctx context.Context, promoID string) error {
	return m.Called(ctx, promoID).Error(0)
}

func (m *PromoServiceMock) BroadcastPromo(ctx context.Context, promoID string) (*response.PromoBroadcastResponse, error) {
	args := m.Called(ctx, promoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PromoBroadcastResponse), args.Error(1)
}

type PriceServiceMock struct{ mock.Mock }

func (m *PriceServiceMock) GetPrices(ctx context.Context) (*response.PriceConfigResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PriceConfigResponse), args.Error(1)
}

func (m *PriceServiceMock) UpsertPrices(ctx context.Context, req *request.PriceConfigRequest) (*response.PriceConfigResponse, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*response.PriceConfigResponse), args.Bool(1), args.Error(2)
}

func (m *PriceServiceMock) Current(ctx context.Context) (*entity.PriceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PriceConfig), args.Error(1)
}

type ScheduleServiceMock struct{ mock.Mock }

func (m *ScheduleServiceMock) AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ShowtimeResponse), args.Error(1)
}

func (m *ScheduleServiceMock) RemoveShowtime(ctx context.Context, req *request.ShowtimeRequest) ([]response.ShowtimeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ShowtimeResponse), args.Error(1)
}

func (m *ScheduleServiceMock) ListShowtimes(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ShowtimeResponse), args.Error(1)
}

const invalidJSON = `{"invalid": json}`

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data any) *http.Request {
	var body []byte
	switch v := data.(type) {
	case string:
		body = []byte(v)
	default:
		body, _ = json.Marshal(v)
	}

	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decodeEnvelope(body *bytes.Buffer) envelope {
	var env envelope
	_ = json.NewDecoder(body).Decode(&env)
	return env
}

type MovieServiceMock struct{ mock.Mock }

func (m *MovieServiceMock) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.MovieResponse]), args.Error(1)
}

func (m *MovieServiceMock) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MovieServiceMock) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MovieServiceMock) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MovieServiceMock) DeleteMovie(ctx context.Context, movieID string) error {
	return m.Called(ctx, movieID).Error(0)
}
