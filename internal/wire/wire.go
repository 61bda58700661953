package wire

import (
	"context"
	"net/http"

	"cinema-ebooking/internal/adaptor"
	"cinema-ebooking/internal/data/cache"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/middleware"
	"cinema-ebooking/pkg/notify"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP router
type App struct {
	Router  *chi.Mux
	service *usecase.Service
}

// Drain waits for work the services still run in the background. Call it
// after the server has stopped and before the notifier is closed.
func (a *App) Drain(ctx context.Context) error {
	return a.service.Booking.Drain(ctx)
}

// Wiring builds services and handlers on top of the given infrastructure
func Wiring(
	repo *repository.Repository,
	priceCache cache.PriceCache,
	notifier notify.Notifier,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, priceCache, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	admin := middleware.AdminKey(config.Admin.KeyHash, logger)
	identity := middleware.CustomerIdentity(config.JWT.Secret, logger)

	wireMovie(r, handler.Movie, handler.Showtime, admin)
	wireShowtime(r, handler.Showtime, admin)
	wireBooking(r, handler.Booking, identity)
	wirePromo(r, handler.Promo, admin)
	wirePrice(r, handler.Price, admin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
