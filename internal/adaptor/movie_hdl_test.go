package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMovieTestRouter(movieSvc *MovieServiceMock) *chi.Mux {
	h := NewMovieHandler(movieSvc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Post("/api/admin/movies", h.CreateMovie)
	r.Put("/api/admin/movies/{id}", h.UpdateMovie)
	r.Delete("/api/admin/movies/{id}", h.DeleteMovie)
	return r
}

func TestGetMovies(t *testing.T) {
	movieSvc := new(MovieServiceMock)
	router := setupMovieTestRouter(movieSvc)

	movieSvc.On("GetMovies", mock.Anything, mock.MatchedBy(func(req *request.PaginatedRequest) bool {
		return req.Page == 2 && req.PerPage == 5
	})).Return(&response.PaginatedResponse[response.MovieResponse]{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/movies?page=2&per_page=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movieSvc.AssertExpectations(t)
}

func TestCreateMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("CreateMovie", mock.Anything, mock.MatchedBy(func(req *request.MovieRequest) bool {
			return req.Title == "Dune" && req.Rating == "PG-13"
		})).Return(&response.MovieResponse{ID: testMovieID, Title: "Dune", Rating: "PG-13"}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/admin/movies", request.MovieRequest{Title: "Dune", Rating: "PG-13"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var data response.MovieResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(w.Body).Data, &data))
		assert.Equal(t, testMovieID, data.ID)
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/admin/movies", invalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		movieSvc.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything)
	})

	t.Run("Failed - validation", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("CreateMovie", mock.Anything, mock.Anything).
			Return(nil, apperror.InvalidFields(map[string]string{"title": "This field is required"}, "title")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/admin/movies", request.MovieRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, string(decodeEnvelope(w.Body).Errors), "title")
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("UpdateMovie", mock.Anything, testMovieID, mock.MatchedBy(func(req *request.MovieUpdateRequest) bool {
			return req.Genre != nil && *req.Genre == "Sci-Fi" && req.Title == nil
		})).Return(&response.MovieResponse{ID: testMovieID}, nil).Once()

		genre := "Sci-Fi"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPut, "/api/admin/movies/"+testMovieID, request.MovieUpdateRequest{Genre: &genre}))

		assert.Equal(t, http.StatusOK, w.Code)
		movieSvc.AssertExpectations(t)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("UpdateMovie", mock.Anything, testMovieID, mock.Anything).
			Return(nil, apperror.NotFound("Movie not found")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPut, "/api/admin/movies/"+testMovieID, request.MovieUpdateRequest{}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("DeleteMovie", mock.Anything, testMovieID).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/movies/"+testMovieID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - movie has bookings", func(t *testing.T) {
		movieSvc := new(MovieServiceMock)
		router := setupMovieTestRouter(movieSvc)

		movieSvc.On("DeleteMovie", mock.Anything, testMovieID).
			Return(apperror.Conflict("Movie has bookings and cannot be deleted")).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/movies/"+testMovieID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Movie has bookings and cannot be deleted", decodeEnvelope(w.Body).Error)
	})
}
