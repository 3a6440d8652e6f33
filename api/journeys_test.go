package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/journeys/internal/command"
	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handler command.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bus := command.NewBus()
	if handler != nil {
		bus.Register(domain.SearchCriteria{}.Name(), handler)
	}
	router := gin.New()
	NewJourneyHandler(bus).Register(router.Group("/journeys"))
	return router
}

func TestJourneyHandler_Search(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, cmd command.Command) ([]domain.Journey, error) {
		criteria := cmd.(domain.SearchCriteria)
		assert.Equal(t, "BUE", criteria.From)
		assert.Equal(t, "MAD", criteria.To)
		assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), criteria.Date)
		return []domain.Journey{
			{FlightEvents: []domain.FlightEvent{
				{
					FlightNumber:  "XX1234",
					From:          "BUE",
					To:            "MAD",
					DepartureTime: time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
					ArrivalTime:   time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC),
				},
			}},
		}, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE&destination=MAD&date=2021-12-31", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []journeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, 0, body[0].Connections)
	require.Len(t, body[0].Path, 1)
	assert.Equal(t, "XX1234", body[0].Path[0].FlightNumber)
	assert.Equal(t, "2021-12-31T23:59:00Z", body[0].Path[0].DepartureTime)
}

func TestJourneyHandler_SearchEmptyResult(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, cmd command.Command) ([]domain.Journey, error) {
		return []domain.Journey{}, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE&destination=MAD&date=2021-12-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestJourneyHandler_SearchInvalidCityCode(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUEN&destination=MAD&date=2021-12-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJourneyHandler_SearchMissingParams(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJourneyHandler_SearchInvalidDate(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE&destination=MAD&date=31-12-2021", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJourneyHandler_SearchUpstreamFailure(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, cmd command.Command) ([]domain.Journey, error) {
		return nil, domain.ErrUpstreamUnavailable
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE&destination=MAD&date=2021-12-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestJourneyHandler_SearchMalformedUpstreamData(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, cmd command.Command) ([]domain.Journey, error) {
		return nil, domain.ErrMalformedData
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/journeys/search?origin=BUE&destination=MAD&date=2021-12-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
