package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/journeys/internal/domain"
)

// providerRecord is the raw shape returned by the upstream flight-data
// provider. Field names differ from the domain shape and are adapted here.
type providerRecord struct {
	FlightNumber      *string `json:"flight_number"`
	DepartureCity     *string `json:"departure_city"`
	ArrivalCity       *string `json:"arrival_city"`
	DepartureDatetime *string `json:"departure_datetime"`
	ArrivalDatetime   *string `json:"arrival_datetime"`
}

// HTTPFlightsRepository fetches flight events from the remote provider on
// every call. It does no retries; retry policy belongs to the caller's
// transport, not here.
type HTTPFlightsRepository struct {
	client   *http.Client
	baseURL  string
	endpoint string
}

func NewHTTPFlightsRepository(client *http.Client, baseURL, endpoint string) *HTTPFlightsRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFlightsRepository{client: client, baseURL: baseURL, endpoint: endpoint}
}

func (r *HTTPFlightsRepository) GetFlightEvents(ctx context.Context) ([]domain.FlightEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+r.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var records []providerRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode provider payload: %v", domain.ErrMalformedData, err)
	}

	events := make([]domain.FlightEvent, 0, len(records))
	for i, rec := range records {
		event, err := rec.toFlightEvent()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrMalformedData, i, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func (rec providerRecord) toFlightEvent() (domain.FlightEvent, error) {
	if rec.FlightNumber == nil || rec.DepartureCity == nil || rec.ArrivalCity == nil ||
		rec.DepartureDatetime == nil || rec.ArrivalDatetime == nil {
		return domain.FlightEvent{}, fmt.Errorf("missing required field")
	}
	departure, err := time.Parse(time.RFC3339, *rec.DepartureDatetime)
	if err != nil {
		return domain.FlightEvent{}, fmt.Errorf("departure_datetime: %v", err)
	}
	arrival, err := time.Parse(time.RFC3339, *rec.ArrivalDatetime)
	if err != nil {
		return domain.FlightEvent{}, fmt.Errorf("arrival_datetime: %v", err)
	}
	return domain.FlightEvent{
		FlightNumber:  *rec.FlightNumber,
		From:          *rec.DepartureCity,
		To:            *rec.ArrivalCity,
		DepartureTime: departure,
		ArrivalTime:   arrival,
	}, nil
}

var _ FlightsRepository = (*HTTPFlightsRepository)(nil)
