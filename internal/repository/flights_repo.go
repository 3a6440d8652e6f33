package repository

import (
	"context"

	"github.com/Domenick1991/journeys/internal/domain"
)

// FlightsRepository supplies the full current set of flight events to the
// search engine. Which implementation backs the engine (live HTTP source or
// cache snapshot) is a wiring decision made at startup.
type FlightsRepository interface {
	GetFlightEvents(ctx context.Context) ([]domain.FlightEvent, error)
}
