package repository

import (
	"context"

	"github.com/Domenick1991/journeys/internal/domain"
)

// SnapshotStore reads and writes the single cached snapshot of flight events.
type SnapshotStore interface {
	GetSnapshot(ctx context.Context) ([]domain.FlightEvent, error)
	SetSnapshot(ctx context.Context, events []domain.FlightEvent) error
}

// CachedFlightsRepository serves flight events from the cache snapshot.
// A missing snapshot is the cold-start state and yields an empty set,
// not an error.
type CachedFlightsRepository struct {
	store SnapshotStore
}

func NewCachedFlightsRepository(store SnapshotStore) *CachedFlightsRepository {
	return &CachedFlightsRepository{store: store}
}

func (r *CachedFlightsRepository) GetFlightEvents(ctx context.Context) ([]domain.FlightEvent, error) {
	events, err := r.store.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		return []domain.FlightEvent{}, nil
	}
	return events, nil
}

var _ FlightsRepository = (*CachedFlightsRepository)(nil)
