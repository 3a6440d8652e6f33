package journeys

import (
	"context"
	"time"

	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/Domenick1991/journeys/internal/repository"
)

const (
	// maxConnectionWait bounds the layover between the first leg's arrival
	// and the connecting leg's departure.
	maxConnectionWait = 4 * time.Hour
	// maxTotalDuration bounds the whole trip, first departure to last arrival.
	maxTotalDuration = 24 * time.Hour
)

type SearchUseCase interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Journey, error)
}

// SearchService matches flight events against search criteria and chains
// them into direct or one-connection journeys. It holds no per-request
// state, so concurrent searches do not interact.
type SearchService struct {
	repo    repository.FlightsRepository
	builder *Builder
}

func NewSearchService(repo repository.FlightsRepository, builder *Builder) *SearchService {
	return &SearchService{repo: repo, builder: builder}
}

// Search returns every journey from criteria.From to criteria.To departing on
// criteria.Date. Result order mirrors the order of the underlying event set;
// overlapping itineraries from different first legs are all kept.
func (s *SearchService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Journey, error) {
	events, err := s.repo.GetFlightEvents(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Journey, 0)
	for _, event := range events {
		if !event.MatchesOrigin(criteria.From, criteria.Date) {
			continue
		}
		if event.To == criteria.To {
			results = append(results, s.builder.BuildDirect(event))
			continue
		}
		for _, connection := range searchConnections(criteria, event, events) {
			results = append(results, s.builder.BuildWithConnection(event, connection))
		}
	}
	return results, nil
}

// searchConnections finds every event that can serve as the second and final
// leg after initial: it departs from where initial lands, reaches the
// requested destination, waits no more than four hours on the ground and
// keeps the whole trip within twenty-four hours. Chains never grow beyond
// one connection.
func searchConnections(criteria domain.SearchCriteria, initial domain.FlightEvent, events []domain.FlightEvent) []domain.FlightEvent {
	connections := make([]domain.FlightEvent, 0)
	for _, c := range events {
		if c.From != initial.To || c.To != criteria.To {
			continue
		}
		wait := c.DepartureTime.Sub(initial.ArrivalTime)
		if wait < 0 || wait > maxConnectionWait {
			continue
		}
		if c.ArrivalTime.Sub(initial.DepartureTime) > maxTotalDuration {
			continue
		}
		connections = append(connections, c)
	}
	return connections
}

var _ SearchUseCase = (*SearchService)(nil)
