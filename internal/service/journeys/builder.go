package journeys

import "github.com/Domenick1991/journeys/internal/domain"

// Builder assembles journeys from flight events that already passed the
// engine's filters. It works on copies and masks their flight numbers, so
// the repository's shared instances are never touched.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuildDirect creates a single-leg journey.
func (b *Builder) BuildDirect(event domain.FlightEvent) domain.Journey {
	return domain.Journey{FlightEvents: []domain.FlightEvent{event.Masked()}}
}

// BuildWithConnection creates a two-leg journey with one transfer.
func (b *Builder) BuildWithConnection(first, second domain.FlightEvent) domain.Journey {
	return domain.Journey{FlightEvents: []domain.FlightEvent{first.Masked(), second.Masked()}}
}
