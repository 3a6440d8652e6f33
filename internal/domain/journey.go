package domain

import "time"

// Journey is an ordered chain of one or two flight events forming a single
// travel option. It is built once and never mutated afterwards.
type Journey struct {
	FlightEvents []FlightEvent
}

// Connections is the number of transfer points in the journey.
func (j Journey) Connections() int {
	if len(j.FlightEvents) == 0 {
		return 0
	}
	return len(j.FlightEvents) - 1
}

// SearchCriteria is the input of a journey search: origin and destination
// city codes plus the desired departure date (midnight UTC of that day).
type SearchCriteria struct {
	From string
	To   string
	Date time.Time
}

// Name identifies the command on the dispatch bus.
func (SearchCriteria) Name() string {
	return "SearchJourneys"
}
