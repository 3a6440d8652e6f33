package domain

import "time"

// maxLegDuration caps how long any single leg, direct or connecting, may take.
const maxLegDuration = 24 * time.Hour

// FlightEvent is one scheduled flight instance between two cities.
// Instances fetched from a repository are shared across concurrent searches
// and must be treated as read-only; Masked returns a transformed copy.
type FlightEvent struct {
	FlightNumber  string    `json:"flight_number"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// Masked returns a copy with the carrier prefix of the flight number redacted.
// Flight numbers of two characters or fewer are returned unchanged.
func (e FlightEvent) Masked() FlightEvent {
	if len(e.FlightNumber) > 2 {
		e.FlightNumber = "XX" + e.FlightNumber[2:]
	}
	return e
}

// Duration is the elapsed time between departure and arrival.
func (e FlightEvent) Duration() time.Duration {
	return e.ArrivalTime.Sub(e.DepartureTime)
}

// MatchesOrigin reports whether the event departs from the requested city on
// the requested calendar date and stays within the 24-hour leg cap.
func (e FlightEvent) MatchesOrigin(from string, date time.Time) bool {
	return e.From == from && sameDate(e.DepartureTime, date) && e.Duration() <= maxLegDuration
}

func sameDate(t, date time.Time) bool {
	ty, tm, td := t.UTC().Date()
	dy, dm, dd := date.UTC().Date()
	return ty == dy && tm == dm && td == dd
}
