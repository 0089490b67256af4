package domain

// Represents a single filed flight plan.
// A FlightPlan is owned by the registry of the bucket it was inserted into.
// FlightID is expected to be unique across a dashboard but this is not enforced.
type FlightPlan struct {
	FlightID  int
	Departure Time
	ETA       Time
}
