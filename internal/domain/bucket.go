package domain

// Represents a group of flight plans sharing a tracked arrival span.
// StartETA and EndETA only ever widen; cancelling the flight that set an
// extreme leaves the span as it was.
type Bucket struct {
	ID       int
	StartETA Time
	EndETA   Time
	Flights  Registry
}

func newBucket(id int, eta Time) *Bucket {
	return &Bucket{ID: id, StartETA: eta, EndETA: eta}
}

// Widen the span so that it covers [start, end].
func (b *Bucket) widen(start, end Time) {
	if DiffMinutes(b.StartETA, start) > 0 {
		b.StartETA = start
	}
	if DiffMinutes(end, b.EndETA) > 0 {
		b.EndETA = end
	}
}

// Report whether the bucket's span falls in the one-hour window around current.
func (b *Bucket) inWindow(current Time) bool {
	return DiffMinutes(b.StartETA, current) <= 0 && DiffMinutes(current, b.EndETA) <= 60
}
