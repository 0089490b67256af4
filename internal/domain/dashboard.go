package domain

// Dashboard is the bucket index: every bucket keyed by id, each holding its
// flight plans in departure order.
//
// Buckets are created lazily on first insert and never deleted. Scans visit
// buckets in creation order so cancel and save are deterministic.
type Dashboard struct {
	buckets map[int]*Bucket
	order   []int
}

func NewDashboard() *Dashboard {
	return &Dashboard{buckets: make(map[int]*Bucket)}
}

// Insert a flight plan into the given bucket, creating the bucket if needed,
// and widen the bucket's span to cover eta.
func (d *Dashboard) Insert(bucketID, flightID int, departure, eta Time) {
	b, ok := d.buckets[bucketID]
	if !ok {
		b = newBucket(bucketID, eta)
		d.buckets[bucketID] = b
		d.order = append(d.order, bucketID)
	}

	b.Flights.Insert(FlightPlan{FlightID: flightID, Departure: departure, ETA: eta})
	b.widen(eta, eta)
}

// Widen an existing bucket's span to cover [start, end].
// Used when restoring stored spans; unknown buckets are ignored.
func (d *Dashboard) MergeSpan(bucketID int, start, end Time) {
	if b, ok := d.buckets[bucketID]; ok {
		b.widen(start, end)
	}
}

// Remove the first flight plan with the given id, scanning buckets in creation order.
// Reports whether anything was removed. Spans and empty buckets are left in place.
func (d *Dashboard) RemoveFlight(flightID int) bool {
	for _, id := range d.order {
		if d.buckets[id].Flights.RemoveByFlightID(flightID) {
			return true
		}
	}
	return false
}

// Find the first flight plan with the given id and its owning bucket.
func (d *Dashboard) FindFlight(flightID int) (FlightPlan, *Bucket, bool) {
	for _, id := range d.order {
		b := d.buckets[id]
		if fp, ok := b.Flights.FindByFlightID(flightID); ok {
			return fp, b, true
		}
	}
	return FlightPlan{}, nil, false
}

// Return the buckets whose span overlaps the one-hour window at current.
//
// The filter is per bucket: every flight of a matching bucket is included,
// even one whose own ETA lies outside the window.
func (d *Dashboard) FindInWindow(current Time) []*Bucket {
	var out []*Bucket
	for _, id := range d.order {
		if b := d.buckets[id]; b.inWindow(current) {
			out = append(out, b)
		}
	}
	return out
}

// Return the bucket with the given id.
func (d *Dashboard) Bucket(id int) (*Bucket, bool) {
	b, ok := d.buckets[id]
	return b, ok
}

// Return all buckets in creation order.
func (d *Dashboard) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.buckets[id])
	}
	return out
}

func (d *Dashboard) BucketCount() int { return len(d.order) }

// Return the number of flight plans across all buckets.
func (d *Dashboard) Len() int {
	n := 0
	for _, b := range d.buckets {
		n += b.Flights.Len()
	}
	return n
}
