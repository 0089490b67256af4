package domain

// Record is the persisted form of one flight plan together with the span of
// the bucket it belongs to. Every store reads and writes snapshots as a
// sequence of records in bucket-then-registry order.
type Record struct {
	BucketID  int
	FlightID  int
	Departure Time
	ETA       Time
	StartETA  Time
	EndETA    Time
}

// Return one record per flight plan, in bucket-then-registry order.
func (d *Dashboard) Records() []Record {
	out := make([]Record, 0, d.Len())
	for _, b := range d.Buckets() {
		for _, fp := range b.Flights.All() {
			out = append(out, Record{
				BucketID:  b.ID,
				FlightID:  fp.FlightID,
				Departure: fp.Departure,
				ETA:       fp.ETA,
				StartETA:  b.StartETA,
				EndETA:    b.EndETA,
			})
		}
	}
	return out
}

// Restore a single record: insert its flight plan, then merge the stored span.
func (d *Dashboard) Restore(r Record) {
	d.Insert(r.BucketID, r.FlightID, r.Departure, r.ETA)
	d.MergeSpan(r.BucketID, r.StartETA, r.EndETA)
}

// Build a dashboard from a sequence of records.
func FromRecords(records []Record) *Dashboard {
	d := NewDashboard()
	for _, r := range records {
		d.Restore(r)
	}
	return d
}
