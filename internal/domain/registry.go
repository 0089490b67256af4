package domain

// Registry holds the flight plans of one bucket ordered by departure time.
// Flights with equal departure times keep their insertion order.
type Registry struct {
	plans []FlightPlan
}

// Insert a flight plan before the first entry that departs strictly later.
func (r *Registry) Insert(fp FlightPlan) {
	i := 0
	for i < len(r.plans) && Compare(r.plans[i].Departure, fp.Departure) != After {
		i++
	}

	r.plans = append(r.plans, FlightPlan{})
	copy(r.plans[i+1:], r.plans[i:])
	r.plans[i] = fp
}

// Remove the first flight plan with the given id.
// Reports whether anything was removed.
func (r *Registry) RemoveByFlightID(id int) bool {
	for i, fp := range r.plans {
		if fp.FlightID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) FindByFlightID(id int) (FlightPlan, bool) {
	for _, fp := range r.plans {
		if fp.FlightID == id {
			return fp, true
		}
	}
	return FlightPlan{}, false
}

// Return a copy of the flight plans in departure order.
func (r *Registry) All() []FlightPlan {
	out := make([]FlightPlan, len(r.plans))
	copy(out, r.plans)
	return out
}

func (r *Registry) Len() int { return len(r.plans) }
