package console

import (
	"flight-dashboard/internal/services"
	"fmt"
	"io"
)

func writeStatus(w io.Writer, st services.FlightStatus) {
	fmt.Fprintf(w, "Flight ID: %d\n", st.FlightID)
	fmt.Fprintf(w, "Departure Time: %s\n", st.Departure)
	fmt.Fprintf(w, "ETA: %s\n", st.ETA)
}

func writeWindowEntry(w io.Writer, e services.WindowEntry) {
	fmt.Fprintf(w, "Bucket ID: %d\n", e.BucketID)
	fmt.Fprintf(w, "Flight ID: %d\n", e.FlightID)
	fmt.Fprintf(w, "Departure Time: %s\n", e.Departure)
	fmt.Fprintf(w, "ETA: %s\n", e.ETA)
	fmt.Fprintln(w)
}

func writeNotFound(w io.Writer, flightID int) {
	fmt.Fprintf(w, "Flight-plan with ID %d not found.\n", flightID)
}
