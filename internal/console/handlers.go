package console

import (
	"context"
	"flight-dashboard/internal/services"
	"fmt"
)

func (s *Session) insert(ctx context.Context) error {
	bucketID, err := s.p.readInt("Enter Bucket ID: ")
	if err != nil {
		return err
	}
	flightID, err := s.p.readInt("Enter Flight ID: ")
	if err != nil {
		return err
	}
	departure, err := s.p.readTime("Enter Departure Time (HH MM): ")
	if err != nil {
		return err
	}
	eta, err := s.p.readTime("Enter ETA (HH MM): ")
	if err != nil {
		return err
	}

	s.svc.Insert(ctx, services.InsertRequest{
		BucketID:  bucketID,
		FlightID:  flightID,
		Departure: departure,
		ETA:       eta,
	})
	fmt.Fprintf(s.out, "Flight-plan %d inserted into bucket %d.\n", flightID, bucketID)
	return nil
}

func (s *Session) cancel(ctx context.Context) error {
	flightID, err := s.p.readInt("Enter Flight ID to Cancel: ")
	if err != nil {
		return err
	}

	if !s.svc.Cancel(ctx, flightID) {
		writeNotFound(s.out, flightID)
		return nil
	}
	fmt.Fprintf(s.out, "Flight-plan %d cancelled.\n", flightID)
	return nil
}

func (s *Session) status(ctx context.Context) error {
	flightID, err := s.p.readInt("Enter Flight ID to Show Status: ")
	if err != nil {
		return err
	}

	st, ok := s.svc.Status(ctx, flightID)
	if !ok {
		writeNotFound(s.out, flightID)
		return nil
	}
	writeStatus(s.out, st)
	return nil
}

func (s *Session) window(ctx context.Context) error {
	current, err := s.p.readTime("Enter Current Time (HH MM): ")
	if err != nil {
		return err
	}

	n := 0
	for e := range s.svc.InWindow(ctx, current) {
		writeWindowEntry(s.out, e)
		n++
	}
	if n == 0 {
		fmt.Fprintln(s.out, "No flight-plans in this time period.")
	}
	return nil
}
