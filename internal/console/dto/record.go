package dto

import "flight-dashboard/internal/domain"

type RecordResponse struct {
	BucketID  int    `json:"bucket_id" yaml:"bucket_id"`
	FlightID  int    `json:"flight_id" yaml:"flight_id"`
	Departure string `json:"departure" yaml:"departure"`
	ETA       string `json:"eta" yaml:"eta"`
	StartETA  string `json:"start_eta" yaml:"start_eta"`
	EndETA    string `json:"end_eta" yaml:"end_eta"`
}

type DumpResponse struct {
	FlightPlans []RecordResponse `json:"flight_plans" yaml:"flight_plans"`
}

func NewDumpResponse(records []domain.Record) DumpResponse {
	out := DumpResponse{FlightPlans: make([]RecordResponse, 0, len(records))}
	for _, r := range records {
		out.FlightPlans = append(out.FlightPlans, RecordResponse{
			BucketID:  r.BucketID,
			FlightID:  r.FlightID,
			Departure: r.Departure.String(),
			ETA:       r.ETA.String(),
			StartETA:  r.StartETA.String(),
			EndETA:    r.EndETA.String(),
		})
	}
	return out
}
