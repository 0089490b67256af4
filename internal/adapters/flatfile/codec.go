package flatfile

import (
	"bufio"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/ports"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Number of integers on every snapshot line:
// bucketID flightID depHH depMM etaHH etaMM startHH startMM endHH endMM
const FieldCount = 10

// Format one record as a snapshot line (without the trailing newline).
func FormatRecord(r domain.Record) string {
	return fmt.Sprintf("%d %d %d %02d %02d %02d %02d %02d %02d %02d",
		r.BucketID, r.FlightID,
		r.Departure.Hours, r.Departure.Minutes,
		r.ETA.Hours, r.ETA.Minutes,
		r.StartETA.Hours, r.StartETA.Minutes,
		r.EndETA.Hours, r.EndETA.Minutes,
	)
}

// Parse a snapshot line. Fields are whitespace separated plain integers;
// zero padding is accepted but not required.
func ParseRecord(line string) (domain.Record, error) {
	fields := strings.Fields(line)
	if len(fields) != FieldCount {
		return domain.Record{}, fmt.Errorf("%w: want %d fields, got %d", ports.ErrMalformedRecord, FieldCount, len(fields))
	}

	var v [FieldCount]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return domain.Record{}, fmt.Errorf("%w: field %d %q is not an integer", ports.ErrMalformedRecord, i+1, f)
		}
		v[i] = n
	}

	return domain.Record{
		BucketID:  v[0],
		FlightID:  v[1],
		Departure: domain.NewTime(v[2], v[3]),
		ETA:       domain.NewTime(v[4], v[5]),
		StartETA:  domain.NewTime(v[6], v[7]),
		EndETA:    domain.NewTime(v[8], v[9]),
	}, nil
}

// Decode every line of r. Blank lines are skipped; the first malformed line
// stops decoding and no records are returned.
func Decode(r io.Reader) ([]domain.Record, error) {
	sc := bufio.NewScanner(r)

	var records []domain.Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("decode: line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decode: read: %w", err)
	}

	return records, nil
}

// Encode records as snapshot lines.
func Encode(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(FormatRecord(r) + "\n"); err != nil {
			return fmt.Errorf("encode: flight_id=%d: %w", r.FlightID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: flush: %w", err)
	}
	return nil
}
