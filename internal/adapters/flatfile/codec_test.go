package flatfile

import (
	"bytes"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/ports"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	r := domain.Record{
		BucketID:  1,
		FlightID:  101,
		Departure: domain.NewTime(8, 5),
		ETA:       domain.NewTime(9, 0),
		StartETA:  domain.NewTime(9, 0),
		EndETA:    domain.NewTime(10, 30),
	}
	assert.Equal(t, "1 101 8 05 09 00 09 00 10 30", FormatRecord(r))
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord("  2 202 7 5   8 45 8 0 9 15 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Record{
		BucketID:  2,
		FlightID:  202,
		Departure: domain.NewTime(7, 5),
		ETA:       domain.NewTime(8, 45),
		StartETA:  domain.NewTime(8, 0),
		EndETA:    domain.NewTime(9, 15),
	}, r)
}

func TestParseRecordRejects(t *testing.T) {
	tests := map[string]string{
		"nine integers":   "1 101 08 00 09 00 09 00 09",
		"eleven integers": "1 101 08 00 09 00 09 00 09 00 7",
		"not a number":    "1 101 08 00 09 00 09 00 09 xx",
		"colon time":      "1 101 08:00 09:00 09:00 09:00",
	}
	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecord(line)
			assert.ErrorIs(t, err, ports.ErrMalformedRecord)
		})
	}
}

func TestDecodeSkipsBlankLinesAndStopsOnBadLine(t *testing.T) {
	good := "1 101 8 00 09 00 09 00 09 00\n\n1 102 8 30 09 30 09 00 09 30\n"
	records, err := Decode(strings.NewReader(good))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	bad := good + "1 103 8 30 09 30 09 00 09\n"
	records, err = Decode(strings.NewReader(bad))
	assert.ErrorIs(t, err, ports.ErrMalformedRecord)
	assert.ErrorContains(t, err, "line 4")
	assert.Nil(t, records)
}

func TestEncodeDecode(t *testing.T) {
	d := domain.NewDashboard()
	d.Insert(1, 101, domain.NewTime(8, 0), domain.NewTime(9, 0))
	d.Insert(1, 102, domain.NewTime(7, 0), domain.NewTime(9, 30))
	d.Insert(3, 301, domain.NewTime(12, 0), domain.NewTime(14, 5))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d.Records()))
	assert.Equal(t,
		"1 102 7 00 09 30 09 00 09 30\n"+
			"1 101 8 00 09 00 09 00 09 30\n"+
			"3 301 12 00 14 05 14 05 14 05\n",
		buf.String())

	records, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Records(), records)
}
