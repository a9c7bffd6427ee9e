package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

func TestOneWayRequests(t *testing.T) {
	requests := OneWayRequests("SVO", []string{"LIS", "OPO"}, "2024-01-01", 3)
	require.Len(t, requests, 2)

	for _, req := range requests {
		assert.Equal(t, "SVO", req.Origin)
		assert.True(t, req.HasOneWay)
		assert.False(t, req.HasRoundTrip)
		require.Len(t, req.Dates, 3)
		assert.Equal(t, "2024-01-01", req.Dates[0].Departure)
		assert.Equal(t, "2024-01-03", req.Dates[2].Departure)
	}
	assert.Equal(t, "LIS", requests[0].Destination)
	assert.Equal(t, "OPO", requests[1].Destination)
}

func TestOneWayRequestsBadStartDate(t *testing.T) {
	requests := OneWayRequests("SVO", []string{"LIS"}, "garbage", 3)
	require.Len(t, requests, 1)
	assert.Empty(t, requests[0].Dates)
}

func TestRoundTripRequests(t *testing.T) {
	requests := RoundTripRequests("SVO", []string{"LIS"}, "2024-01-01", 2, 7)
	require.Len(t, requests, 1)

	req := requests[0]
	assert.True(t, req.HasRoundTrip)
	assert.False(t, req.HasOneWay)
	require.Len(t, req.Dates, 2)
	assert.Equal(t, domain.DatePair{Departure: "2024-01-01", Return: "2024-01-08"}, req.Dates[0])
	assert.Equal(t, domain.DatePair{Departure: "2024-01-02", Return: "2024-01-09"}, req.Dates[1])
	assert.Equal(t, "7", req.DateDurations[0].Return)
}

func TestRoundTripRequestsZeroReturnAfterIsOneWay(t *testing.T) {
	requests := RoundTripRequests("SVO", []string{"LIS"}, "2024-01-01", 2, 0)
	require.Len(t, requests, 1)
	assert.True(t, requests[0].HasOneWay)
}

func writeRequestsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requests.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRequestsFile(t *testing.T) {
	path := writeRequestsFile(t,
		"SVO,LIS,2024-05-01,2024-05-08\n"+
			"SVO,OPO,2024-05-02,\n"+
			"LED,FAO,2024-05-03\n")

	requests, err := LoadRequestsFile(path)
	require.NoError(t, err)
	require.Len(t, requests, 3)

	assert.Equal(t, "SVO", requests[0].Origin)
	assert.Equal(t, "LIS", requests[0].Destination)
	assert.True(t, requests[0].HasRoundTrip)
	assert.Equal(t, "7", requests[0].DateDurations[0].Return)

	assert.True(t, requests[1].HasOneWay)
	assert.Equal(t, "LED", requests[2].Origin)
	assert.True(t, requests[2].HasOneWay)
}

func TestLoadRequestsFileTooFewColumns(t *testing.T) {
	path := writeRequestsFile(t, "SVO,LIS\n")

	_, err := LoadRequestsFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadRequestsFileMissing(t *testing.T) {
	_, err := LoadRequestsFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadRequestsFileInvalidDatePairIsDropped(t *testing.T) {
	// A bad pair inside a row degrades to a request with no dates; the
	// driver's validation will then reject it before searching.
	path := writeRequestsFile(t, "SVO,LIS,2024-05-08,2024-05-01\n")

	requests, err := LoadRequestsFile(path)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Empty(t, requests[0].Dates)
}
