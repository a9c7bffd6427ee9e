package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

func testRequest(origin, destination string) *domain.SearchRequest {
	return domain.NewSearchRequest(origin, destination, []domain.DatePair{{Departure: "2024-05-01"}})
}

func testOffer(raw string) domain.Offer {
	return domain.Offer{
		Departures: []string{"2024-05-01T10:35:00"},
		Arrivals:   []string{"2024-05-01T16:50:00"},
		Durations:  []string{"PT7H15M"},
		Price:      120.40,
		Currency:   "EUR",
		Seats:      "9",
		Raw:        json.RawMessage(raw),
	}
}

func TestWriteCreatesFilePerRoute(t *testing.T) {
	w := NewResultsWriter(filepath.Join(t.TempDir(), "last_search"))
	require.NoError(t, w.Reset())

	require.NoError(t, w.Write(testRequest("SVO", "LIS"), []domain.Offer{
		testOffer(`{"id":"1"}`),
		testOffer(`{"id":"2"}`),
	}))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "SVO-LIS-1.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"},{"id":"2"}]`, string(data))
}

func TestWriteCountsRepeatedRoutes(t *testing.T) {
	w := NewResultsWriter(filepath.Join(t.TempDir(), "last_search"))
	require.NoError(t, w.Reset())

	require.NoError(t, w.Write(testRequest("SVO", "LIS"), []domain.Offer{testOffer(`{"id":"1"}`)}))
	require.NoError(t, w.Write(testRequest("SVO", "LIS"), []domain.Offer{testOffer(`{"id":"2"}`)}))
	require.NoError(t, w.Write(testRequest("SVO", "OPO"), []domain.Offer{testOffer(`{"id":"3"}`)}))

	assert.FileExists(t, filepath.Join(w.Dir(), "SVO-LIS-1.json"))
	assert.FileExists(t, filepath.Join(w.Dir(), "SVO-LIS-2.json"))
	assert.FileExists(t, filepath.Join(w.Dir(), "SVO-OPO-1.json"))
}

func TestWriteEmptyOffersProducesEmptyArray(t *testing.T) {
	w := NewResultsWriter(filepath.Join(t.TempDir(), "last_search"))
	require.NoError(t, w.Reset())

	require.NoError(t, w.Write(testRequest("SVO", "LIS"), nil))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "SVO-LIS-1.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestResetDiscardsPreviousRun(t *testing.T) {
	w := NewResultsWriter(filepath.Join(t.TempDir(), "last_search"))

	// First run.
	require.NoError(t, w.Reset())
	require.NoError(t, w.Write(testRequest("SVO", "LIS"), []domain.Offer{testOffer(`{"run":1}`)}))
	require.NoError(t, w.Write(testRequest("SVO", "OPO"), []domain.Offer{testOffer(`{"run":1}`)}))

	// Second run touches only one route; the first run's files must be gone
	// and the counter must restart.
	require.NoError(t, w.Reset())
	require.NoError(t, w.Write(testRequest("SVO", "FAO"), []domain.Offer{testOffer(`{"run":2}`)}))

	entries, err := os.ReadDir(w.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SVO-FAO-1.json", entries[0].Name())
}

func TestResetCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "last_search")
	w := NewResultsWriter(dir)

	require.NoError(t, w.Reset())
	assert.DirExists(t, dir)
}
