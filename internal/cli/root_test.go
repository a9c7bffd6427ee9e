package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"one-way", "cheapest", "batch", "serve", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestOneWay_RequiredFlags(t *testing.T) {
	_, err := execute(t, "one-way")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestOneWay_MissingCredentials(t *testing.T) {
	t.Setenv("AMADEUS_SEARCHER_CLIENT_ID", "")
	t.Setenv("AMADEUS_SEARCHER_CLIENT_SECRET", "")
	clientID, clientSecret = "", ""

	_, err := execute(t, "one-way",
		"--origin", "SVO",
		"--destinations", "LIS",
		"--date", "2025-12-15",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestBatch_MissingFile(t *testing.T) {
	t.Setenv("AMADEUS_SEARCHER_CLIENT_ID", "test-id")
	t.Setenv("AMADEUS_SEARCHER_CLIENT_SECRET", "test-secret")

	_, err := execute(t, "batch", "--file", "does-not-exist.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open requests file")
}

func TestSearchFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	var flags searchFlags
	addSearchFlags(cmd, &flags)

	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, 0.0, flags.maxPrice)
	assert.Equal(t, domain.DefaultPassengers, flags.adults)
	assert.Equal(t, domain.DefaultMaxResults, flags.maxResults)
	assert.Equal(t, "", flags.outputDir)
}

func TestApplyRequestFlags(t *testing.T) {
	requests := []*domain.SearchRequest{
		domain.NewSearchRequest("SVO", "LIS", []domain.DatePair{{Departure: "2025-12-15"}}),
		domain.NewSearchRequest("SVO", "OPO", []domain.DatePair{{Departure: "2025-12-15"}}),
	}

	applyRequestFlags(requests, searchFlags{maxPrice: 250, adults: 2, maxResults: 5})

	for _, req := range requests {
		assert.Equal(t, 250.0, req.MaxPrice)
		assert.Equal(t, 2, req.Passengers)
		assert.Equal(t, 5, req.MaxResults)
	}
}

func TestVersionCmd(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"version"})

	// Run prints directly to stdout; just verify it executes cleanly.
	require.NoError(t, root.Execute())
}
