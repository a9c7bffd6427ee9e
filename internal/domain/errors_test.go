package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		code          int
		title         string
		detail        string
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "client error is permanent",
			status:        400,
			code:          477,
			title:         "INVALID FORMAT",
			detail:        "departureDate must not be in the past",
			wantContains:  []string{"status=400", "code=477", "INVALID FORMAT", "in the past"},
			wantRetryable: false,
		},
		{
			name:          "unauthorized is permanent",
			status:        401,
			code:          38191,
			title:         "Invalid HTTP header",
			wantContains:  []string{"status=401", "Invalid HTTP header"},
			wantRetryable: false,
		},
		{
			name:          "rate limit is retryable",
			status:        429,
			title:         "QUOTA LIMIT EXCEEDED",
			wantContains:  []string{"status=429"},
			wantRetryable: true,
		},
		{
			name:          "server error is retryable",
			status:        500,
			title:         "SYSTEM ERROR",
			wantContains:  []string{"status=500"},
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.status, tt.code, tt.title, tt.detail)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.Equal(t, tt.wantRetryable, err.Retryable)
			assert.Equal(t, tt.wantRetryable, IsRetryable(err))
		})
	}
}

func TestIsRetryableNonAPIError(t *testing.T) {
	// Transport-level failures are not APIErrors and stay retryable.
	assert.True(t, IsRetryable(errors.New("connection reset by peer")))
}

func TestIsRetryableWrappedAPIError(t *testing.T) {
	err := fmt.Errorf("search SVO-LIS: %w", NewAPIError(400, 0, "BAD REQUEST", ""))
	assert.False(t, IsRetryable(err))
}
