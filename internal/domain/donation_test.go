package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDonation_AmountInPaise(t *testing.T) {
	tests := []struct {
		amount string
		paise  int64
	}{
		{"500", 50000},
		{"500.00", 50000},
		{"99.95", 9995},
		{"0.01", 1},
		{"1234567.89", 123456789},
	}

	for _, tt := range tests {
		d := Donation{Amount: decimal.RequireFromString(tt.amount)}
		assert.Equal(t, tt.paise, d.AmountInPaise(), "amount %s", tt.amount)

		// No precision loss across the minor-unit round trip.
		back := decimal.New(d.AmountInPaise(), -2)
		assert.True(t, back.Equal(d.Amount.Round(2)), "round trip for %s", tt.amount)
	}
}

func TestDonationStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
