package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingAmounts(t *testing.T) {
	tests := []struct {
		name           string
		price          float64
		seats          int
		rate           float64
		wantTotal      float64
		wantCommission float64
	}{
		{"whole amounts", 150000, 2, 0.1, 300000, 30000},
		{"sums with float error", 19.99, 3, 0.15, 59.97, 9},
		{"commission rounds up at half a cent", 0.5, 1, 0.05, 0.5, 0.03},
		{"commission rounds down below half a cent", 10.01, 1, 0.1, 10.01, 1},
		{"no commission", 12.5, 4, 0, 50, 0},
		{"beyond int64 cents", 1e17, 1, 0, 1e17, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, commission := BookingAmounts(tt.price, tt.seats, tt.rate)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantCommission, commission)
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 0.0, roundCents(0.004999))
	assert.Equal(t, 0.01, roundCents(0.005))
	assert.Equal(t, -0.01, roundCents(-0.005))
	assert.Equal(t, -2.5, roundCents(-2.5))
	assert.Equal(t, 0.3, roundCents(0.1+0.2))
}
