package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 2),
			want:     1,
		},
		{
			name:     "three nights",
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 4),
			want:     3,
		},
		{
			name:     "sub-day stay bills one night",
			checkIn:  time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "partial day floors to full nights",
			checkIn:  time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "month boundary",
			checkIn:  date(2026, 7, 30),
			checkOut: date(2026, 8, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalCost(t *testing.T) {
	tests := []struct {
		name     string
		rate     int64
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{
			name:     "three nights at 10000 cents",
			rate:     10000,
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 4),
			want:     30000,
		},
		{
			name:     "one night minimum",
			rate:     12550,
			checkIn:  time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 7, 1, 23, 0, 0, 0, time.UTC),
			want:     12550,
		},
		{
			name:     "free room stays zero",
			rate:     0,
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 8),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalCost(tt.rate, tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalCostDeterministic(t *testing.T) {
	checkIn := date(2026, 12, 24)
	checkOut := date(2026, 12, 28)

	first := TotalCost(19999, checkIn, checkOut)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, TotalCost(19999, checkIn, checkOut))
	}
}
