package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/payroll"
)

func TestNormalizeSession(t *testing.T) {
	tests := []struct {
		name         string
		date         string
		checkIn      string
		checkOut     string
		wantCheckOut time.Time
		wantSeconds  int64
	}{
		{
			name:         "same day",
			date:         "2025-03-10",
			checkIn:      "08:00",
			checkOut:     "17:30",
			wantCheckOut: time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC),
			wantSeconds:  9*3600 + 1800,
		},
		{
			name:         "crosses midnight",
			date:         "2025-03-10",
			checkIn:      "22:00",
			checkOut:     "06:00",
			wantCheckOut: time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
			wantSeconds:  8 * 3600,
		},
		{
			name:         "equal readings span a full day",
			date:         "2025-03-10",
			checkIn:      "07:00",
			checkOut:     "07:00",
			wantCheckOut: time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
			wantSeconds:  24 * 3600,
		},
		{
			name:         "month rollover",
			date:         "2025-01-31",
			checkIn:      "23:30",
			checkOut:     "00:15",
			wantCheckOut: time.Date(2025, 2, 1, 0, 15, 0, 0, time.UTC),
			wantSeconds:  45 * 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := payroll.NormalizeSession(tt.date, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCheckOut, s.CheckOut)
			assert.Equal(t, tt.wantSeconds, s.TotalSeconds)
			assert.True(t, s.CheckOut.After(s.CheckIn))
			assert.Positive(t, s.TotalSeconds)
		})
	}
}

func TestNormalizeSessionInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		checkIn  string
		checkOut string
	}{
		{"bad check-in", "2025-03-10", "8h", "17:00"},
		{"bad check-out", "2025-03-10", "08:00", "25:00"},
		{"bad date", "10/03/2025", "08:00", "17:00"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := payroll.NormalizeSession(tt.date, tt.checkIn, tt.checkOut)
			assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat)
		})
	}
}

func TestParseClock(t *testing.T) {
	c, err := payroll.ParseClock("07:05")
	require.NoError(t, err)
	assert.Equal(t, payroll.Clock{Hour: 7, Minute: 5}, c)
	assert.Equal(t, "07:05", c.String())
	assert.Equal(t, 425, c.Minutes())

	_, err = payroll.ParseClock("7pm")
	assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat)
}

func TestShiftConfigWindow(t *testing.T) {
	day := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	cfg := payroll.ShiftConfig{ShiftStart: payroll.MustParseClock("08:00"), ShiftEnd: payroll.MustParseClock("17:00")}
	start, end := cfg.Window(day)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), end)

	night := payroll.ShiftConfig{ShiftStart: payroll.MustParseClock("22:00"), ShiftEnd: payroll.MustParseClock("06:00")}
	start, end = night.Window(day)
	assert.Equal(t, time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), end)
}
