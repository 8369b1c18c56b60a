package payroll

import (
	"fmt"
	"time"
)

// Session is a validated check-in/check-out pair attributed to Date.
type Session struct {
	Date         time.Time
	CheckIn      time.Time
	CheckOut     time.Time
	TotalSeconds int64
}

func (s Session) Duration() time.Duration {
	return s.CheckOut.Sub(s.CheckIn)
}

// NormalizeSession combines the date with both clock readings. A check-out at
// or before the check-in belongs to the following day.
func NormalizeSession(date, checkIn, checkOut string) (Session, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return Session{}, fmt.Errorf("%w: date %q", ErrInvalidTimeFormat, date)
	}
	in, err := ParseClock(checkIn)
	if err != nil {
		return Session{}, fmt.Errorf("check-in: %w", err)
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return Session{}, fmt.Errorf("check-out: %w", err)
	}
	return NewSession(day, in, out), nil
}

// NewSession is NormalizeSession for already parsed values.
func NewSession(date time.Time, checkIn, checkOut Clock) Session {
	day := DateOf(date)
	in := checkIn.On(day)
	out := checkOut.On(day)
	if !out.After(in) {
		out = out.Add(24 * time.Hour)
	}
	return Session{
		Date:         day,
		CheckIn:      in,
		CheckOut:     out,
		TotalSeconds: int64(out.Sub(in) / time.Second),
	}
}
