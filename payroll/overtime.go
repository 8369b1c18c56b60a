package payroll

import (
	"fmt"
	"strings"
	"time"
)

// DayKind selects the overtime policy for a session. It is chosen once, when
// the session is recorded.
type DayKind int

const (
	NormalDay DayKind = iota
	SwappedShift
	FullOvertimeDay
)

var dayKindNames = map[DayKind]string{
	NormalDay:       "normal",
	SwappedShift:    "swapped",
	FullOvertimeDay: "full_overtime",
}

func (k DayKind) String() string {
	if name, ok := dayKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DayKind(%d)", int(k))
}

func ParseDayKind(s string) (DayKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NormalDay, nil
	}
	for kind, name := range dayKindNames {
		if name == s {
			return kind, nil
		}
	}
	return NormalDay, fmt.Errorf("%w: %q", ErrUnknownDayKind, s)
}

// DayKindFromFlags maps the legacy checkbox pair onto a DayKind. A full
// overtime day wins over a swapped shift.
func DayKindFromFlags(fullOvertime, swapped bool) DayKind {
	switch {
	case fullOvertime:
		return FullOvertimeDay
	case swapped:
		return SwappedShift
	default:
		return NormalDay
	}
}

type Tier int

const (
	Tier50 Tier = iota
	Tier100
)

func (t Tier) String() string {
	if t == Tier100 {
		return "100%"
	}
	return "50%"
}

// Tolerance is how far outside the configured window a punch may fall before
// it counts as overtime.
const Tolerance = 5 * time.Minute

type Overtime struct {
	Seconds int64
	Tier    Tier
}

func (o Overtime) FullOvertimeDay() bool { return o.Tier == Tier100 }

// ClassifyOvertime splits a session into overtime according to kind. The
// result never exceeds the session length.
func ClassifyOvertime(s Session, cfg ShiftConfig, kind DayKind) Overtime {
	if kind == FullOvertimeDay {
		return Overtime{Seconds: s.TotalSeconds, Tier: Tier100}
	}

	confStart, confEnd := cfg.Window(s.CheckIn)

	var extra time.Duration
	if kind == SwappedShift {
		// Swapped days compare clock readings only, on a shared reference day.
		in, out := onReferenceDay(s.CheckIn), onReferenceDay(s.CheckOut)
		start, end := onReferenceDay(confStart), onReferenceDay(confEnd)
		if in.Before(end.Add(-Tolerance)) {
			extra += end.Sub(in)
		}
		if out.After(start.Add(Tolerance)) {
			extra += out.Sub(start)
		}
	} else {
		if s.CheckIn.Before(confStart.Add(-Tolerance)) {
			extra += confStart.Sub(s.CheckIn)
		}
		if s.CheckOut.After(confEnd.Add(Tolerance)) {
			extra += s.CheckOut.Sub(confEnd)
		}
	}

	seconds := int64(extra / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds > s.TotalSeconds {
		seconds = s.TotalSeconds
	}
	return Overtime{Seconds: seconds, Tier: Tier50}
}

var referenceDay = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func onReferenceDay(t time.Time) time.Time {
	return time.Date(referenceDay.Year(), referenceDay.Month(), referenceDay.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
