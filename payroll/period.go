package payroll

import (
	"fmt"
	"time"
)

// CycleClosingDay is the last day of month M that belongs to payroll cycle M.
const CycleClosingDay = 15

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// Cycle returns payroll cycle (year, month): the 16th of the previous month
// through the 15th of month.
func Cycle(year int, month time.Month) Period {
	end := time.Date(year, month, CycleClosingDay, 0, 0, 0, 0, time.UTC)
	start := time.Date(year, month-1, CycleClosingDay+1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: end}
}

// CurrentCycle is the cycle named after now's month.
func CurrentCycle(now time.Time) Period {
	return Cycle(now.Year(), now.Month())
}

// MonthPeriod is the plain calendar month, used to select audit records.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, -1)}
}

// ParseMonth parses a "YYYY-MM" target into its calendar month.
func ParseMonth(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return MonthPeriod(t.Year(), t.Month()), nil
}

func (p Period) Contains(date time.Time) bool {
	d := civil(date)
	return !d.Before(civil(p.Start)) && !d.After(civil(p.End))
}

// Days calls fn for every date in the period, in order.
func (p Period) Days(fn func(time.Time)) {
	for d := civil(p.Start); !d.After(civil(p.End)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (p Period) Sundays() int {
	n := 0
	p.Days(func(d time.Time) {
		if d.Weekday() == time.Sunday {
			n++
		}
	})
	return n
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + " - " + p.End.Format(DateLayout)
}

// civil drops the clock and location so dates compare as calendar days.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Entry is a recorded work session as the engine sees it.
type Entry struct {
	ID              uint
	Date            time.Time
	CheckIn         time.Time
	CheckOut        time.Time
	TotalSeconds    int64
	OvertimeSeconds int64
	FullOvertimeDay bool
}

type Aggregate struct {
	Period             Period
	Entries            []Entry
	TotalSeconds       int64
	Overtime50Seconds  int64
	Overtime100Seconds int64
}

func (a Aggregate) RegularSeconds() int64 {
	return a.TotalSeconds - a.Overtime50Seconds - a.Overtime100Seconds
}

// AggregatePeriod sums the entries of payroll cycle (year, month).
func AggregatePeriod(entries []Entry, year int, month time.Month) Aggregate {
	return AggregateEntries(entries, Cycle(year, month))
}

// AggregateEntries keeps the entries dated inside p and sums their seconds.
func AggregateEntries(entries []Entry, p Period) Aggregate {
	agg := Aggregate{Period: p}
	for _, e := range entries {
		if !p.Contains(e.Date) {
			continue
		}
		agg.Entries = append(agg.Entries, e)
		agg.TotalSeconds += e.TotalSeconds
		if e.FullOvertimeDay {
			agg.Overtime100Seconds += e.OvertimeSeconds
		} else {
			agg.Overtime50Seconds += e.OvertimeSeconds
		}
	}
	return agg
}

// FormatDuration renders seconds as the running total shown on the home page.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%dh %dmin", seconds/3600, (seconds%3600)/60)
}
