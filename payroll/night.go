package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// NightStartHour is when night work begins under the CLT.
const NightStartHour = 22

var (
	hundred      = decimal.NewFromInt(100)
	secondsPerHr = decimal.NewFromInt(3600)

	// NightFactor turns real night hours into paid hours: a night hour is
	// 52.5 real minutes long.
	NightFactor = decimal.NewFromInt(60).Div(decimal.NewFromFloat(52.5))
)

// Hours converts seconds into decimal hours.
func Hours(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).Div(secondsPerHr)
}

// NightSeconds is the part of the session at or after 22:00 of the check-in day.
func NightSeconds(checkIn, checkOut time.Time) int64 {
	nightStart := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), NightStartHour, 0, 0, 0, checkIn.Location())
	if !checkOut.After(nightStart) {
		return 0
	}
	from := checkIn
	if nightStart.After(from) {
		from = nightStart
	}
	return int64(checkOut.Sub(from) / time.Second)
}

// DSRHours holds the weekly rest share of each hour category.
type DSRHours struct {
	Regular     decimal.Decimal `json:"regular"`
	Night       decimal.Decimal `json:"night"`
	Overtime50  decimal.Decimal `json:"overtime50"`
	Overtime100 decimal.Decimal `json:"overtime100"`
}

type NightDSR struct {
	NightSeconds int64
	// NightHours is already scaled by NightFactor.
	NightHours decimal.Decimal
	WorkedDays int
	Sundays    int
	DSR        DSRHours
}

// ComputeNightAndDSR derives night hours and the weekly paid rest for the
// entries dated inside p.
func ComputeNightAndDSR(entries []Entry, p Period) NightDSR {
	agg := AggregateEntries(entries, p)

	var nd NightDSR
	worked := make(map[time.Time]struct{})
	for _, e := range agg.Entries {
		worked[civil(e.Date)] = struct{}{}
		nd.NightSeconds += NightSeconds(e.CheckIn, e.CheckOut)
	}
	nd.NightHours = Hours(nd.NightSeconds).Mul(NightFactor)
	nd.WorkedDays = len(worked)
	nd.Sundays = p.Sundays()

	nd.DSR = DSRHours{
		Regular:     dsrShare(Hours(agg.RegularSeconds()), nd.WorkedDays, nd.Sundays),
		Night:       dsrShare(nd.NightHours, nd.WorkedDays, nd.Sundays),
		Overtime50:  dsrShare(Hours(agg.Overtime50Seconds), nd.WorkedDays, nd.Sundays),
		Overtime100: dsrShare(Hours(agg.Overtime100Seconds), nd.WorkedDays, nd.Sundays),
	}
	return nd
}

func dsrShare(hours decimal.Decimal, workedDays, sundays int) decimal.Decimal {
	if workedDays == 0 {
		return decimal.Zero
	}
	return hours.Div(decimal.NewFromInt(int64(workedDays))).Mul(decimal.NewFromInt(int64(sundays)))
}
