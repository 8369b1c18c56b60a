package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftConfig is the employee's pay and shift setup. The zero value is the
// degraded configuration used when nothing has been saved yet.
type ShiftConfig struct {
	// HourlyRate is applied per hour everywhere, even though the settings page
	// labels it as a salary.
	HourlyRate          decimal.Decimal
	HazardPay           bool
	NightPremiumPercent int
	ShiftStart          Clock
	ShiftEnd            Clock
}

// Window returns the configured shift on the calendar day of date. A shift
// ending at or before its start runs into the next day.
func (c ShiftConfig) Window(date time.Time) (start, end time.Time) {
	day := DateOf(date)
	start = c.ShiftStart.On(day)
	end = c.ShiftEnd.On(day)
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end
}

func (c ShiftConfig) nightPremium() decimal.Decimal {
	return decimal.NewFromInt(int64(c.NightPremiumPercent)).Div(hundred)
}
