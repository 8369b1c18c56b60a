package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ponto/payroll"
)

// ShiftConfigID is the primary key of the only configuration row.
const ShiftConfigID = 1

// ShiftConfig stores the pay and shift settings. The table holds at most one
// row (ID = 1); clock readings are kept as "HH:MM".
type ShiftConfig struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	HourlyRate          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"hourly_rate"`
	HazardPay           bool            `gorm:"not null;default:false" json:"hazard_pay"`
	NightPremiumPercent int             `gorm:"not null;default:0" json:"night_premium_percent"`
	ShiftStart          string          `gorm:"type:char(5);not null" json:"shift_start"`
	ShiftEnd            string          `gorm:"type:char(5);not null" json:"shift_end"`
}

func NewShiftConfig(cfg payroll.ShiftConfig) ShiftConfig {
	return ShiftConfig{
		ID:                  ShiftConfigID,
		HourlyRate:          cfg.HourlyRate,
		HazardPay:           cfg.HazardPay,
		NightPremiumPercent: cfg.NightPremiumPercent,
		ShiftStart:          cfg.ShiftStart.String(),
		ShiftEnd:            cfg.ShiftEnd.String(),
	}
}

func (c ShiftConfig) Settings() (payroll.ShiftConfig, error) {
	start, err := payroll.ParseClock(c.ShiftStart)
	if err != nil {
		return payroll.ShiftConfig{}, fmt.Errorf("shift start: %w", err)
	}
	end, err := payroll.ParseClock(c.ShiftEnd)
	if err != nil {
		return payroll.ShiftConfig{}, fmt.Errorf("shift end: %w", err)
	}
	return payroll.ShiftConfig{
		HourlyRate:          c.HourlyRate,
		HazardPay:           c.HazardPay,
		NightPremiumPercent: c.NightPremiumPercent,
		ShiftStart:          start,
		ShiftEnd:            end,
	}, nil
}
