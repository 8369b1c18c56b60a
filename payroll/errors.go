package payroll

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrUnknownDayKind    = errors.New("unknown day kind")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
)
