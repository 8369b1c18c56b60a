package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ponto/logger"
	"ponto/models"
	"ponto/payroll"
)

var ErrInvalidSettings = errors.New("invalid shift settings")

// Store is the persistence the service needs. *database.Store satisfies it.
type Store interface {
	CreateEntry(ctx context.Context, entry *models.TimeEntry) error
	DeleteEntry(ctx context.Context, id uint) error
	ListEntries(ctx context.Context, p payroll.Period) ([]models.TimeEntry, error)
	ShiftConfig(ctx context.Context) (*models.ShiftConfig, error)
	SaveShiftConfig(ctx context.Context, cfg *models.ShiftConfig) error
}

// Service ties the stored time sheet to the payroll engine. The HTTP
// handlers and the CLI both go through it.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock replaces the wall clock used to pick the current cycle.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Settings returns the stored shift configuration, or nil when none was
// saved yet.
func (s *Service) Settings(ctx context.Context) (*payroll.ShiftConfig, error) {
	row, err := s.store.ShiftConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shift config: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	settings, err := row.Settings()
	if err != nil {
		return nil, fmt.Errorf("load shift config: %w", err)
	}
	return &settings, nil
}

func (s *Service) SaveSettings(ctx context.Context, settings payroll.ShiftConfig) error {
	if settings.HourlyRate.IsNegative() {
		return fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidSettings)
	}
	if settings.NightPremiumPercent < 0 || settings.NightPremiumPercent > 100 {
		return fmt.Errorf("%w: night premium must be between 0 and 100", ErrInvalidSettings)
	}
	settings.HourlyRate = settings.HourlyRate.Round(2)

	row := models.NewShiftConfig(settings)
	if err := s.store.SaveShiftConfig(ctx, &row); err != nil {
		return fmt.Errorf("save shift config: %w", err)
	}
	logger.Info("Shift config saved",
		"hourly_rate", settings.HourlyRate.StringFixed(2),
		"hazard_pay", settings.HazardPay,
		"night_premium", settings.NightPremiumPercent,
		"shift", settings.ShiftStart.String()+"-"+settings.ShiftEnd.String())
	return nil
}

// RecordSession normalizes and classifies one session and stores it. Without
// a saved configuration the session is classified against the zero shift.
func (s *Service) RecordSession(ctx context.Context, date, checkIn, checkOut string, kind payroll.DayKind) (*models.TimeEntry, error) {
	session, err := payroll.NormalizeSession(date, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		logger.Warn("No shift config saved; classifying against an empty shift", "date", date)
		settings = &payroll.ShiftConfig{}
	}

	ot := payroll.ClassifyOvertime(session, *settings, kind)
	entry := models.NewTimeEntry(session, ot)
	if err := s.store.CreateEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	logger.Info("Session recorded",
		"id", entry.ID,
		"date", date,
		"kind", kind.String(),
		"worked", payroll.FormatDuration(entry.TotalSeconds),
		"overtime", payroll.FormatDuration(entry.OvertimeSeconds))
	return &entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id uint) error {
	if err := s.store.DeleteEntry(ctx, id); err != nil {
		return err
	}
	logger.Info("Entry deleted", "id", id)
	return nil
}

// Sheet is one period of stored entries with its running total.
type Sheet struct {
	Period       payroll.Period
	Entries      []models.TimeEntry
	TotalSeconds int64
}

func (s Sheet) Total() string {
	return payroll.FormatDuration(s.TotalSeconds)
}

func (s *Service) Sheet(ctx context.Context, p payroll.Period) (Sheet, error) {
	rows, err := s.store.ListEntries(ctx, p)
	if err != nil {
		return Sheet{}, fmt.Errorf("list entries: %w", err)
	}
	sheet := Sheet{Period: p, Entries: rows}
	for _, row := range rows {
		sheet.TotalSeconds += row.TotalSeconds
	}
	return sheet, nil
}

// CurrentSheet is the sheet of the payroll cycle named after today's month.
func (s *Service) CurrentSheet(ctx context.Context) (Sheet, error) {
	return s.Sheet(ctx, payroll.CurrentCycle(s.now()))
}

// Report prices payroll cycle (year, month).
func (s *Service) Report(ctx context.Context, year int, month time.Month) (payroll.Report, error) {
	p := payroll.Cycle(year, month)
	rows, err := s.store.ListEntries(ctx, p)
	if err != nil {
		return payroll.Report{}, fmt.Errorf("list entries: %w", err)
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return payroll.Report{}, err
	}
	if settings == nil {
		logger.Warn("No shift config saved; report carries zero amounts", "period", p.String())
	}

	report := payroll.BuildReport(models.Entries(rows), p, settings)
	logger.Debug("Report built",
		"period", p.String(),
		"entries", len(report.Entries),
		"gross", report.GrossPay.StringFixed(2),
		"net", report.NetPay.StringFixed(2))
	return report, nil
}

func (s *Service) CurrentReport(ctx context.Context) (payroll.Report, error) {
	now := s.now()
	return s.Report(ctx, now.Year(), now.Month())
}

// AuditRecords returns the audit hand-off for the entries dated inside p.
func (s *Service) AuditRecords(ctx context.Context, p payroll.Period) ([]payroll.AuditRecord, error) {
	rows, err := s.store.ListEntries(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return payroll.BuildAuditPayload(models.Entries(rows), p), nil
}

var decimalReplacer = strings.NewReplacer(" ", "", ",", ".")

// ParseSettings builds a shift configuration from text input. The rate may
// use a comma as decimal separator.
func ParseSettings(rate string, hazardPay bool, nightPremium int, shiftStart, shiftEnd string) (payroll.ShiftConfig, error) {
	hourly, err := decimal.NewFromString(decimalReplacer.Replace(rate))
	if err != nil {
		return payroll.ShiftConfig{}, fmt.Errorf("%w: hourly rate %q", ErrInvalidSettings, rate)
	}
	start, err := payroll.ParseClock(shiftStart)
	if err != nil {
		return payroll.ShiftConfig{}, fmt.Errorf("shift start: %w", err)
	}
	end, err := payroll.ParseClock(shiftEnd)
	if err != nil {
		return payroll.ShiftConfig{}, fmt.Errorf("shift end: %w", err)
	}
	return payroll.ShiftConfig{
		HourlyRate:          hourly,
		HazardPay:           hazardPay,
		NightPremiumPercent: nightPremium,
		ShiftStart:          start,
		ShiftEnd:            end,
	}, nil
}
