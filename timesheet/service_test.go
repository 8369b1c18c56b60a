package timesheet_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/config"
	"ponto/database"
	"ponto/payroll"
	"ponto/timesheet"
)

func newService(t *testing.T, now time.Time) *timesheet.Service {
	t.Helper()

	store, err := database.Init(&config.Config{
		DatabaseURL:   filepath.Join(t.TempDir(), "ponto.db"),
		AdminUsername: "admin",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return timesheet.NewService(store).WithClock(func() time.Time { return now })
}

func dayShift(t *testing.T) payroll.ShiftConfig {
	t.Helper()
	settings, err := timesheet.ParseSettings("10", true, 20, "08:00", "17:00")
	require.NoError(t, err)
	return settings
}

func TestRecordSessionClassifiesAgainstStoredShift(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, svc.SaveSettings(ctx, dayShift(t)))

	entry, err := svc.RecordSession(ctx, "2025-03-10", "07:00", "18:30", payroll.NormalDay)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, int64(11*3600+1800), entry.TotalSeconds)
	assert.Equal(t, int64(3600+5400), entry.OvertimeSeconds)
	assert.False(t, entry.FullOvertimeDay)

	full, err := svc.RecordSession(ctx, "2025-03-11", "08:00", "12:00", payroll.FullOvertimeDay)
	require.NoError(t, err)
	assert.Equal(t, full.TotalSeconds, full.OvertimeSeconds)
	assert.True(t, full.FullOvertimeDay)
}

func TestRecordSessionWithoutSettings(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	entry, err := svc.RecordSession(ctx, "2025-03-10", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)
	assert.Equal(t, int64(9*3600), entry.TotalSeconds)
	assert.LessOrEqual(t, entry.OvertimeSeconds, entry.TotalSeconds)
}

func TestRecordSessionRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := svc.RecordSession(ctx, "2025-03-10", "8h", "17:00", payroll.NormalDay)
	assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat)

	sheet, err := svc.CurrentSheet(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheet.Entries)
}

func TestCurrentSheetRunningTotal(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := svc.RecordSession(ctx, "2025-02-20", "22:00", "06:00", payroll.NormalDay)
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "2025-03-15", "08:00", "09:30", payroll.NormalDay)
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "2025-03-16", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)

	sheet, err := svc.CurrentSheet(ctx)
	require.NoError(t, err)
	assert.Equal(t, payroll.Cycle(2025, time.March), sheet.Period)
	assert.Len(t, sheet.Entries, 2)
	assert.Equal(t, "9h 30min", sheet.Total())
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	entry, err := svc.RecordSession(ctx, "2025-03-01", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, entry.ID), database.ErrNotFound)
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, svc.SaveSettings(ctx, dayShift(t)))

	_, err := svc.RecordSession(ctx, "2025-03-03", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "2025-03-04", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)

	report, err := svc.CurrentReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.WorkedDays)
	assert.True(t, report.RegularHours.Equal(decimal.NewFromInt(18)))
	assert.True(t, report.BasePay.Equal(decimal.NewFromInt(180)))
	assert.True(t, report.HazardPay.Equal(decimal.NewFromInt(54)))
	assert.True(t, report.NetPay.Equal(report.GrossPay.Sub(report.TotalDeductions)))
}

func TestReportWithoutSettingsIsZero(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := svc.RecordSession(ctx, "2025-03-03", "08:00", "17:00", payroll.NormalDay)
	require.NoError(t, err)

	report, err := svc.Report(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.True(t, report.TotalHours.Equal(decimal.NewFromInt(9)))
	assert.True(t, report.GrossPay.IsZero())
	assert.True(t, report.NetPay.IsZero())
}

func TestSaveSettingsValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Now())

	bad := dayShift(t)
	bad.NightPremiumPercent = 120
	assert.ErrorIs(t, svc.SaveSettings(ctx, bad), timesheet.ErrInvalidSettings)

	bad = dayShift(t)
	bad.HourlyRate = decimal.NewFromInt(-1)
	assert.ErrorIs(t, svc.SaveSettings(ctx, bad), timesheet.ErrInvalidSettings)

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)

	require.NoError(t, svc.SaveSettings(ctx, dayShift(t)))
	settings, err = svc.Settings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "08:00", settings.ShiftStart.String())
	assert.Equal(t, 20, settings.NightPremiumPercent)
}

func TestParseSettings(t *testing.T) {
	settings, err := timesheet.ParseSettings("12,50", false, 0, "22:00", "06:00")
	require.NoError(t, err)
	assert.True(t, settings.HourlyRate.Equal(decimal.RequireFromString("12.5")))

	_, err = timesheet.ParseSettings("abc", false, 0, "22:00", "06:00")
	assert.ErrorIs(t, err, timesheet.ErrInvalidSettings)

	_, err = timesheet.ParseSettings("10", false, 0, "25:00", "06:00")
	assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat)
}

func TestAuditRecords(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, time.Now())

	_, err := svc.RecordSession(ctx, "2025-03-31", "08:00", "12:00", payroll.FullOvertimeDay)
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "2025-04-01", "08:00", "12:00", payroll.NormalDay)
	require.NoError(t, err)

	p, err := payroll.ParseMonth("2025-03")
	require.NoError(t, err)
	records, err := svc.AuditRecords(ctx, p)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-03-31", records[0].Date)
	assert.True(t, records[0].FullOvertimeDay)
	assert.Equal(t, int64(4*3600), records[0].OvertimeSeconds)
}
