package models

import (
	"time"

	"gorm.io/gorm"

	"ponto/payroll"
)

// TimeEntry is one recorded work session. Rows are created once and only
// ever deleted.
type TimeEntry struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Date            time.Time      `gorm:"not null;type:date;index" json:"date"`
	CheckIn         time.Time      `gorm:"not null" json:"check_in"`
	CheckOut        time.Time      `gorm:"not null" json:"check_out"`
	TotalSeconds    int64          `gorm:"not null" json:"total_seconds"`
	OvertimeSeconds int64          `gorm:"not null;default:0" json:"overtime_seconds"`
	FullOvertimeDay bool           `gorm:"not null;default:false" json:"full_overtime_day"`
}

func NewTimeEntry(s payroll.Session, ot payroll.Overtime) TimeEntry {
	return TimeEntry{
		Date:            s.Date,
		CheckIn:         s.CheckIn,
		CheckOut:        s.CheckOut,
		TotalSeconds:    s.TotalSeconds,
		OvertimeSeconds: ot.Seconds,
		FullOvertimeDay: ot.FullOvertimeDay(),
	}
}

func (e TimeEntry) Entry() payroll.Entry {
	return payroll.Entry{
		ID:              e.ID,
		Date:            e.Date,
		CheckIn:         e.CheckIn,
		CheckOut:        e.CheckOut,
		TotalSeconds:    e.TotalSeconds,
		OvertimeSeconds: e.OvertimeSeconds,
		FullOvertimeDay: e.FullOvertimeDay,
	}
}

func (e TimeEntry) Worked() string {
	return payroll.FormatDuration(e.TotalSeconds)
}

func (e TimeEntry) Overtime() string {
	return payroll.FormatDuration(e.OvertimeSeconds)
}

func Entries(rows []TimeEntry) []payroll.Entry {
	entries := make([]payroll.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.Entry()
	}
	return entries
}
