package payroll

// AuditRecord is one session as handed to the payslip auditor.
type AuditRecord struct {
	Date            string `json:"date"`
	WorkedSeconds   int64  `json:"worked_seconds"`
	OvertimeSeconds int64  `json:"overtime_seconds"`
	FullOvertimeDay bool   `json:"full_overtime_day"`
}

func BuildAuditPayload(entries []Entry, p Period) []AuditRecord {
	records := make([]AuditRecord, 0, len(entries))
	for _, e := range entries {
		if !p.Contains(e.Date) {
			continue
		}
		records = append(records, AuditRecord{
			Date:            e.Date.Format(DateLayout),
			WorkedSeconds:   e.TotalSeconds,
			OvertimeSeconds: e.OvertimeSeconds,
			FullOvertimeDay: e.FullOvertimeDay,
		})
	}
	return records
}
