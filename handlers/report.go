package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"ponto/logger"
	"ponto/middleware"
	"ponto/payroll"
	"ponto/payslip"
	"ponto/timesheet"
)

type ReportHandler struct {
	templates pages
	service   *timesheet.Service
	now       func() time.Time
}

func NewReportHandler(templates map[string]*template.Template, service *timesheet.Service) *ReportHandler {
	return &ReportHandler{templates: templates, service: service, now: time.Now}
}

func (h *ReportHandler) Page(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year, month := yearMonth(r, now)

	report, err := h.service.Report(r.Context(), year, month)
	if err != nil {
		logger.Error("Failed to build report", "err", err)
		http.Error(w, "Falha ao calcular o relatório", http.StatusInternalServerError)
		return
	}

	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	years := make([]int, 5)
	for i := range years {
		years[i] = now.Year() - i
	}

	data := map[string]interface{}{
		"User":   middleware.GetUserFromContext(r.Context()),
		"Report": report,
		"Year":   year,
		"Month":  int(month),
		"Years":  years,
		"Months": months,
	}
	h.templates.render(w, "report", data)
}

type reportResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Report payroll.Report `json:"report"`
}

func (h *ReportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r, h.now())

	report, err := h.service.Report(r.Context(), year, month)
	if err != nil {
		logger.Error("Failed to build report", "err", err)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reportResponse{
		Year:   year,
		Month:  int(month),
		Start:  report.Period.Start.Format(payroll.DateLayout),
		End:    report.Period.End.Format(payroll.DateLayout),
		Report: report,
	})
}

func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r, h.now())

	report, err := h.service.Report(r.Context(), year, month)
	if err != nil {
		logger.Error("Failed to build report", "err", err)
		http.Error(w, "Falha ao calcular o relatório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=holerite_%d_%02d.pdf", year, month))
	if err := payslip.Render(w, report); err != nil {
		logger.Error("Failed to render payslip", "err", err)
	}
}
