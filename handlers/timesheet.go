package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"ponto/database"
	"ponto/logger"
	"ponto/middleware"
	"ponto/payroll"
	"ponto/timesheet"
)

type TimesheetHandler struct {
	templates pages
	service   *timesheet.Service
	now       func() time.Time
}

func NewTimesheetHandler(templates map[string]*template.Template, service *timesheet.Service) *TimesheetHandler {
	return &TimesheetHandler{
		templates: templates,
		service:   service,
		now:       time.Now,
	}
}

func (h *TimesheetHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	now := h.now()

	sheet, err := h.service.Sheet(r.Context(), payroll.CurrentCycle(now))
	if err != nil {
		logger.Error("Failed to load time sheet", "err", err)
		http.Error(w, "Falha ao carregar os registros", http.StatusInternalServerError)
		return
	}

	settings, err := h.service.Settings(r.Context())
	if err != nil {
		logger.Error("Failed to load shift config", "err", err)
	}

	data := map[string]interface{}{
		"User":       user,
		"Sheet":      sheet,
		"Configured": settings != nil,
		"Today":      now.Format(payroll.DateLayout),
		"Year":       now.Year(),
		"Month":      int(now.Month()),
		"Error":      r.URL.Query().Get("error"),
		"Success":    r.URL.Query().Get("success"),
	}
	h.templates.render(w, "index", data)
}

func (h *TimesheetHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/", "error", "Formulário inválido")
		return
	}

	kind, err := dayKind(r)
	if err != nil {
		redirectWith(w, r, "/", "error", "Tipo de dia inválido")
		return
	}

	_, err = h.service.RecordSession(r.Context(), r.FormValue("date"), r.FormValue("check_in"), r.FormValue("check_out"), kind)
	if errors.Is(err, payroll.ErrInvalidTimeFormat) {
		redirectWith(w, r, "/", "error", "Data ou horário inválido")
		return
	}
	if err != nil {
		logger.Error("Failed to record session", "err", err)
		redirectWith(w, r, "/", "error", "Falha ao salvar o registro")
		return
	}

	redirectWith(w, r, "/", "success", "Registro salvo")
}

// dayKind accepts the kind selector, or the legacy extra/trocado checkboxes.
func dayKind(r *http.Request) (payroll.DayKind, error) {
	if v := r.FormValue("kind"); v != "" {
		return payroll.ParseDayKind(v)
	}
	return payroll.DayKindFromFlags(r.FormValue("extra") != "", r.FormValue("trocado") != ""), nil
}

func (h *TimesheetHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/", "error", "Formulário inválido")
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		redirectWith(w, r, "/", "error", "Registro inválido")
		return
	}

	err = h.service.DeleteEntry(r.Context(), uint(id))
	if errors.Is(err, database.ErrNotFound) {
		redirectWith(w, r, "/", "error", "Registro não encontrado")
		return
	}
	if err != nil {
		logger.Error("Failed to delete entry", "id", id, "err", err)
		redirectWith(w, r, "/", "error", "Falha ao excluir o registro")
		return
	}

	redirectWith(w, r, "/", "success", "Registro excluído")
}

// ExportCSV writes the entries of cycle (year, month) as CSV.
func (h *TimesheetHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r, h.now())

	sheet, err := h.service.Sheet(r.Context(), payroll.Cycle(year, month))
	if err != nil {
		logger.Error("Failed to export time sheet", "err", err)
		http.Error(w, "Falha ao exportar", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ponto_%d_%02d.csv", year, month)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"date", "check_in", "check_out", "worked_seconds", "overtime_seconds", "full_overtime_day"})
	for _, entry := range sheet.Entries {
		writer.Write([]string{
			entry.Date.Format(payroll.DateLayout),
			entry.CheckIn.Format(time.RFC3339),
			entry.CheckOut.Format(time.RFC3339),
			strconv.FormatInt(entry.TotalSeconds, 10),
			strconv.FormatInt(entry.OvertimeSeconds, 10),
			strconv.FormatBool(entry.FullOvertimeDay),
		})
	}
}
