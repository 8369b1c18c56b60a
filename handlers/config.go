package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"ponto/logger"
	"ponto/middleware"
	"ponto/payroll"
	"ponto/timesheet"
)

type ConfigHandler struct {
	templates pages
	service   *timesheet.Service
}

func NewConfigHandler(templates map[string]*template.Template, service *timesheet.Service) *ConfigHandler {
	return &ConfigHandler{templates: templates, service: service}
}

type configForm struct {
	HourlyRate   string
	HazardPay    bool
	NightPremium int
	ShiftStart   string
	ShiftEnd     string
}

func (h *ConfigHandler) Page(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings(r.Context())
	if err != nil {
		logger.Error("Failed to load shift config", "err", err)
		http.Error(w, "Falha ao carregar a configuração", http.StatusInternalServerError)
		return
	}

	form := configForm{HourlyRate: "0.00", ShiftStart: "08:00", ShiftEnd: "17:00"}
	if settings != nil {
		form = configForm{
			HourlyRate:   settings.HourlyRate.StringFixed(2),
			HazardPay:    settings.HazardPay,
			NightPremium: settings.NightPremiumPercent,
			ShiftStart:   settings.ShiftStart.String(),
			ShiftEnd:     settings.ShiftEnd.String(),
		}
	}

	data := map[string]interface{}{
		"User":    middleware.GetUserFromContext(r.Context()),
		"Form":    form,
		"Error":   r.URL.Query().Get("error"),
		"Success": r.URL.Query().Get("success"),
	}
	h.templates.render(w, "config", data)
}

func (h *ConfigHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/config", "error", "Formulário inválido")
		return
	}

	premium := 0
	if v := r.FormValue("night_premium"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			redirectWith(w, r, "/config", "error", "Adicional noturno inválido")
			return
		}
		premium = p
	}

	settings, err := timesheet.ParseSettings(
		r.FormValue("hourly_rate"),
		r.FormValue("hazard_pay") != "",
		premium,
		r.FormValue("shift_start"),
		r.FormValue("shift_end"),
	)
	if err == nil {
		err = h.service.SaveSettings(r.Context(), settings)
	}

	switch {
	case errors.Is(err, payroll.ErrInvalidTimeFormat):
		redirectWith(w, r, "/config", "error", "Horário de turno inválido")
	case errors.Is(err, timesheet.ErrInvalidSettings):
		redirectWith(w, r, "/config", "error", "Configuração inválida: "+err.Error())
	case err != nil:
		logger.Error("Failed to save shift config", "err", err)
		redirectWith(w, r, "/config", "error", "Falha ao salvar a configuração")
	default:
		redirectWith(w, r, "/config", "success", "Configuração salva")
	}
}
