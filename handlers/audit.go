package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"time"

	"ponto/audit"
	"ponto/logger"
	"ponto/middleware"
	"ponto/payroll"
)

type AuditHandler struct {
	templates pages
	audit     *audit.Service
}

func NewAuditHandler(templates map[string]*template.Template, service *audit.Service) *AuditHandler {
	return &AuditHandler{templates: templates, audit: service}
}

func (h *AuditHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "", time.Now().Format("2006-01"), nil, "")
}

func (h *AuditHandler) Run(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "", "", nil, "Formulário inválido")
		return
	}

	path := r.FormValue("path")
	target := r.FormValue("target")

	result, err := h.audit.Run(r.Context(), path, target)
	switch {
	case errors.Is(err, audit.ErrNotConfigured):
		h.render(w, r, path, target, nil, "Auditoria não configurada")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		h.render(w, r, path, target, nil, "Mês de referência inválido (use AAAA-MM)")
	case errors.Is(err, os.ErrNotExist):
		h.render(w, r, path, target, nil, "Arquivo do holerite não encontrado")
	case err != nil:
		logger.Error("Audit failed", "err", err)
		h.render(w, r, path, target, nil, "Falha na auditoria")
	default:
		h.render(w, r, path, target, result, "")
	}
}

func (h *AuditHandler) render(w http.ResponseWriter, r *http.Request, path, target string, result *audit.Result, msg string) {
	data := map[string]interface{}{
		"User":       middleware.GetUserFromContext(r.Context()),
		"Configured": h.audit.Configured(),
		"Path":       path,
		"Target":     target,
		"Result":     result,
		"Error":      msg,
	}
	h.templates.render(w, "audit", data)
}
