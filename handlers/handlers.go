package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ponto/logger"
)

type pages map[string]*template.Template

func (p pages) render(w http.ResponseWriter, page string, data map[string]interface{}) {
	t, ok := p[page]
	if !ok {
		logger.Error("Unknown page", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		logger.Error("Failed to render page", "page", page, "err", err)
	}
}

func redirectWith(w http.ResponseWriter, r *http.Request, path, key, msg string) {
	http.Redirect(w, r, path+"?"+key+"="+url.QueryEscape(msg), http.StatusSeeOther)
}

// yearMonth reads ?year=&month= and falls back to now for missing or
// out-of-range values.
func yearMonth(r *http.Request, now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()
	if y, err := strconv.Atoi(r.FormValue("year")); err == nil && y >= 2000 && y <= 2100 {
		year = y
	}
	if m, err := strconv.Atoi(r.FormValue("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}
