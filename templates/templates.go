// Package templates holds the embedded HTML pages of the web shell.
package templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"ponto/payroll"
	"ponto/payslip"
)

//go:embed html/*.html
var files embed.FS

var Pages = []string{
	"login", "change-password", "index", "config", "report", "audit",
}

var funcMap = template.FuncMap{
	"brl": payslip.BRL,
	"hours": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"percent": func(rate decimal.Decimal) string {
		return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
	},
	"date": func(t time.Time) string {
		return t.Format("02/01/2006")
	},
	"clock": func(t time.Time) string {
		return t.Format(payroll.ClockLayout)
	},
	"duration": payroll.FormatDuration,
}

// Load parses every page paired with the base layout.
func Load() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		t, err := template.New("").Funcs(funcMap).ParseFS(files, "html/base.html", "html/"+page+".html")
		if err != nil {
			return nil, err
		}
		templates[page] = t
	}
	return templates, nil
}
