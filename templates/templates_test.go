package templates

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/models"
	"ponto/payroll"
)

func TestLoadParsesEveryPage(t *testing.T) {
	templates, err := Load()
	require.NoError(t, err)
	for _, page := range Pages {
		assert.Contains(t, templates, page)
	}
}

func TestLoginRendersWithoutUser(t *testing.T) {
	templates, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, templates["login"].ExecuteTemplate(&buf, "base", map[string]interface{}{
		"Error": "Credenciais inválidas",
	}))
	assert.Contains(t, buf.String(), "Credenciais inválidas")
	assert.NotContains(t, buf.String(), "<nav>")
}

func TestReportRendersAmounts(t *testing.T) {
	templates, err := Load()
	require.NoError(t, err)

	report := payroll.BuildReport(nil, payroll.Cycle(2025, time.March), &payroll.ShiftConfig{HourlyRate: decimal.NewFromInt(10)})

	var buf bytes.Buffer
	require.NoError(t, templates["report"].ExecuteTemplate(&buf, "base", map[string]interface{}{
		"User":   &models.User{Username: "admin"},
		"Report": report,
		"Month":  3,
		"Year":   2025,
		"Months": []int{1, 2, 3},
		"Years":  []int{2025, 2024},
	}))
	out := buf.String()
	assert.Contains(t, out, "16/02/2025")
	assert.Contains(t, out, "15/03/2025")
	assert.Contains(t, out, "R$ 10,00")
	assert.Contains(t, out, `<option value="3" selected>`)
}

func TestFuncs(t *testing.T) {
	assert.Equal(t, "7.5%", funcMap["percent"].(func(decimal.Decimal) string)(decimal.RequireFromString("0.075")))
	assert.Equal(t, "1.14", funcMap["hours"].(func(decimal.Decimal) string)(decimal.RequireFromString("1.142857")))
	assert.Equal(t, "09/03/2025", funcMap["date"].(func(time.Time) string)(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))
}
