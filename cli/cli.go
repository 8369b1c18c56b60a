package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ponto/config"
	"ponto/database"
	"ponto/timesheet"
)

// Context is bound into every command's Run method.
type Context struct {
	Config    *config.Config
	Store     *database.Store
	Timesheet *timesheet.Service
	Out       io.Writer
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// newTable right-aligns every column from firstNumeric on.
func newTable(firstNumeric int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case firstNumeric >= 0 && col >= firstNumeric:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}

func title(s string) string {
	return titleStyle.Render(strings.ToUpper(s[:1]) + s[1:])
}
