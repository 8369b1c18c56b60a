// Package payslip renders a computed payroll report as a PDF holerite.
package payslip

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"ponto/payroll"
)

type line struct {
	label  string
	ref    string
	amount decimal.Decimal
}

// Render writes report as a one-page A4 PDF to w.
func Render(w io.Writer, report payroll.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr("Holerite "+report.Period.String()), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Holerite"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Período: %s a %s",
		report.Period.Start.Format("02/01/2006"), report.Period.End.Format("02/01/2006"))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Dias trabalhados: %d   Domingos: %d   Valor hora: %s",
		report.WorkedDays, report.Sundays, BRL(report.HourlyRate))))
	pdf.Ln(10)

	earnings := []line{
		{"Salário base", hours(report.RegularHours), report.BasePay},
		{"Adicional de periculosidade", "30%", report.HazardPay},
		{"Adicional noturno", hours(report.NightHours), report.NightPay},
		{"Horas extras 50%", hours(report.Overtime50Hours), report.Overtime50Pay},
		{"Horas extras 100%", hours(report.Overtime100Hours), report.Overtime100Pay},
		{"DSR sobre horas normais", hours(report.DSRHours.Regular), report.DSRPay.Regular},
		{"DSR sobre adicional noturno", hours(report.DSRHours.Night), report.DSRPay.Night},
		{"DSR sobre horas extras 50%", hours(report.DSRHours.Overtime50), report.DSRPay.Overtime50},
		{"DSR sobre horas extras 100%", hours(report.DSRHours.Overtime100), report.DSRPay.Overtime100},
	}
	deductions := []line{
		{"INSS", percent(report.INSSRate), report.INSS},
		{"IRRF", percent(report.IRPFRate), report.IRPF},
	}

	section(pdf, tr, "Proventos", earnings)
	total(pdf, tr, "Total bruto", report.GrossPay)
	pdf.Ln(4)

	section(pdf, tr, "Descontos", deductions)
	total(pdf, tr, "Total de descontos", report.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	total(pdf, tr, "Líquido a receber", report.NetPay)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Base de cálculo IRRF: %s   FGTS do mês (8%%): %s",
		BRL(report.IRPFBase), BRL(report.FGTS))))

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []line) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(110, 7, tr(title), "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, tr("Referência"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, tr("Valor"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.CellFormat(110, 6, tr(l.label), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, tr(l.ref), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, tr(BRL(l.amount)), "LR", 1, "R", false, 0, "")
	}
}

func total(pdf *gofpdf.Fpdf, tr func(string) string, label string, amount decimal.Decimal) {
	pdf.CellFormat(145, 7, tr(label), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, tr(BRL(amount)), "1", 1, "R", false, 0, "")
}

func hours(h decimal.Decimal) string {
	return strings.Replace(h.StringFixed(2), ".", ",", 1) + "h"
}

func percent(rate decimal.Decimal) string {
	return strings.Replace(rate.Mul(decimal.NewFromInt(100)).StringFixed(1), ".", ",", 1) + "%"
}

// BRL formats an amount as Brazilian reais, e.g. "R$ 1.234,56".
func BRL(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + b.String() + "," + frac
}
