package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"ponto/payroll"
	"ponto/payslip"
)

type ReportCmd struct {
	Year  int    `help:"Cycle year (defaults to the current one)."`
	Month int    `help:"Cycle month, 1-12 (defaults to the current one)."`
	JSON  bool   `help:"Print the report as JSON."`
	PDF   string `help:"Also write the payslip PDF to this path." type:"path"`
}

func (c *ReportCmd) Run(app *Context, ctx context.Context) error {
	year, month, err := cycleOf(c.Year, c.Month, time.Now())
	if err != nil {
		return err
	}

	report, err := app.Timesheet.Report(ctx, year, month)
	if err != nil {
		return err
	}

	if c.PDF != "" {
		if err := writePDF(c.PDF, report); err != nil {
			return err
		}
	}

	if c.JSON {
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(app, report)
	if c.PDF != "" {
		fmt.Fprintf(app.Out, "Payslip written to %s\n", c.PDF)
	}
	return nil
}

func writePDF(path string, report payroll.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := payslip.Render(f, report); err != nil {
		f.Close()
		return fmt.Errorf("render payslip: %w", err)
	}
	return f.Close()
}

func printReport(app *Context, r payroll.Report) {
	fmt.Fprintln(app.Out, title(fmt.Sprintf("ciclo %s", r.Period)))
	fmt.Fprintf(app.Out, "%d dias trabalhados, %d domingos, valor hora %s\n", r.WorkedDays, r.Sundays, payslip.BRL(r.HourlyRate))

	hours := newTable(1, "Horas", "Quantidade", "DSR")
	hours.Row("Normais", fixed(r.RegularHours), fixed(r.DSRHours.Regular))
	hours.Row("Noturnas (equivalentes)", fixed(r.NightHours), fixed(r.DSRHours.Night))
	hours.Row("Extras 50%", fixed(r.Overtime50Hours), fixed(r.DSRHours.Overtime50))
	hours.Row("Extras 100%", fixed(r.Overtime100Hours), fixed(r.DSRHours.Overtime100))
	hours.Row("Total", fixed(r.TotalHours), "")
	fmt.Fprintln(app.Out, hours)

	pay := newTable(1, "Verba", "Valor")
	pay.Row("Salário base", payslip.BRL(r.BasePay))
	pay.Row("Periculosidade", payslip.BRL(r.HazardPay))
	pay.Row("Adicional noturno", payslip.BRL(r.NightPay))
	pay.Row("Horas extras 50%", payslip.BRL(r.Overtime50Pay))
	pay.Row("Horas extras 100%", payslip.BRL(r.Overtime100Pay))
	pay.Row("DSR", payslip.BRL(r.DSRPay.Total()))
	pay.Row("Bruto", payslip.BRL(r.GrossPay))
	pay.Row("INSS ("+rate(r.INSSRate)+")", "-"+payslip.BRL(r.INSS))
	pay.Row("IRRF ("+rate(r.IRPFRate)+")", "-"+payslip.BRL(r.IRPF))
	pay.Row("FGTS (informativo)", payslip.BRL(r.FGTS))
	fmt.Fprintln(app.Out, pay)

	fmt.Fprintln(app.Out, totalStyle.Render("Líquido: "+payslip.BRL(r.NetPay)))
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func rate(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
