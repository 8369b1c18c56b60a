package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ponto/payroll"
)

type EntryAddCmd struct {
	Date     string `arg:"" help:"Work date (YYYY-MM-DD)."`
	CheckIn  string `arg:"" help:"Check-in time (HH:MM)."`
	CheckOut string `arg:"" help:"Check-out time (HH:MM); earlier than check-in means the next day."`
	Kind     string `help:"Day kind: normal, swapped or full_overtime." enum:"normal,swapped,full_overtime" default:"normal"`
}

func (c *EntryAddCmd) Run(app *Context, ctx context.Context) error {
	kind, err := payroll.ParseDayKind(c.Kind)
	if err != nil {
		return err
	}

	entry, err := app.Timesheet.RecordSession(ctx, c.Date, c.CheckIn, c.CheckOut, kind)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "Recorded entry %d: %s %s-%s, worked %s, overtime %s\n",
		entry.ID,
		entry.Date.Format(payroll.DateLayout),
		entry.CheckIn.Format(payroll.ClockLayout),
		entry.CheckOut.Format(payroll.ClockLayout),
		entry.Worked(),
		entry.Overtime())
	return nil
}

type EntryDeleteCmd struct {
	ID uint `arg:"" help:"Entry ID."`
}

func (c *EntryDeleteCmd) Run(app *Context, ctx context.Context) error {
	if err := app.Timesheet.DeleteEntry(ctx, c.ID); err != nil {
		return fmt.Errorf("delete entry %d: %w", c.ID, err)
	}
	fmt.Fprintf(app.Out, "Deleted entry %d\n", c.ID)
	return nil
}

type EntryListCmd struct {
	Year  int `help:"Cycle year (defaults to the current one)."`
	Month int `help:"Cycle month, 1-12 (defaults to the current one)." `
}

func (c *EntryListCmd) Run(app *Context, ctx context.Context) error {
	year, month, err := cycleOf(c.Year, c.Month, time.Now())
	if err != nil {
		return err
	}

	sheet, err := app.Timesheet.Sheet(ctx, payroll.Cycle(year, month))
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, title(fmt.Sprintf("ciclo %s", sheet.Period)))
	if len(sheet.Entries) == 0 {
		fmt.Fprintln(app.Out, warningStyle.Render("No entries in this cycle"))
		return nil
	}

	t := newTable(4, "ID", "Data", "Entrada", "Saída", "Trabalhado", "Extra", "100%")
	for _, e := range sheet.Entries {
		t.Row(
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date.Format(payroll.DateLayout),
			e.CheckIn.Format(payroll.ClockLayout),
			e.CheckOut.Format(payroll.ClockLayout),
			e.Worked(),
			e.Overtime(),
			yesNo(e.FullOvertimeDay),
		)
	}
	fmt.Fprintln(app.Out, t)
	fmt.Fprintln(app.Out, totalStyle.Render("Total: "+sheet.Total()))
	return nil
}

// cycleOf fills missing year/month from now.
func cycleOf(year, month int, now time.Time) (int, time.Month, error) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d", payroll.ErrInvalidPeriod, month)
	}
	return year, time.Month(month), nil
}
