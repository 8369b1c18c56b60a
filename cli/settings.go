package cli

import (
	"context"
	"fmt"

	"ponto/timesheet"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(app *Context, ctx context.Context) error {
	settings, err := app.Timesheet.Settings(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		fmt.Fprintln(app.Out, warningStyle.Render("No shift config saved; reports will carry zero amounts"))
		return nil
	}

	t := newTable(-1, "Campo", "Valor")
	t.Row("Valor hora", settings.HourlyRate.StringFixed(2))
	t.Row("Periculosidade", yesNo(settings.HazardPay))
	t.Row("Adicional noturno", fmt.Sprintf("%d%%", settings.NightPremiumPercent))
	t.Row("Turno", settings.ShiftStart.String()+" - "+settings.ShiftEnd.String())
	fmt.Fprintln(app.Out, t)
	return nil
}

type ConfigSetCmd struct {
	Rate         string `help:"Hourly rate." required:""`
	Hazard       bool   `help:"Enable the 30% hazard premium."`
	NightPremium int    `help:"Night premium percentage (0-100)." default:"0"`
	Start        string `help:"Shift start (HH:MM)." required:""`
	End          string `help:"Shift end (HH:MM)." required:""`
}

func (c *ConfigSetCmd) Run(app *Context, ctx context.Context) error {
	settings, err := timesheet.ParseSettings(c.Rate, c.Hazard, c.NightPremium, c.Start, c.End)
	if err != nil {
		return err
	}
	if err := app.Timesheet.SaveSettings(ctx, settings); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, "Shift config saved")
	return nil
}
