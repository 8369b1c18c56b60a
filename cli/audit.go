package cli

import (
	"context"
	"fmt"

	"ponto/audit"
	"ponto/logger"
)

type AuditCmd struct {
	Path   string `arg:"" help:"Payslip document (PDF)." type:"existingfile"`
	Target string `arg:"" help:"Reference month (YYYY-MM)."`
}

func (c *AuditCmd) Run(app *Context, ctx context.Context) error {
	svc, err := newAuditService(ctx, app)
	if err != nil {
		return err
	}

	result, err := svc.Run(ctx, c.Path, c.Target)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, title(fmt.Sprintf("auditoria %s (%d registros)", c.Target, len(result.Records))))
	fmt.Fprintln(app.Out, result.Narrative)
	return nil
}

// newAuditService builds the audit service; without an API key it is
// returned unconfigured.
func newAuditService(ctx context.Context, app *Context) (*audit.Service, error) {
	if app.Config.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; audits are disabled")
		return audit.NewService(app.Timesheet, nil), nil
	}

	gen, err := audit.NewGemini(ctx, app.Config.GeminiAPIKey, app.Config.GeminiModel)
	if err != nil {
		return nil, err
	}
	return audit.NewService(app.Timesheet, gen), nil
}
