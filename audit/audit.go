// Package audit compares stored time entries with a payslip document through
// an external text-generation model.
package audit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"ponto/logger"
	"ponto/payroll"
)

var ErrNotConfigured = errors.New("audit generator not configured")

// Document is an uploaded payslip as the generator refers to it.
type Document struct {
	Name     string
	URI      string
	MIMEType string
}

// Generator uploads documents and produces free text about them.
type Generator interface {
	Upload(ctx context.Context, path string) (Document, error)
	Generate(ctx context.Context, doc Document, prompt string) (string, error)
}

// RecordSource supplies the audit hand-off for a period.
type RecordSource interface {
	AuditRecords(ctx context.Context, p payroll.Period) ([]payroll.AuditRecord, error)
}

type Result struct {
	Period    payroll.Period
	Records   []payroll.AuditRecord
	Narrative string
}

type Service struct {
	records   RecordSource
	generator Generator
}

// NewService returns an audit service. A nil generator makes every Run fail
// with ErrNotConfigured.
func NewService(records RecordSource, generator Generator) *Service {
	return &Service{records: records, generator: generator}
}

func (s *Service) Configured() bool {
	return s.generator != nil
}

// Run audits the payslip at path against the entries of target month
// ("YYYY-MM"). The narrative is returned as produced.
func (s *Service) Run(ctx context.Context, path, target string) (*Result, error) {
	if s.generator == nil {
		return nil, ErrNotConfigured
	}

	p, err := payroll.ParseMonth(target)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("payslip document: %w", err)
	}

	var (
		records []payroll.AuditRecord
		doc     Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.AuditRecords(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		doc, err = s.generator.Upload(gctx, path)
		if err != nil {
			return fmt.Errorf("upload payslip: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prompt, err := BuildPrompt(records)
	if err != nil {
		return nil, err
	}

	logger.Info("Running payslip audit", "period", p.String(), "records", len(records), "document", doc.Name)
	text, err := s.generator.Generate(ctx, doc, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate audit: %w", err)
	}

	return &Result{Period: p, Records: records, Narrative: text}, nil
}
