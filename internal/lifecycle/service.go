// Package lifecycle implements the interactive workflows that create,
// execute, modify and list test files.
//
// Every workflow absorbs user cancellation, validation failures, malformed
// rows and spell-correction failures, reporting them through the printer in
// the context. Only storage failures are returned to the caller.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/core/logging"
	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/prompt"
	"github.com/colonyops/probar/internal/report"
	"github.com/colonyops/probar/internal/spelling"
	"github.com/colonyops/probar/internal/store/csvfile"
)

const (
	msgCancelled = "Operación cancelada."
	msgNoCases   = "No se crearon casos de prueba."
	msgNoExecute = "No hay casos de prueba para ejecutar."
	msgNoModify  = "No hay casos de prueba para modificar."
	msgFarewell  = "¡Hasta pronto!"
	previewWidth = 100
)

// Renderer turns a Markdown report into terminal output.
type Renderer func(markdown string) (string, error)

// Service runs the test-case workflows.
type Service struct {
	repo      *csvfile.Repository
	prompter  prompt.Prompter
	corrector spelling.Corrector
	status    testcase.StatusParser
	defaults  config.DefaultsConfig
	preview   bool
	render    Renderer
	now       func() time.Time
	newID     func() string
	log       zerolog.Logger
}

// New creates a Service. A nil corrector disables spell correction.
func New(
	cfg *config.Config,
	repo *csvfile.Repository,
	prompter prompt.Prompter,
	corrector spelling.Corrector,
	log zerolog.Logger,
) *Service {
	style := cfg.Report.Style
	return &Service{
		repo:      repo,
		prompter:  prompter,
		corrector: corrector,
		status:    testcase.StatusParser{Strict: cfg.Status.Strict},
		defaults:  cfg.Defaults,
		preview:   cfg.Report.Preview,
		render: func(md string) (string, error) {
			return report.Preview(md, style, previewWidth)
		},
		now:   time.Now,
		newID: testcase.NewID,
		log:   log,
	}
}

// WithClock replaces the clock used to name executions.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDs replaces the test case id generator.
func (s *Service) WithIDs(newID func() string) *Service {
	s.newID = newID
	return s
}

// WithRenderer replaces the Markdown preview renderer.
func (s *Service) WithRenderer(r Renderer) *Service {
	s.render = r
	return s
}

// abortError marks a failed prompt. It never leaves the package: settle
// turns it into the cancellation message.
type abortError struct {
	err error
}

func (e abortError) Error() string { return "prompt: " + e.err.Error() }

func (e abortError) Unwrap() error { return e.err }

// settle reports a cancelled workflow and drops its error. Other errors are
// storage failures and are returned.
func (s *Service) settle(ctx context.Context, err error) error {
	var ae abortError
	if errors.As(err, &ae) {
		if !errors.Is(ae.err, prompt.ErrAborted) {
			s.log.Warn().Ctx(ctx).Err(ae.err).Msg("prompt failed")
		}
		printer.Ctx(ctx).Warnf(msgCancelled)
		return nil
	}
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("workflow failed")
	}
	return err
}

func (s *Service) input(title, initial string) (string, error) {
	v, err := s.prompter.Input(title, initial)
	if err != nil {
		return "", abortError{err}
	}
	return v, nil
}

func (s *Service) choose(title string, options []string) (string, error) {
	v, err := s.prompter.Select(title, options)
	if err != nil {
		return "", abortError{err}
	}
	return v, nil
}

func (s *Service) confirm(title string) (bool, error) {
	v, err := s.prompter.Confirm(title)
	if err != nil {
		return false, abortError{err}
	}
	return v, nil
}

// chooseStatus asks for a status until the configured parser accepts it.
func (s *Service) chooseStatus(ctx context.Context, title string) (testcase.Status, error) {
	for {
		label, err := s.choose(title, testcase.StatusLabels())
		if err != nil {
			return "", err
		}
		st, err := s.status.Parse(label)
		if err == nil {
			return st, nil
		}
		printer.Ctx(ctx).Errorf("Estado no válido: %s", label)
	}
}

// load reads path and reports missing files, unreadable headers and
// skipped rows. ok is false when the workflow cannot continue.
func (s *Service) load(ctx context.Context, path string) (cases []testcase.TestCase, ok bool, err error) {
	p := printer.Ctx(ctx)

	res, err := s.repo.Load(path)
	switch {
	case errors.Is(err, csvfile.ErrNotFound):
		p.Errorf("No se encontró el archivo '%s'.", path)
		return nil, false, nil
	case errors.Is(err, csvfile.ErrInvalidHeader):
		p.Errorf("El archivo '%s' no tiene un encabezado válido: %v", path, err)
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	for _, re := range res.RowErrors {
		p.Warnf("Se omitió la línea %d de '%s': %v", re.Line, path, re.Err)
	}
	return res.Cases, true, nil
}

// showReport renders the report at mdPath in the terminal.
func (s *Service) showReport(ctx context.Context, mdPath string) {
	md, err := os.ReadFile(mdPath)
	if err == nil {
		var out string
		out, err = s.render(string(md))
		if err == nil {
			_, _ = fmt.Fprint(printer.Ctx(ctx).Writer(), out)
			return
		}
	}
	s.log.Warn().Ctx(ctx).Err(err).Str("file", mdPath).Msg("report preview failed")
	printer.Ctx(ctx).Warnf("No se pudo mostrar el informe: %v", err)
}

func withWorkflow(ctx context.Context, name, path string) context.Context {
	ctx = logging.WithWorkflow(ctx, name)
	if path != "" {
		ctx = logging.WithFile(ctx, path)
	}
	return ctx
}
