package lifecycle

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/core/validate"
	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/spelling"
)

// Prompt titles of the create workflow.
const (
	TitleVersion     = "Versión de prueba:"
	TitleTickets     = "Número(s) de ticket (opcional):"
	TitleDescription = "Descripción (o escribe 'FIN' para terminar):"
	TitleCorrect     = "¿Deseas corregir la ortografía de las descripciones?"
	TitleExecuteNow  = "¿Deseas ejecutar estos casos de prueba ahora?"
)

// finSentinel ends description entry.
const finSentinel = "FIN"

// CreateOptions names the definition to create.
type CreateOptions struct {
	TestType string
	Name     string
}

// Validate checks the test type and the optional name.
func (o CreateOptions) Validate() error {
	return criterio.ValidateStruct(
		validate.TestTypeField("test_type", o.TestType),
		validate.FileNameField("name", o.Name),
	)
}

// IsFinished reports whether a description entry ends the batch.
func IsFinished(description string) bool {
	return strings.EqualFold(strings.TrimSpace(description), finSentinel)
}

// Create authors a new definition file and optionally executes it.
func (s *Service) Create(ctx context.Context, opts CreateOptions) error {
	ctx = withWorkflow(ctx, "create", "")
	return s.settle(ctx, s.create(ctx, opts))
}

func (s *Service) create(ctx context.Context, opts CreateOptions) error {
	p := printer.Ctx(ctx)

	if err := opts.Validate(); err != nil {
		s.log.Debug().Ctx(ctx).Err(err).Msg("invalid create options")
		p.Errorf("No se puede crear la definición: %v", err)
		return nil
	}
	testType := testcase.TestType(opts.TestType)

	version, err := s.input(TitleVersion, s.defaults.Version)
	if err != nil {
		return err
	}
	tickets, err := s.input(TitleTickets, "")
	if err != nil {
		return err
	}
	batch := testcase.Batch{
		Version:       strings.TrimSpace(version),
		TicketNumbers: strings.TrimSpace(tickets),
	}

	base := testcase.DefinitionBaseName(testType, opts.Name)
	path := s.repo.DefinitionPath(base)
	ctx = withWorkflow(ctx, "create", path)

	if _, err := os.Stat(path); err == nil {
		overwrite, err := s.confirm(fmt.Sprintf("Ya existe un archivo con el nombre '%s'. ¿Deseas sobrescribirlo?", base+".csv"))
		if err != nil {
			return err
		}
		if !overwrite {
			p.Warnf(msgCancelled)
			return nil
		}
	}

	cases, err := s.collectDescriptions(ctx, batch)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		p.Warnf(msgNoCases)
		return nil
	}

	if spelling.Enabled(s.corrector) {
		correct, err := s.confirm(TitleCorrect)
		if err != nil {
			return err
		}
		if correct {
			s.correctDescriptions(ctx, cases)
		}
	}

	if err := s.repo.Save(path, cases); err != nil {
		return fmt.Errorf("save definition: %w", err)
	}
	s.log.Info().Ctx(ctx).Int("cases", len(cases)).Msg("definition created")
	p.Success("Definición de casos de prueba guardada", path)

	runNow, err := s.confirm(TitleExecuteNow)
	if err != nil {
		return err
	}
	if !runNow {
		p.Infof("Puedes ejecutar estos casos de prueba más tarde con 'Ejecutar casos de prueba'.")
		return nil
	}

	return s.executeDefinition(withWorkflow(ctx, "execute", path), path)
}

// collectDescriptions prompts for descriptions until the FIN sentinel.
// Blank entries are asked again.
func (s *Service) collectDescriptions(ctx context.Context, batch testcase.Batch) ([]testcase.TestCase, error) {
	p := printer.Ctx(ctx)
	p.Infof("Ingresa los casos de prueba. Escribe '%s' en la descripción para terminar.", finSentinel)

	var cases []testcase.TestCase
	for {
		p.Section(fmt.Sprintf("Caso de prueba #%d", len(cases)+1))

		desc, err := s.input(TitleDescription, "")
		if err != nil {
			return nil, err
		}
		if IsFinished(desc) {
			return cases, nil
		}
		if strings.TrimSpace(desc) == "" {
			p.Warnf("La descripción no puede estar vacía.")
			continue
		}

		cases = append(cases, batch.New(s.newID(), desc))
	}
}

// correctDescriptions replaces only the descriptions the corrector changed.
func (s *Service) correctDescriptions(ctx context.Context, cases []testcase.TestCase) {
	p := printer.Ctx(ctx)
	p.Infof("Corrigiendo ortografía...")

	changed := 0
	for i := range cases {
		original := cases[i].Description
		corrected := s.corrector.Correct(ctx, original)
		if corrected == original {
			continue
		}
		cases[i].Description = corrected
		changed++
		p.Successf("Descripción corregida: %s -> %s", original, corrected)
	}

	s.log.Debug().Ctx(ctx).Int("changed", changed).Msg("descriptions corrected")
}
