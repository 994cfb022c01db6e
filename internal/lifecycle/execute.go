package lifecycle

import (
	"context"
	"fmt"
	"slices"

	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/store/csvfile"
)

// Prompt titles of the execute workflow.
const (
	TitleResult       = "Selecciona el resultado de la ejecución:"
	TitleObservations = "Observaciones (opcional):"
	TitleEvidence     = "Evidencia (ruta o URL, opcional):"
	TitleRerun        = "¿Cómo deseas continuar?"
)

type rerunChoice int

const (
	rerunContinue rerunChoice = iota
	rerunPickDefinition
)

var rerunTable = []struct {
	choice rerunChoice
	label  string
}{
	{rerunContinue, "Continuar con este archivo"},
	{rerunPickDefinition, "Seleccionar una definición base"},
}

func rerunLabels() []string {
	out := make([]string, len(rerunTable))
	for i, r := range rerunTable {
		out[i] = r.label
	}
	return out
}

func parseRerun(label string) (rerunChoice, bool) {
	for _, r := range rerunTable {
		if r.label == label {
			return r.choice, true
		}
	}
	return 0, false
}

// Execute runs the cases stored at path and writes a new execution. When
// path is itself an execution the user may continue from it or pick a
// definition instead.
func (s *Service) Execute(ctx context.Context, path string) error {
	ctx = withWorkflow(ctx, "execute", path)
	return s.settle(ctx, s.execute(ctx, path))
}

// ExecuteDefinition runs the definition at path.
func (s *Service) ExecuteDefinition(ctx context.Context, path string) error {
	ctx = withWorkflow(ctx, "execute", path)
	return s.settle(ctx, s.executeDefinition(ctx, path))
}

func (s *Service) execute(ctx context.Context, path string) error {
	if s.repo.NamespaceOf(path) != csvfile.Executions {
		return s.executeDefinition(ctx, path)
	}

	p := printer.Ctx(ctx)
	p.Warnf("NOTA: Estás ejecutando a partir de un archivo de ejecución anterior, no de una definición base.")

	label, err := s.choose(TitleRerun, rerunLabels())
	if err != nil {
		return err
	}
	choice, _ := parseRerun(label)

	switch choice {
	case rerunPickDefinition:
		def, ok, err := s.pickFile(ctx, csvfile.Definitions)
		if err != nil || !ok {
			return err
		}
		return s.executeDefinition(withWorkflow(ctx, "execute", def), def)
	default:
		return s.run(ctx, path, csvfile.StripTimestamp(csvfile.BaseName(path)))
	}
}

func (s *Service) executeDefinition(ctx context.Context, path string) error {
	return s.run(ctx, path, csvfile.BaseName(path))
}

// run prompts for the outcome of every case loaded from path and saves the
// result as a new execution of base.
func (s *Service) run(ctx context.Context, path, base string) error {
	p := printer.Ctx(ctx)

	loaded, ok, err := s.load(ctx, path)
	if err != nil || !ok {
		return err
	}
	if len(loaded) == 0 {
		p.Warnf(msgNoExecute)
		return nil
	}

	cases := slices.Clone(loaded)
	for i := range cases {
		tc := &cases[i]

		p.Section(fmt.Sprintf("Caso de prueba %d de %d", i+1, len(cases)))
		p.Infof("ID: %s", tc.ID)
		p.Infof("Descripción: %s", tc.Description)
		p.Infof("Estado actual: %s", tc.Status.Label())

		status, err := s.chooseStatus(ctx, TitleResult)
		if err != nil {
			return err
		}
		observations, err := s.input(TitleObservations, tc.Observations)
		if err != nil {
			return err
		}
		evidence, err := s.input(TitleEvidence, tc.Evidence)
		if err != nil {
			return err
		}

		tc.Status = status
		tc.Observations = observations
		tc.Evidence = evidence
	}

	return s.saveExecution(ctx, base, cases)
}

func (s *Service) saveExecution(ctx context.Context, base string, cases []testcase.TestCase) error {
	p := printer.Ctx(ctx)

	csvPath, mdPath := s.repo.ExecutionPaths(base, s.now())
	if err := s.repo.Save(csvPath, cases); err != nil {
		return fmt.Errorf("save execution: %w", err)
	}
	if err := s.repo.RenderReport(mdPath, cases, csvfile.BaseName(csvPath)); err != nil {
		return fmt.Errorf("save execution report: %w", err)
	}

	s.log.Info().Ctx(ctx).Str("execution", csvPath).Int("cases", len(cases)).Msg("execution saved")
	p.Success("Resultados guardados", csvPath)
	p.Success("Informe generado", mdPath)

	if s.preview {
		s.showReport(ctx, mdPath)
	}
	return nil
}
