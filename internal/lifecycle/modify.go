package lifecycle

import (
	"context"
	"fmt"
	"slices"

	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/printer"
)

// Prompt titles of the modify workflow.
const (
	TitleModifyCase  = "Selecciona un caso de prueba para modificar:"
	TitleModifyField = "¿Qué campo deseas modificar?"
	TitleNewStatus   = "Selecciona el nuevo estado:"
)

// CaseOption returns the select label of the case at 0-based index i.
func CaseOption(i int, tc testcase.TestCase) string {
	return fmt.Sprintf("%d: %s", i+1, tc.Description)
}

// FieldTitle returns the prompt title asking for a new value of field.
func FieldTitle(field testcase.Field) string {
	return fmt.Sprintf("Nuevo valor para %s:", field.Label())
}

// Modify changes one field of one case stored at path and rewrites the file
// and its paired report in place.
func (s *Service) Modify(ctx context.Context, path string) error {
	ctx = withWorkflow(ctx, "modify", path)
	return s.settle(ctx, s.modify(ctx, path))
}

func (s *Service) modify(ctx context.Context, path string) error {
	p := printer.Ctx(ctx)

	cases, ok, err := s.load(ctx, path)
	if err != nil || !ok {
		return err
	}
	if len(cases) == 0 {
		p.Warnf(msgNoModify)
		return nil
	}

	options := make([]string, len(cases))
	for i, tc := range cases {
		options[i] = CaseOption(i, tc)
	}
	for i, tc := range cases {
		p.Item(i+1, fmt.Sprintf("%s [%s]", tc.Description, tc.Status.Label()))
	}

	picked, err := s.choose(TitleModifyCase, options)
	if err != nil {
		return err
	}
	idx := slices.Index(options, picked)
	if idx < 0 {
		return abortError{fmt.Errorf("unknown case option %q", picked)}
	}

	label, err := s.choose(TitleModifyField, testcase.FieldLabels())
	if err != nil {
		return err
	}
	field, ok := testcase.ParseFieldLabel(label)
	if !ok {
		return abortError{fmt.Errorf("unknown field option %q", label)}
	}

	tc := &cases[idx]
	if field == testcase.FieldStatus {
		status, err := s.chooseStatus(ctx, TitleNewStatus)
		if err != nil {
			return err
		}
		tc.Status = status
	} else {
		value, err := s.input(FieldTitle(field), tc.Get(field))
		if err != nil {
			return err
		}
		tc.Set(field, value)
	}

	mdPath, err := s.repo.SaveWithReport(path, cases)
	if err != nil {
		return fmt.Errorf("save modified file: %w", err)
	}

	s.log.Info().Ctx(ctx).Str("id", tc.ID).Str("field", string(field)).Msg("test case modified")
	p.Success("Caso de prueba actualizado", path)
	p.Success("Informe regenerado", mdPath)
	return nil
}
