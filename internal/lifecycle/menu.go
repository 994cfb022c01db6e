package lifecycle

import (
	"context"
	"errors"

	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/printer"
)

// Prompt titles of the interactive menu.
const (
	TitleMenu     = "¿Qué deseas hacer?"
	TitleTestType = "Selecciona el tipo de prueba:"
	TitleName     = "Nombre para el archivo (opcional):"
)

// Action is an entry of the interactive menu.
type Action int

const (
	ActionCreate Action = iota
	ActionModify
	ActionExecute
	ActionList
	ActionExit
)

var actionTable = []struct {
	action Action
	label  string
}{
	{ActionCreate, "Crear casos de prueba"},
	{ActionModify, "Modificar casos de prueba"},
	{ActionExecute, "Ejecutar casos de prueba"},
	{ActionList, "Listar archivos de prueba"},
	{ActionExit, "Salir"},
}

// ActionLabels returns the menu labels in display order.
func ActionLabels() []string {
	out := make([]string, len(actionTable))
	for i, a := range actionTable {
		out[i] = a.label
	}
	return out
}

// ParseAction maps a menu label back to its action.
func ParseAction(label string) (Action, bool) {
	for _, a := range actionTable {
		if a.label == label {
			return a.action, true
		}
	}
	return 0, false
}

// Label returns the menu label of a.
func (a Action) Label() string {
	for _, e := range actionTable {
		if e.action == a {
			return e.label
		}
	}
	return ""
}

// Menu runs the interactive menu until the user exits or cancels it.
func (s *Service) Menu(ctx context.Context) error {
	p := printer.Ctx(ctx)

	for {
		label, err := s.choose(TitleMenu, ActionLabels())
		if err != nil {
			var ae abortError
			if errors.As(err, &ae) {
				p.Successf(msgFarewell)
				return nil
			}
			return err
		}

		action, _ := ParseAction(label)
		if action == ActionExit {
			p.Successf(msgFarewell)
			return nil
		}

		if err := s.dispatch(ctx, action); err != nil {
			return err
		}
	}
}

func (s *Service) dispatch(ctx context.Context, action Action) error {
	switch action {
	case ActionCreate:
		ctx = withWorkflow(ctx, "create", "")
		opts, err := s.askCreateOptions()
		if err != nil {
			return s.settle(ctx, err)
		}
		return s.Create(ctx, opts)
	case ActionModify:
		path, ok, err := s.SelectFile(ctx)
		if err != nil || !ok {
			return err
		}
		return s.Modify(ctx, path)
	case ActionExecute:
		path, ok, err := s.SelectFile(ctx)
		if err != nil || !ok {
			return err
		}
		return s.Execute(ctx, path)
	case ActionList:
		return s.List(ctx)
	}
	return nil
}

func (s *Service) askCreateOptions() (CreateOptions, error) {
	types := testcase.TestTypes()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.String()
	}

	testType, err := s.choose(TitleTestType, labels)
	if err != nil {
		return CreateOptions{}, err
	}
	name, err := s.input(TitleName, "")
	if err != nil {
		return CreateOptions{}, err
	}
	return CreateOptions{TestType: testType, Name: name}, nil
}
