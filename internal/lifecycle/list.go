package lifecycle

import (
	"context"
	"fmt"

	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/store/csvfile"
)

// Listing holds the files of both namespaces.
type Listing struct {
	Definitions []string `json:"definitions"`
	Executions  []string `json:"executions"`
}

var namespaceTable = []struct {
	ns      csvfile.Namespace
	kind    string
	heading string
	empty   string
}{
	{csvfile.Definitions, "Definición", "Archivos de definición disponibles:", "No hay archivos de definición disponibles."},
	{csvfile.Executions, "Ejecución", "Archivos de ejecución disponibles:", "No hay archivos de ejecución disponibles."},
}

func namespaceKinds() []string {
	out := make([]string, len(namespaceTable))
	for i, n := range namespaceTable {
		out[i] = n.kind
	}
	return out
}

func parseNamespaceKind(kind string) (csvfile.Namespace, bool) {
	for _, n := range namespaceTable {
		if n.kind == kind {
			return n.ns, true
		}
	}
	return "", false
}

func emptyMessage(ns csvfile.Namespace) string {
	for _, n := range namespaceTable {
		if n.ns == ns {
			return n.empty
		}
	}
	return ""
}

// Listing enumerates both namespaces.
func (s *Service) Listing(ctx context.Context) (Listing, error) {
	defs, err := s.repo.Enumerate(csvfile.Definitions)
	if err != nil {
		return Listing{}, err
	}
	execs, err := s.repo.Enumerate(csvfile.Executions)
	if err != nil {
		return Listing{}, err
	}
	s.log.Debug().Ctx(ctx).Int("definitions", len(defs)).Int("executions", len(execs)).Msg("listed test files")
	return Listing{Definitions: defs, Executions: execs}, nil
}

// List prints both namespaces as numbered groups.
func (s *Service) List(ctx context.Context) error {
	ctx = withWorkflow(ctx, "list", "")

	listing, err := s.Listing(ctx)
	if err != nil {
		return s.settle(ctx, err)
	}

	p := printer.Ctx(ctx)
	groups := map[csvfile.Namespace][]string{
		csvfile.Definitions: listing.Definitions,
		csvfile.Executions:  listing.Executions,
	}
	for _, n := range namespaceTable {
		files := groups[n.ns]
		if len(files) == 0 {
			p.Warnf("%s", n.empty)
			continue
		}
		p.Section(n.heading)
		for i, f := range files {
			p.Item(i+1, f)
		}
	}
	return nil
}

// SelectFile asks for a file kind and then a file of that kind. ok is false
// when the user cancelled or no file is available.
func (s *Service) SelectFile(ctx context.Context) (path string, ok bool, err error) {
	path, ok, err = s.selectFile(ctx)
	return path, ok, s.settle(ctx, err)
}

func (s *Service) selectFile(ctx context.Context) (string, bool, error) {
	kind, err := s.choose("¿Qué tipo de archivo deseas seleccionar?", namespaceKinds())
	if err != nil {
		return "", false, err
	}
	ns, ok := parseNamespaceKind(kind)
	if !ok {
		return "", false, abortError{fmt.Errorf("unknown file kind %q", kind)}
	}
	return s.pickFile(ctx, ns)
}

// pickFile asks the user for one file of ns.
func (s *Service) pickFile(ctx context.Context, ns csvfile.Namespace) (string, bool, error) {
	files, err := s.repo.Enumerate(ns)
	if err != nil {
		return "", false, err
	}
	if len(files) == 0 {
		printer.Ctx(ctx).Warnf("%s", emptyMessage(ns))
		return "", false, nil
	}

	path, err := s.choose("Selecciona un archivo:", files)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}
