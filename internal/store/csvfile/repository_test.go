package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/core/testcase"
)

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	ws := t.TempDir()
	repo := New(Dirs{
		Definitions: filepath.Join(ws, "definitions"),
		Executions:  filepath.Join(ws, "executions"),
		Legacy:      filepath.Join(ws, "tests"),
	}, zerolog.Nop())
	return repo, ws
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sampleCases() []testcase.TestCase {
	return []testcase.TestCase{
		{
			ID:            "a1b2c3d4",
			Description:   "Iniciar sesión con usuario válido",
			Status:        testcase.StatusValidated,
			Observations:  "ok, sin errores",
			Evidence:      "https://example.com/1.png",
			Version:       "1.0.0",
			TicketNumbers: "QA-1",
		},
		{
			ID:            "e5f6a7b8",
			Description:   "Texto con \"comillas\"\ny salto de línea",
			Status:        testcase.StatusPending,
			Version:       "1.0.0",
			TicketNumbers: "QA-1",
		},
	}
}

func TestFromConfig(t *testing.T) {
	ws := t.TempDir()
	cfg, err := config.Load("", ws)
	require.NoError(t, err)

	repo := FromConfig(cfg, zerolog.Nop())

	assert.Equal(t, filepath.Join(ws, "definitions"), repo.Dir(Definitions))
	assert.Equal(t, filepath.Join(ws, "executions"), repo.Dir(Executions))
}

func TestEnsureNamespaces(t *testing.T) {
	repo, ws := newTestRepo(t)

	require.NoError(t, repo.EnsureNamespaces())
	require.NoError(t, repo.EnsureNamespaces())

	assert.DirExists(t, filepath.Join(ws, "definitions"))
	assert.DirExists(t, filepath.Join(ws, "executions"))
	assert.NoDirExists(t, filepath.Join(ws, "tests"))
}

func TestEnumerate_CreatesMissingDirectory(t *testing.T) {
	repo, ws := newTestRepo(t)

	defs, err := repo.Enumerate(Definitions)
	require.NoError(t, err)
	assert.Empty(t, defs)
	assert.DirExists(t, filepath.Join(ws, "definitions"))

	execs, err := repo.Enumerate(Executions)
	require.NoError(t, err)
	assert.Empty(t, execs)
}

func TestEnumerate_Ordering(t *testing.T) {
	repo, ws := newTestRepo(t)

	for _, name := range []string{"smoke.csv", "functional-pago.csv", "regression.csv", "notes.txt"} {
		writeFile(t, filepath.Join(ws, "definitions", name), "")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "definitions", "nested.csv"), 0o755))
	for _, name := range []string{
		"smoke-20240101_090000.csv",
		"smoke-20240301_090000.csv",
		"smoke-20240301_090000.md",
		"regression-20240201_090000.csv",
	} {
		writeFile(t, filepath.Join(ws, "executions", name), "")
	}
	writeFile(t, filepath.Join(ws, "tests", "smoke-20231201_090000.csv"), "")

	defs, err := repo.Enumerate(Definitions)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(ws, "definitions", "functional-pago.csv"),
		filepath.Join(ws, "definitions", "regression.csv"),
		filepath.Join(ws, "definitions", "smoke.csv"),
	}, defs)

	execs, err := repo.Enumerate(Executions)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(ws, "executions", "smoke-20240301_090000.csv"),
		filepath.Join(ws, "executions", "smoke-20240101_090000.csv"),
		filepath.Join(ws, "tests", "smoke-20231201_090000.csv"),
		filepath.Join(ws, "executions", "regression-20240201_090000.csv"),
	}, execs)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "definitions", "smoke-login.csv")
	cases := sampleCases()

	require.NoError(t, repo.Save(path, cases))
	assert.NoFileExists(t, path+".tmp")

	res, err := repo.Load(path)
	require.NoError(t, err)
	assert.Empty(t, res.RowErrors)
	if diff := cmp.Diff(cases, res.Cases); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	firstLine, _, _ := strings.Cut(string(data), "\n")
	assert.Equal(t, "id,description,status,observations,evidence,version,ticket_numbers", firstLine)
	assert.Contains(t, string(data), ",Validated,")
}

func TestSave_EmptyCollectionWritesHeader(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "definitions", "smoke.csv")

	require.NoError(t, repo.Save(path, nil))

	res, err := repo.Load(path)
	require.NoError(t, err)
	assert.Empty(t, res.Cases)
	assert.Empty(t, res.RowErrors)
}

func TestLoad_MissingFile(t *testing.T) {
	repo, ws := newTestRepo(t)

	_, err := repo.Load(filepath.Join(ws, "definitions", "nope.csv"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "executions", "smoke-20240101_090000.csv")
	writeFile(t, path, strings.Join([]string{
		"id,description,status,observations,evidence,version,ticket_numbers",
		"aaaa,uno,Validated,,,1.0,T-1",
		"bbbb,dos,Pending",
		"cccc,tres,Unknown,,,1.0,T-1",
		"dddd,cuatro,rejected,,,1.0,T-1",
		"eeee,cinco,⏭️ Omitido,,,1.0,T-1",
		"",
	}, "\n"))

	res, err := repo.Load(path)
	require.NoError(t, err)

	require.Len(t, res.Cases, 3)
	assert.Equal(t, "aaaa", res.Cases[0].ID)
	assert.Equal(t, testcase.StatusRejected, res.Cases[1].Status)
	assert.Equal(t, testcase.StatusSkipped, res.Cases[2].Status)

	require.Len(t, res.RowErrors, 2)
	assert.Equal(t, 3, res.RowErrors[0].Line)
	assert.Equal(t, 4, res.RowErrors[1].Line)
	assert.ErrorIs(t, res.RowErrors[1], testcase.ErrUnknownStatus)
}

func TestLoad_SkipsRowWithSyntaxError(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "definitions", "smoke.csv")
	writeFile(t, path, strings.Join([]string{
		"id,description,status,observations,evidence,version,ticket_numbers",
		`aaaa,"bad "quote",Pending,,,1.0,`,
		"bbbb,ok,Pending,,,1.0,",
		"",
	}, "\n"))

	res, err := repo.Load(path)
	require.NoError(t, err)

	require.Len(t, res.Cases, 1)
	assert.Equal(t, "bbbb", res.Cases[0].ID)
	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 2, res.RowErrors[0].Line)
}

func TestLoad_ColumnsByName(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "definitions", "smoke.csv")
	writeFile(t, path, "\ufeffstatus,id,ticket_numbers,version,evidence,observations,description\n"+
		"Blocked,aaaa,T-9,2.0,ev,obs,desc\n")

	res, err := repo.Load(path)
	require.NoError(t, err)

	want := []testcase.TestCase{{
		ID:            "aaaa",
		Description:   "desc",
		Status:        testcase.StatusBlocked,
		Observations:  "obs",
		Evidence:      "ev",
		Version:       "2.0",
		TicketNumbers: "T-9",
	}}
	if diff := cmp.Diff(want, res.Cases); diff != "" {
		t.Errorf("cases mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingHeaderColumn(t *testing.T) {
	repo, ws := newTestRepo(t)
	path := filepath.Join(ws, "definitions", "smoke.csv")
	writeFile(t, path, "id,description,status\naaaa,desc,Pending\n")

	_, err := repo.Load(path)
	require.ErrorIs(t, err, ErrInvalidHeader)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "observations")
}

func TestExecutionPaths(t *testing.T) {
	repo, ws := newTestRepo(t)
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)

	csvPath, mdPath := repo.ExecutionPaths("smoke-login", now)
	assert.Equal(t, filepath.Join(ws, "executions", "smoke-login-20240305_140709.csv"), csvPath)
	assert.Equal(t, filepath.Join(ws, "executions", "smoke-login-20240305_140709.md"), mdPath)

	writeFile(t, csvPath, "")
	csv2, md2 := repo.ExecutionPaths("smoke-login", now)
	assert.Equal(t, filepath.Join(ws, "executions", "smoke-login-20240305_140709_2.csv"), csv2)
	assert.Equal(t, filepath.Join(ws, "executions", "smoke-login-20240305_140709_2.md"), md2)
	assert.Equal(t, "smoke-login", StripTimestamp(BaseName(csv2)))

	writeFile(t, md2, "")
	csv3, _ := repo.ExecutionPaths("smoke-login", now)
	assert.Equal(t, filepath.Join(ws, "executions", "smoke-login-20240305_140709_3.csv"), csv3)
}

func TestNamespaceOf(t *testing.T) {
	repo, ws := newTestRepo(t)

	assert.Equal(t, Definitions, repo.NamespaceOf(filepath.Join(ws, "definitions", "smoke.csv")))
	assert.Equal(t, Executions, repo.NamespaceOf(filepath.Join(ws, "executions", "smoke.csv")))
	assert.Equal(t, Executions, repo.NamespaceOf(filepath.Join(ws, "tests", "smoke.csv")))
	assert.Equal(t, Executions, repo.NamespaceOf(filepath.Join(ws, "elsewhere", "smoke-20240101_000000.csv")))
	assert.Equal(t, Definitions, repo.NamespaceOf(filepath.Join(ws, "elsewhere", "smoke.csv")))
}

func TestRenderReport(t *testing.T) {
	repo, ws := newTestRepo(t)
	repo.WithClock(func() time.Time {
		return time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	})
	path := filepath.Join(ws, "executions", "smoke-20240305_140709.md")

	require.NoError(t, repo.RenderReport(path, sampleCases(), "smoke-20240305_140709"))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, repo.RenderReport(path, sampleCases(), "smoke-20240305_140709"))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(string(first), "# Informe de Pruebas: smoke-20240305_140709\n"))
	assert.Contains(t, string(first), "Fecha de ejecución: 2024-03-05 14:07:09")
	assert.Contains(t, string(first), "- Total de casos: 2")
}

func TestSaveWithReport(t *testing.T) {
	repo, ws := newTestRepo(t)
	csvPath := filepath.Join(ws, "definitions", "smoke-login.csv")

	mdPath, err := repo.SaveWithReport(csvPath, sampleCases())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(ws, "definitions", "smoke-login.md"), mdPath)
	assert.FileExists(t, csvPath)
	data, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Informe de Pruebas: smoke-login")
}

func TestSave_UnwritableDirectory(t *testing.T) {
	repo, ws := newTestRepo(t)
	blocker := filepath.Join(ws, "blocker")
	writeFile(t, blocker, "")

	err := repo.Save(filepath.Join(blocker, "smoke.csv"), sampleCases())
	require.Error(t, err)
}
