// Package csvfile stores test cases as CSV files inside the definitions and
// executions namespaces of a workspace, each with a paired Markdown report.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/internal/report"
)

var (
	// ErrNotFound is returned by Load when the file does not exist.
	ErrNotFound = errors.New("test file not found")
	// ErrInvalidHeader is returned by Load when the header row is unreadable
	// or lacks a required column.
	ErrInvalidHeader = errors.New("invalid header")
)

// Namespace is a directory dedicated to one file category.
type Namespace string

const (
	Definitions Namespace = "definitions"
	Executions  Namespace = "executions"
)

// Header is the CSV header row, in column order.
var Header = []string{
	"id",
	"description",
	"status",
	"observations",
	"evidence",
	"version",
	"ticket_numbers",
}

// Dirs locates the namespace directories. Legacy is an optional extra
// directory scanned for executions; it is never created.
type Dirs struct {
	Definitions string
	Executions  string
	Legacy      string
}

// Repository reads and writes test files.
type Repository struct {
	dirs Dirs
	now  func() time.Time
	log  zerolog.Logger
}

// New creates a Repository over dirs.
func New(dirs Dirs, log zerolog.Logger) *Repository {
	return &Repository{dirs: dirs, now: time.Now, log: log}
}

// FromConfig creates a Repository using the workspace directories of cfg.
func FromConfig(cfg *config.Config, log zerolog.Logger) *Repository {
	return New(Dirs{
		Definitions: cfg.DefinitionsDir(),
		Executions:  cfg.ExecutionsDir(),
		Legacy:      cfg.LegacyExecutionsDir(),
	}, log)
}

// WithClock replaces the clock used for report timestamps.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Dir returns the directory of ns.
func (r *Repository) Dir(ns Namespace) string {
	if ns == Executions {
		return r.dirs.Executions
	}
	return r.dirs.Definitions
}

// EnsureNamespaces creates both namespace directories.
func (r *Repository) EnsureNamespaces() error {
	for _, ns := range []Namespace{Definitions, Executions} {
		if err := os.MkdirAll(r.Dir(ns), 0o755); err != nil {
			return fmt.Errorf("create %s directory: %w", ns, err)
		}
	}
	return nil
}

// Enumerate lists the CSV files directly inside ns, creating the directory
// when absent. Definitions sort ascending; executions sort descending by
// file name so the newest timestamp comes first, and include files from the
// legacy directory when it exists.
func (r *Repository) Enumerate(ns Namespace) ([]string, error) {
	dir := r.Dir(ns)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s directory: %w", ns, err)
	}

	paths, err := globCSV(dir)
	if err != nil {
		return nil, err
	}

	if ns == Executions && r.dirs.Legacy != "" {
		info, err := os.Stat(r.dirs.Legacy)
		if err == nil && info.IsDir() {
			legacy, err := globCSV(r.dirs.Legacy)
			if err != nil {
				return nil, err
			}
			paths = append(paths, legacy...)
		}
	}

	if ns == Executions {
		slices.SortFunc(paths, func(a, b string) int {
			if c := compareStrings(filepath.Base(b), filepath.Base(a)); c != 0 {
				return c
			}
			return compareStrings(b, a)
		})
	} else {
		slices.Sort(paths)
	}

	return paths, nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func globCSV(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.csv", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(dir, m)
	}
	return out, nil
}

// NamespaceOf reports which namespace path belongs to. Files inside the
// executions or legacy directory, or whose name carries an execution
// timestamp, are executions.
func (r *Repository) NamespaceOf(path string) Namespace {
	dir := absOrClean(filepath.Dir(path))
	if dir == absOrClean(r.dirs.Executions) {
		return Executions
	}
	if r.dirs.Legacy != "" && dir == absOrClean(r.dirs.Legacy) {
		return Executions
	}
	if dir == absOrClean(r.dirs.Definitions) {
		return Definitions
	}
	if HasTimestamp(BaseName(path)) {
		return Executions
	}
	return Definitions
}

func absOrClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// DefinitionPath returns the CSV path of the definition named base.
func (r *Repository) DefinitionPath(base string) string {
	return filepath.Join(r.dirs.Definitions, base+".csv")
}

// ExecutionPaths returns the CSV and Markdown paths of a new execution of
// base taken at now. When a file with that name already exists a "_<n>"
// counter is appended so earlier executions are never overwritten.
func (r *Repository) ExecutionPaths(base string, now time.Time) (csvPath, mdPath string) {
	stem := base + "-" + now.Format(TimestampLayout)
	name := stem
	for n := 2; ; n++ {
		csvPath = filepath.Join(r.dirs.Executions, name+".csv")
		mdPath = filepath.Join(r.dirs.Executions, name+".md")
		if !exists(csvPath) && !exists(mdPath) {
			return csvPath, mdPath
		}
		name = stem + "_" + strconv.Itoa(n)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RowError describes a CSV row that could not be loaded.
type RowError struct {
	Line int // 1-based line in the file
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of Load. Rows that failed to parse are absent
// from Cases and listed in RowErrors.
type LoadResult struct {
	Cases     []testcase.TestCase
	RowErrors []RowError
}

// Load reads the test cases stored at path. A missing file returns
// ErrNotFound; malformed rows are skipped and reported in the result.
func (r *Repository) Load(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return LoadResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	res, err := decode(f)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	for _, re := range res.RowErrors {
		r.log.Warn().Str("file", path).Int("line", re.Line).Err(re.Err).Msg("skipping malformed row")
	}

	return res, nil
}

func decode(rd io.Reader) (LoadResult, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return LoadResult{}, nil
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return LoadResult{}, err
	}

	var res LoadResult
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				res.RowErrors = append(res.RowErrors, RowError{Line: pe.StartLine, Err: pe.Err})
				continue
			}
			return LoadResult{}, err
		}
		line, _ := cr.FieldPos(0)

		if len(record) != len(header) {
			res.RowErrors = append(res.RowErrors, RowError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, got %d", len(header), len(record)),
			})
			continue
		}

		tc, err := parseRecord(record, columns)
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: err})
			continue
		}
		res.Cases = append(res.Cases, tc)
	}

	return res, nil
}

// mapColumns returns the record index of each header column.
func mapColumns(header []string) ([]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make([]int, len(Header))
	for i, name := range Header {
		idx := slices.Index(header, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidHeader, name)
		}
		columns[i] = idx
	}
	return columns, nil
}

func parseRecord(record []string, columns []int) (testcase.TestCase, error) {
	field := func(i int) string { return record[columns[i]] }

	status, err := testcase.ParseName(field(2))
	if err != nil {
		return testcase.TestCase{}, err
	}

	return testcase.TestCase{
		ID:            field(0),
		Description:   field(1),
		Status:        status,
		Observations:  field(3),
		Evidence:      field(4),
		Version:       field(5),
		TicketNumbers: field(6),
	}, nil
}

// Save writes cases to path as CSV with a header row, replacing the file
// atomically.
func (r *Repository) Save(path string, cases []testcase.TestCase) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(Header)
	for _, tc := range cases {
		_ = w.Write([]string{
			tc.ID,
			tc.Description,
			string(tc.Status),
			tc.Observations,
			tc.Evidence,
			tc.Version,
			tc.TicketNumbers,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	r.log.Debug().Str("file", path).Int("cases", len(cases)).Msg("saved test file")
	return nil
}

// RenderReport writes the Markdown report for cases to path, replacing the
// file atomically.
func (r *Repository) RenderReport(path string, cases []testcase.TestCase, title string) error {
	md, err := report.Render(title, cases, r.now())
	if err != nil {
		return err
	}
	if err := writeAtomic(path, []byte(md)); err != nil {
		return err
	}
	r.log.Debug().Str("file", path).Msg("rendered report")
	return nil
}

// SaveWithReport saves cases to csvPath and regenerates the paired report,
// titled with the file's base name.
func (r *Repository) SaveWithReport(csvPath string, cases []testcase.TestCase) (mdPath string, err error) {
	if err := r.Save(csvPath, cases); err != nil {
		return "", err
	}
	mdPath = ReportPath(csvPath)
	if err := r.RenderReport(mdPath, cases, BaseName(csvPath)); err != nil {
		return "", err
	}
	return mdPath, nil
}

// writeAtomic writes data to a temporary sibling of path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
