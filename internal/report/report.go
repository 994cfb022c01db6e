// Package report renders the Markdown summary of a set of test cases.
package report

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/probar/internal/core/testcase"
	"github.com/colonyops/probar/pkg/tmpl"
)

// TimestampLayout is the layout of the generation date line.
const TimestampLayout = "2006-01-02 15:04:05"

//go:embed report.md.tmpl
var reportTemplate string

var compiled = tmpl.MustParse("report", reportTemplate)

// Count is the number of cases in one status.
type Count struct {
	Status testcase.Status
	Label  string
	Count  int
}

// Summary holds the per-status counters of a report.
type Summary struct {
	Total  int
	Counts []Count
}

// Summarize counts cases per status in report order. The counts always sum
// to Total because every case carries one of the five statuses; unknown
// statuses are counted as pending.
func Summarize(cases []testcase.TestCase) Summary {
	order := testcase.SummaryOrder()
	index := make(map[testcase.Status]int, len(order))
	counts := make([]Count, len(order))
	for i, s := range order {
		index[s] = i
		counts[i] = Count{Status: s, Label: s.PluralLabel()}
	}

	for _, tc := range cases {
		i, ok := index[tc.Status]
		if !ok {
			i = index[testcase.StatusPending]
		}
		counts[i].Count++
	}

	return Summary{Total: len(cases), Counts: counts}
}

// Chart returns the counts that are greater than zero, in report order.
func (s Summary) Chart() []Count {
	var out []Count
	for _, c := range s.Counts {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Of returns the count for status.
func (s Summary) Of(status testcase.Status) int {
	for _, c := range s.Counts {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}

type reportData struct {
	Title     string
	Generated string
	HasCases  bool
	Version   string
	Tickets   string
	Summary   Summary
	Cases     []testcase.TestCase
}

// Render builds the Markdown report for cases. The output depends only on
// its arguments, so identical inputs with the same generated time produce
// identical bytes.
func Render(title string, cases []testcase.TestCase, generated time.Time) (string, error) {
	data := reportData{
		Title:     title,
		Generated: generated.Format(TimestampLayout),
		HasCases:  len(cases) > 0,
		Summary:   Summarize(cases),
		Cases:     cases,
	}
	if len(cases) > 0 {
		data.Version = cases[0].Version
		data.Tickets = cases[0].TicketNumbers
	}

	var sb strings.Builder
	if err := compiled.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}
