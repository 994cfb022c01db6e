package testcase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned by strict parsing when a label or name does
// not match any known status.
var ErrUnknownStatus = errors.New("unknown status")

// Status is the outcome recorded for a test case.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusValidated Status = "Validated"
	StatusRejected  Status = "Rejected"
	StatusSkipped   Status = "Skipped"
	StatusBlocked   Status = "Blocked"
)

// statusEntry binds a status to the label shown in prompts and reports.
type statusEntry struct {
	status Status
	label  string
	plural string
}

// statusTable is the single source for rendering and parsing statuses. The
// order is the one used by status select prompts.
var statusTable = []statusEntry{
	{StatusPending, "⏳ Pendiente", "⏳ Pendientes"},
	{StatusValidated, "✅ Validado", "✅ Validados"},
	{StatusRejected, "❌ Rechazado", "❌ Rechazados"},
	{StatusSkipped, "⏭️ Omitido", "⏭️ Omitidos"},
	{StatusBlocked, "🚫 Bloqueado", "🚫 Bloqueados"},
}

// Statuses returns all statuses in prompt order.
func Statuses() []Status {
	out := make([]Status, len(statusTable))
	for i, e := range statusTable {
		out[i] = e.status
	}
	return out
}

// SummaryOrder returns the statuses in the order used by report summaries.
func SummaryOrder() []Status {
	return []Status{StatusValidated, StatusRejected, StatusPending, StatusSkipped, StatusBlocked}
}

// StatusLabels returns the display labels in prompt order.
func StatusLabels() []string {
	out := make([]string, len(statusTable))
	for i, e := range statusTable {
		out[i] = e.label
	}
	return out
}

func (s Status) entry() (statusEntry, bool) {
	for _, e := range statusTable {
		if e.status == s {
			return e, true
		}
	}
	return statusEntry{}, false
}

// IsValid reports whether s is one of the five known statuses.
func (s Status) IsValid() bool {
	_, ok := s.entry()
	return ok
}

// Label returns the emoji-prefixed display label, e.g. "✅ Validado".
func (s Status) Label() string {
	if e, ok := s.entry(); ok {
		return e.label
	}
	return string(s)
}

// PluralLabel returns the label used in report counters, e.g. "✅ Validados".
func (s Status) PluralLabel() string {
	if e, ok := s.entry(); ok {
		return e.plural
	}
	return string(s)
}

func (s Status) String() string {
	return s.Label()
}

// ParseLabel maps a display label back to its status. Unrecognized labels map
// to StatusPending; the fallback is intentional and only reachable through
// interactive re-entry.
func ParseLabel(label string) Status {
	s, err := StatusParser{}.Parse(label)
	if err != nil {
		return StatusPending
	}
	return s
}

// ParseName parses the persisted form of a status. It accepts the symbolic
// name in any letter case and, for hand-edited files, the display label.
func ParseName(name string) (Status, error) {
	name = strings.TrimSpace(name)
	for _, e := range statusTable {
		if strings.EqualFold(name, string(e.status)) || name == e.label {
			return e.status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// StatusParser parses display labels selected by the user. With Strict unset
// an unknown label resolves to StatusPending; with Strict set it is an error.
type StatusParser struct {
	Strict bool
}

// Parse resolves a display label.
func (p StatusParser) Parse(label string) (Status, error) {
	label = strings.TrimSpace(label)
	for _, e := range statusTable {
		if label == e.label {
			return e.status, nil
		}
	}
	if p.Strict {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
	}
	return StatusPending, nil
}
