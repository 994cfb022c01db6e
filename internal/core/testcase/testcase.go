// Package testcase defines the test case record, its status model and the
// test type prefixes used to name definition files.
package testcase

import (
	"strings"

	"github.com/google/uuid"
)

// TestCase is one row of manual test evidence.
type TestCase struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Status        Status `json:"status"`
	Observations  string `json:"observations"`
	Evidence      string `json:"evidence"`
	Version       string `json:"version"`
	TicketNumbers string `json:"ticket_numbers"`
}

// Batch holds the values shared by every case created in one session.
type Batch struct {
	Version       string
	TicketNumbers string
}

// NewID returns a short identifier: the first segment of a random UUID.
func NewID() string {
	id, _, _ := strings.Cut(uuid.NewString(), "-")
	return id
}

// New creates a pending case for description with batch's shared values.
func (b Batch) New(id, description string) TestCase {
	return TestCase{
		ID:            id,
		Description:   description,
		Status:        StatusPending,
		Version:       b.Version,
		TicketNumbers: b.TicketNumbers,
	}
}

// Field identifies one editable attribute of a TestCase.
type Field string

const (
	FieldDescription   Field = "description"
	FieldStatus        Field = "status"
	FieldObservations  Field = "observations"
	FieldEvidence      Field = "evidence"
	FieldVersion       Field = "version"
	FieldTicketNumbers Field = "ticket_numbers"
)

var fieldTable = []struct {
	field Field
	label string
}{
	{FieldDescription, "Descripción"},
	{FieldStatus, "Estado"},
	{FieldObservations, "Observaciones"},
	{FieldEvidence, "Evidencia"},
	{FieldVersion, "Versión"},
	{FieldTicketNumbers, "Ticket(s)"},
}

// FieldLabels returns the display labels of editable fields in menu order.
func FieldLabels() []string {
	out := make([]string, len(fieldTable))
	for i, f := range fieldTable {
		out[i] = f.label
	}
	return out
}

// ParseFieldLabel maps a display label back to its field.
func ParseFieldLabel(label string) (Field, bool) {
	for _, f := range fieldTable {
		if f.label == label {
			return f.field, true
		}
	}
	return "", false
}

// Label returns the display label of f.
func (f Field) Label() string {
	for _, e := range fieldTable {
		if e.field == f {
			return e.label
		}
	}
	return string(f)
}

// Get returns the text value of field. Status is returned as its label.
func (tc *TestCase) Get(field Field) string {
	switch field {
	case FieldDescription:
		return tc.Description
	case FieldStatus:
		return tc.Status.Label()
	case FieldObservations:
		return tc.Observations
	case FieldEvidence:
		return tc.Evidence
	case FieldVersion:
		return tc.Version
	case FieldTicketNumbers:
		return tc.TicketNumbers
	}
	return ""
}

// Set assigns a text value to a non-status field. It reports false for
// FieldStatus and unknown fields.
func (tc *TestCase) Set(field Field, value string) bool {
	switch field {
	case FieldDescription:
		tc.Description = value
	case FieldObservations:
		tc.Observations = value
	case FieldEvidence:
		tc.Evidence = value
	case FieldVersion:
		tc.Version = value
	case FieldTicketNumbers:
		tc.TicketNumbers = value
	default:
		return false
	}
	return true
}
