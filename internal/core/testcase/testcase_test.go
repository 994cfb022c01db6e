package testcase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}$`)

	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		assert.True(t, pattern.MatchString(id), "NewID() = %q, want 8 hex characters", id)
		seen[id] = true
	}

	assert.GreaterOrEqual(t, len(seen), 99, "NewID produced only %d unique values in 100 calls", len(seen))
}

func TestBatch_New(t *testing.T) {
	b := Batch{Version: "2.1.0", TicketNumbers: "QA-1, QA-2"}
	tc := b.New("abcd1234", "Login con usuario válido")

	assert.Equal(t, TestCase{
		ID:            "abcd1234",
		Description:   "Login con usuario válido",
		Status:        StatusPending,
		Version:       "2.1.0",
		TicketNumbers: "QA-1, QA-2",
	}, tc)
}

func TestFieldLabels_RoundTrip(t *testing.T) {
	labels := FieldLabels()
	require.Len(t, labels, 6)

	for _, label := range labels {
		f, ok := ParseFieldLabel(label)
		require.True(t, ok, label)
		assert.Equal(t, label, f.Label())
	}

	_, ok := ParseFieldLabel("Prioridad")
	assert.False(t, ok)
}

func TestTestCase_GetSet(t *testing.T) {
	tc := TestCase{Status: StatusRejected}

	for _, f := range []Field{FieldDescription, FieldObservations, FieldEvidence, FieldVersion, FieldTicketNumbers} {
		require.True(t, tc.Set(f, "value-"+string(f)))
		assert.Equal(t, "value-"+string(f), tc.Get(f))
	}

	assert.False(t, tc.Set(FieldStatus, "Validated"))
	assert.Equal(t, "❌ Rechazado", tc.Get(FieldStatus))
}

func TestParseTestType(t *testing.T) {
	for _, tt := range TestTypes() {
		got, err := ParseTestType(string(tt))
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}

	_, err := ParseTestType("Smoke")
	require.Error(t, err)
	_, err = ParseTestType("e2e")
	require.Error(t, err)
}

func TestDefinitionBaseName(t *testing.T) {
	assert.Equal(t, "smoke", DefinitionBaseName(TypeSmoke, ""))
	assert.Equal(t, "smoke", DefinitionBaseName(TypeSmoke, "   "))
	assert.Equal(t, "regression-login", DefinitionBaseName(TypeRegression, "login"))
}
