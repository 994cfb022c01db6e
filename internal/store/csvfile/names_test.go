package csvfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "definition name", in: "smoke-login", want: "smoke-login"},
		{name: "single timestamp", in: "smoke-login-20240102_030405", want: "smoke-login"},
		{name: "collision counter", in: "smoke-login-20240102_030405_3", want: "smoke-login"},
		{name: "only last suffix", in: "smoke-20240101_000000-20240102_030405", want: "smoke-20240101_000000"},
		{name: "bare type", in: "regression-20240102_030405", want: "regression"},
		{name: "not a timestamp", in: "smoke-2024", want: "smoke-2024"},
		{name: "embedded digits", in: "smoke-20240102_030405x", want: "smoke-20240102_030405x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTimestamp(tt.in))
			assert.Equal(t, tt.want != tt.in, HasTimestamp(tt.in))
		})
	}
}

func TestBaseNameAndReportPath(t *testing.T) {
	p := filepath.Join("ws", "executions", "smoke-20240102_030405.csv")

	assert.Equal(t, "smoke-20240102_030405", BaseName(p))
	assert.Equal(t, filepath.Join("ws", "executions", "smoke-20240102_030405.md"), ReportPath(p))
}
