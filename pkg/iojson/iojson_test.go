package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string][]string{"definitions": {"a.csv"}}))

	assert.Equal(t, "{\n  \"definitions\": [\n    \"a.csv\"\n  ]\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalError(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"message": "marshal output"`)
	assert.Contains(t, errOut.String(), "json_error")
}
