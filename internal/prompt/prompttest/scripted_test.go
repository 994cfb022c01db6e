package prompttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/probar/internal/prompt"
)

func TestScripted(t *testing.T) {
	s := New(Text("hola"), Keep(), Text("b"), Yes(), Abort())

	v, err := s.Input("first", "")
	require.NoError(t, err)
	assert.Equal(t, "hola", v)

	v, err = s.Input("second", "prefilled")
	require.NoError(t, err)
	assert.Equal(t, "prefilled", v)

	v, err = s.Select("pick", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	ok, err := s.Confirm("sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Input("aborted", "")
	require.ErrorIs(t, err, prompt.ErrAborted)

	_, err = s.Confirm("exhausted")
	require.ErrorIs(t, err, prompt.ErrAborted)

	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, []string{"first", "second", "pick", "sure?", "aborted", "exhausted"}, s.Titles())
	assert.Equal(t, KindSelect, s.Calls[2].Kind)
	assert.Equal(t, []string{"a", "b"}, s.Calls[2].Options)
}

func TestScripted_SelectRejectsUnknownOption(t *testing.T) {
	s := New(Text("c"))

	_, err := s.Select("pick", []string{"a", "b"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, prompt.ErrAborted)
}
