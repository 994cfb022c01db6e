package spelling

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/printer"
)

type fakeProvider struct {
	out   string
	err   error
	calls []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, system, user string) (string, error) {
	f.calls = append(f.calls, user)
	return f.out, f.err
}

func testContext(buf *bytes.Buffer) context.Context {
	return printer.NewContext(context.Background(), printer.NewPlain(buf))
}

func TestGateway_BlankInputMakesNoCall(t *testing.T) {
	fake := &fakeProvider{out: "never"}
	g := NewGateway(fake, "key", config.EnvGroqAPIKey, time.Second, zerolog.Nop())

	for _, in := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, in, g.Correct(context.Background(), in))
	}
	assert.Empty(t, fake.calls)
}

func TestGateway_MissingKeyReturnsOriginal(t *testing.T) {
	var buf bytes.Buffer
	fake := &fakeProvider{out: "corregido"}
	g := NewGateway(fake, "", config.EnvGroqAPIKey, time.Second, zerolog.Nop())
	ctx := testContext(&buf)

	assert.Equal(t, "hola mundo", g.Correct(ctx, "hola mundo"))
	assert.Equal(t, "otra", g.Correct(ctx, "otra"))

	assert.Empty(t, fake.calls)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("GROQ_API_KEY")))
}

func TestGateway_ProviderErrorReturnsOriginal(t *testing.T) {
	var buf bytes.Buffer
	fake := &fakeProvider{err: errors.New("boom")}
	g := NewGateway(fake, "key", config.EnvGroqAPIKey, time.Second, zerolog.Nop())

	assert.Equal(t, "ola", g.Correct(testContext(&buf), "ola"))
	assert.Len(t, fake.calls, 1)
	assert.Contains(t, buf.String(), "boom")
}

func TestGateway_EmptyResponseReturnsOriginal(t *testing.T) {
	var buf bytes.Buffer
	fake := &fakeProvider{out: "  \"\"  "}
	g := NewGateway(fake, "key", config.EnvGroqAPIKey, time.Second, zerolog.Nop())

	assert.Equal(t, "ola", g.Correct(testContext(&buf), "ola"))
	assert.NotEmpty(t, buf.String())
}

func TestGateway_CleansResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
		want string
	}{
		{name: "plain", in: "ola", out: "Hola", want: "Hola"},
		{name: "trims whitespace", in: "ola", out: "  Hola.\n", want: "Hola."},
		{name: "strips wrapping quotes", in: "ola", out: "\"Hola\"", want: "Hola"},
		{name: "keeps quotes of quoted input", in: "\"ola\"", out: "\"Hola\"", want: "\"Hola\""},
		{name: "keeps inner quotes", in: "dijo ola", out: "Dijo \"hola\"", want: "Dijo \"hola\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{out: tt.out}
			g := NewGateway(fake, "key", config.EnvGroqAPIKey, time.Second, zerolog.Nop())

			assert.Equal(t, tt.want, g.Correct(context.Background(), tt.in))
			require.Len(t, fake.calls, 1)
			assert.Equal(t, UserPrompt(tt.in), fake.calls[0])
		})
	}
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t,
		`Corrige la ortografía y gramática del siguiente texto, manteniendo su significado original: "ola k ase"`,
		UserPrompt("ola k ase"))
}

func TestNew(t *testing.T) {
	none := New(config.SpellingConfig{Provider: config.ProviderNone}, "", zerolog.Nop())
	assert.False(t, Enabled(none))
	assert.Equal(t, "x", none.Correct(context.Background(), "x"))

	groq := New(config.SpellingConfig{
		Provider: config.ProviderGroq,
		BaseURL:  "http://localhost",
		Model:    "m",
		Timeout:  time.Second,
	}, config.EnvGroqAPIKey, zerolog.Nop())
	assert.True(t, Enabled(groq))
	assert.IsType(t, &Gateway{}, groq)

	gemini := New(config.SpellingConfig{Provider: config.ProviderGemini, Model: "m"}, config.EnvGeminiAPIKey, zerolog.Nop())
	assert.True(t, Enabled(gemini))

	assert.False(t, Enabled(nil))
}
