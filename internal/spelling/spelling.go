// Package spelling corrects Spanish spelling and grammar through a remote
// language model. Correction never fails: every error degrades to returning
// the original text.
package spelling

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/printer"
)

// SystemPrompt instructs the model to return only the corrected text.
const SystemPrompt = "Eres un asistente especializado en corrección ortográfica y gramatical en español. " +
	"Tu tarea es corregir errores ortográficos y gramaticales en el texto proporcionado, manteniendo el significado original. " +
	"Solo debes devolver el texto corregido, sin explicaciones ni comentarios adicionales."

// UserPrompt wraps text in the correction request.
func UserPrompt(text string) string {
	return fmt.Sprintf("Corrige la ortografía y gramática del siguiente texto, manteniendo su significado original: \"%s\"", text)
}

// Corrector returns a corrected version of text, or text itself when
// correction is not possible.
type Corrector interface {
	Correct(ctx context.Context, text string) string
}

// Provider sends one completion request to a language model.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// Disabled is a Corrector that never changes text.
type Disabled struct{}

// Correct implements Corrector.
func (Disabled) Correct(_ context.Context, text string) string { return text }

// Enabled reports whether c can change text.
func Enabled(c Corrector) bool {
	if c == nil {
		return false
	}
	_, off := c.(Disabled)
	return !off
}

// Gateway is the Corrector backed by a Provider.
type Gateway struct {
	provider Provider
	apiKey   string
	keyEnv   string
	timeout  time.Duration
	log      zerolog.Logger

	warnedKey bool
}

// NewGateway creates a Gateway. An empty apiKey disables calls and makes
// Correct report the missing keyEnv variable.
func NewGateway(provider Provider, apiKey, keyEnv string, timeout time.Duration, log zerolog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		apiKey:   apiKey,
		keyEnv:   keyEnv,
		timeout:  timeout,
		log:      log.With().Str("provider", provider.Name()).Logger(),
	}
}

// New builds the Corrector selected by cfg.
func New(cfg config.SpellingConfig, keyEnv string, log zerolog.Logger) Corrector {
	var provider Provider
	switch cfg.Provider {
	case config.ProviderGroq:
		provider = NewGroq(cfg.BaseURL, cfg.Model, cfg.APIKey, &http.Client{})
	case config.ProviderGemini:
		provider = NewGemini(cfg.Model, cfg.APIKey)
	default:
		return Disabled{}
	}
	return NewGateway(provider, cfg.APIKey, keyEnv, cfg.Timeout, log)
}

// Correct implements Corrector. Blank text is returned without a request.
func (g *Gateway) Correct(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if g.apiKey == "" {
		if !g.warnedKey {
			g.warnedKey = true
			g.log.Warn().Str("env", g.keyEnv).Msg("spell correction credential not set")
			printer.Ctx(ctx).Warnf("No se encontró la clave API (%s). Usando texto original.", g.keyEnv)
		}
		return text
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := g.provider.Complete(callCtx, SystemPrompt, UserPrompt(text))
	if err != nil {
		g.log.Warn().Ctx(ctx).Err(err).Msg("spell correction failed")
		printer.Ctx(ctx).Warnf("No se pudo corregir el texto (%v). Usando texto original.", err)
		return text
	}

	corrected := clean(text, out)
	if corrected == "" {
		g.log.Warn().Ctx(ctx).Msg("spell correction returned empty text")
		printer.Ctx(ctx).Warnf("La respuesta de %s está vacía. Usando texto original.", g.provider.Name())
		return text
	}

	g.log.Debug().Ctx(ctx).Bool("changed", corrected != text).Msg("spell correction completed")
	return corrected
}

// clean trims the model output and removes the quotes the user prompt
// placed around the text, unless the original was itself quoted.
func clean(original, out string) string {
	out = strings.TrimSpace(out)
	if isQuoted(strings.TrimSpace(original)) {
		return out
	}
	if isQuoted(out) {
		out = strings.TrimSpace(out[1 : len(out)-1])
	}
	return out
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}
