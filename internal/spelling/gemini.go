package spelling

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini calls the Gemini API through the genai SDK.
type Gemini struct {
	model  string
	apiKey string
	client *genai.Client
}

// NewGemini creates a Gemini provider. The SDK client is created on the
// first request.
func NewGemini(model, apiKey string) *Gemini {
	return &Gemini{model: model, apiKey: apiKey}
}

// Name implements Provider.
func (g *Gemini) Name() string { return "gemini" }

// Complete implements Provider.
func (g *Gemini) Complete(ctx context.Context, system, user string) (string, error) {
	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("create GenAI client: %w", err)
		}
		g.client = client
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
