package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var geminiSafetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

const geminiSafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"

const geminiAPIKeyHeader = "x-goog-api-key"

// geminiClient implements LLMClient using the Gemini generateContent API.
type geminiClient struct {
	transport
}

// NewGeminiClient creates an LLMClient backed by a hosted Gemini model.
// cfg.APIKey must be set; see LLMConfig.Validate.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	t := newTransport(ProviderGemini, cfg, observer)
	t.header = http.Header{}
	t.header.Set(geminiAPIKeyHeader, cfg.APIKey)
	return &geminiClient{transport: t}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// geminiRequest is the JSON body sent to POST models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
	SafetySettings    []geminiSafetySetting  `json:"safetySettings"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type geminiResponse struct {
	Candidates     []geminiCandidate `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, func(ctx context.Context, temp float64, maxTok int) (string, string, error) {
		body := geminiRequest{
			Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
			GenerationConfig: geminiGenerationConfig{
				Temperature:     temp,
				TopK:            c.cfg.TopK,
				TopP:            c.cfg.TopP,
				MaxOutputTokens: maxTok,
			},
			SafetySettings: safetySettings(),
		}
		if req.SystemPrompt != "" {
			body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
		}

		var resp geminiResponse
		if err := c.postJSON(ctx, c.modelURL(":generateContent"), body, &resp); err != nil {
			return "", "", err
		}
		text, err := resp.text()
		if err != nil {
			return "", "", err
		}
		model := resp.ModelVersion
		if model == "" {
			model = c.cfg.Model
		}
		return text, model, nil
	})
}

func (c *geminiClient) Available(ctx context.Context) bool {
	return c.reachable(ctx, c.modelURL(""))
}

// modelURL addresses the configured model, e.g. suffix ":generateContent".
// The API key travels in a header.
func (c *geminiClient) modelURL(suffix string) string {
	return fmt.Sprintf("%s/v1beta/models/%s%s",
		c.cfg.Endpoint, url.PathEscape(c.cfg.Model), suffix)
}

func safetySettings() []geminiSafetySetting {
	out := make([]geminiSafetySetting, len(geminiSafetyCategories))
	for i, cat := range geminiSafetyCategories {
		out[i] = geminiSafetySetting{Category: cat, Threshold: geminiSafetyThreshold}
	}
	return out
}

// text returns the first candidate's text, mapping refusals to
// ErrSafetyBlocked and empty answers to ErrInvalidOutput.
func (r geminiResponse) text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrSafetyBlocked, r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrInvalidOutput)
	}
	cand := r.Candidates[0]
	if cand.FinishReason == "SAFETY" {
		return "", fmt.Errorf("%w: finish reason SAFETY", ErrSafetyBlocked)
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w: empty candidate text", ErrInvalidOutput)
	}
	return b.String(), nil
}
