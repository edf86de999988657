package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider is reachable.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return NewGeminiClient(cfg, observer), nil
	}
}

// callFunc performs one provider round trip.
type callFunc func(ctx context.Context, temperature float64, maxTokens int) (text, model string, err error)

// transport carries what every provider client shares: config, the HTTP
// client and the retry loop with its observer reporting.
type transport struct {
	provider Provider
	cfg      LLMConfig
	http     *http.Client
	header   http.Header
	observer Observer
}

func newTransport(provider Provider, cfg LLMConfig, observer Observer) transport {
	if observer == nil {
		observer = NoopObserver{}
	}
	return transport{
		provider: provider,
		cfg:      cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// generate runs call up to 1+MaxRetries times. Each try gets the full task
// timeout; safety blocks and malformed payloads are not retried.
func (t transport) generate(ctx context.Context, req GenerateRequest, call callFunc) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := t.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	timeout := time.Duration(t.cfg.TaskTimeout(req.Task)) * time.Millisecond

	var lastErr error
	attempts := 1 + t.cfg.MaxRetries
	tries := 0

	for tries < attempts {
		tries++
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		text, model, err := call(callCtx, temp, maxTok)
		timedOut := callCtx.Err() != nil
		cancel()

		if err == nil {
			latency := time.Since(start).Milliseconds()
			t.observer.OnCallComplete(LLMCallEvent{
				Provider:  t.provider,
				Task:      req.Task,
				Model:     t.cfg.Model,
				LatencyMs: latency,
				Attempts:  tries,
				Success:   true,
			})
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
		}

		if timedOut {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		lastErr = err

		if ctx.Err() != nil || errors.Is(err, ErrSafetyBlocked) || errors.Is(err, ErrInvalidOutput) {
			break
		}
	}

	err := classify(lastErr)
	t.observer.OnCallComplete(LLMCallEvent{
		Provider:  t.provider,
		Task:      req.Task,
		Model:     t.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  tries,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func classify(err error) error {
	switch {
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrSafetyBlocked), errors.Is(err, ErrInvalidOutput):
		return err
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

// postJSON sends body to url and decodes a 200 response into out.
func (t transport) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	t.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := t.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", t.provider, httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return nil
}

// setHeaders copies the provider's fixed headers, such as credentials, onto
// req. Credentials never go in the URL, which ends up in transport errors.
func (t transport) setHeaders(req *http.Request) {
	for k, vs := range t.header {
		req.Header[k] = vs
	}
}

// reachable reports whether a GET to url answers 200 within two seconds.
func (t transport) reachable(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	t.setHeaders(req)

	resp, err := t.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	transport
}

// NewOllamaClient creates an LLMClient that talks to a local Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	return &ollamaClient{transport: newTransport(ProviderOllama, cfg, observer)}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
	TopK        int     `json:"top_k,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, func(ctx context.Context, temp float64, maxTok int) (string, string, error) {
		body := ollamaRequest{
			Model:  c.cfg.Model,
			System: req.SystemPrompt,
			Prompt: req.UserPrompt,
			Stream: false,
			Format: "json",
			Options: ollamaOptions{
				Temperature: temp,
				NumPredict:  maxTok,
				TopK:        c.cfg.TopK,
				TopP:        c.cfg.TopP,
			},
		}
		var resp ollamaResponse
		if err := c.postJSON(ctx, c.cfg.Endpoint+"/api/generate", body, &resp); err != nil {
			return "", "", err
		}
		return resp.Response, resp.Model, nil
	})
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	return c.reachable(ctx, c.cfg.Endpoint+"/api/tags")
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrSafetyBlocked):
		return "SAFETY"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
