package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider names a generative backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	defaultGeminiModel    = "gemini-2.0-flash-exp"
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskPlan TaskType = "plan"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int // transport retries within one Generate call
	TopK       int
	TopP       float64
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig for Gemini with no API key.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		Provider:   ProviderGemini,
		Endpoint:   defaultGeminiEndpoint,
		Model:      defaultGeminiModel,
		TimeoutMs:  60000,
		MaxRetries: 0,
		TopK:       40,
		TopP:       0.95,
		Tasks: map[TaskType]TaskConfig{
			TaskPlan: {Temperature: 0.8, MaxTokens: 8000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. Selecting the ollama
// provider switches the endpoint and model defaults to a local server.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("LEARNPLAN_LLM_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("LEARNPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LEARNPLAN_LLM_PROVIDER"))); v != "" {
		cfg.Provider = Provider(v)
		if cfg.Provider == ProviderOllama {
			cfg.Endpoint = defaultOllamaEndpoint
			cfg.Model = defaultOllamaModel
		}
	}
	if v := os.Getenv("LEARNPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("LEARNPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if v := os.Getenv("LEARNPLAN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LEARNPLAN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	tc := cfg.Tasks[TaskPlan]
	if v := os.Getenv("LEARNPLAN_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			tc.Temperature = f
		}
	}
	if v := os.Getenv("LEARNPLAN_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc.MaxTokens = n
		}
	}
	cfg.Tasks[TaskPlan] = tc

	applyTaskTimeoutEnv(&cfg, TaskPlan, "LEARNPLAN_LLM_PLAN_TIMEOUT_MS")

	return cfg
}

// Validate reports whether a client can be built from c.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderOllama:
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("llm endpoint is required for provider %s", c.Provider)
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
