package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFence = regexp.MustCompile("```(?:json)?\\s*")

// SchemaValidator validates a parsed value after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes a JSON object of type T from raw LLM text output.
// Markdown code fences are removed and the payload is taken to run from the
// first '{' to the last '}', so prose before or after it is ignored. The
// payload itself must be strict JSON. If validator is non-nil, the decoded
// value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	jsonStr := ExtractObject(raw)
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// ExtractObject returns the span of raw from the first '{' to the last '}'
// after code fences are removed, or "" when there is no such span.
func ExtractObject(raw string) string {
	cleaned := stripCodeFences(raw)
	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start == -1 || end < start {
		return ""
	}
	return cleaned[start : end+1]
}

// stripCodeFences removes markdown fence markers (```json, ```) wherever
// they appear, including fences that share a line with the payload.
func stripCodeFences(s string) string {
	return codeFence.ReplaceAllString(s, "")
}
