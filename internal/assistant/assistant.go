// Package assistant wraps prompt-driven generative calls behind typed inputs and outputs.
//
// Each flow renders a prompt template from its input, asks a Generator for JSON
// matching a response schema, then decodes and validates the result.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"
	"time"

	"google.golang.org/genai"
)

var (
	// ErrInvalidInput marks input that fails the flow's input contract.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOutput marks generator output that fails the flow's output contract.
	ErrInvalidOutput = errors.New("invalid model output")
)

// Generator produces a JSON document for prompt that conforms to schema.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}

// Assistant runs the prompt flows against a Generator.
type Assistant struct {
	gen     Generator
	timeout time.Duration
}

// New returns an Assistant. A non-positive timeout disables the per-call deadline.
func New(gen Generator, timeout time.Duration) *Assistant {
	return &Assistant{gen: gen, timeout: timeout}
}

type flow[In, Out any] struct {
	name           string
	prompt         *template.Template
	schema         *genai.Schema
	validateInput  func(In) error
	validateOutput func(Out) error
}

func run[In, Out any](ctx context.Context, a *Assistant, f flow[In, Out], in In) (Out, error) {
	var out Out
	if err := f.validateInput(in); err != nil {
		return out, fmt.Errorf("%s: %w: %v", f.name, ErrInvalidInput, err)
	}
	var buf bytes.Buffer
	if err := f.prompt.Execute(&buf, in); err != nil {
		return out, fmt.Errorf("%s: render prompt: %w", f.name, err)
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	raw, err := a.gen.GenerateJSON(ctx, buf.String(), f.schema)
	if err != nil {
		return out, fmt.Errorf("%s: generate: %w", f.name, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%s: %w: %v", f.name, ErrInvalidOutput, err)
	}
	if err := f.validateOutput(out); err != nil {
		return out, fmt.Errorf("%s: %w: %v", f.name, ErrInvalidOutput, err)
	}
	return out, nil
}
