package testutils

import (
	"context"
	"io"
	"sync"
)

// ScriptedInput answers prompts with a fixed list of lines and then
// reports io.EOF.
type ScriptedInput struct {
	mu      sync.Mutex
	lines   []string
	prompts []string
}

// NewScriptedInput creates an input that answers with lines in order.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// Prompt records prompt and returns the next scripted line.
func (in *ScriptedInput) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	in.prompts = append(in.prompts, prompt)
	if len(in.lines) == 0 {
		return "", io.EOF
	}
	line := in.lines[0]
	in.lines = in.lines[1:]
	return line, nil
}

// Prompts returns every prompt shown so far.
func (in *ScriptedInput) Prompts() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]string, len(in.prompts))
	copy(out, in.prompts)
	return out
}
