package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// lineInput answers the player's prompts from a line-oriented reader.
// Lines are read on a separate goroutine so a prompt can be abandoned when
// the context ends.
type lineInput struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

func newLineInput(in io.Reader, out io.Writer) *lineInput {
	return &lineInput{in: in, out: out, lines: make(chan lineResult)}
}

// Prompt shows prompt and waits for the next line.
func (l *lineInput) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.once.Do(func() { go l.read() })

	fmt.Fprint(l.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	}
}

func (l *lineInput) read() {
	defer close(l.lines)

	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		l.lines <- lineResult{line: strings.TrimRight(scanner.Text(), "\r")}
	}
	if err := scanner.Err(); err != nil {
		l.lines <- lineResult{err: err}
	}
}
