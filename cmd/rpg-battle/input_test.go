package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineInputReadsLines(t *testing.T) {
	var out bytes.Buffer
	in := newLineInput(strings.NewReader("Attack\r\nBanana\n"), &out)
	ctx := context.Background()

	line, err := in.Prompt(ctx, "Choose an attack: ")
	require.NoError(t, err)
	assert.Equal(t, "Attack", line)

	line, err = in.Prompt(ctx, "Which item? ")
	require.NoError(t, err)
	assert.Equal(t, "Banana", line)

	_, err = in.Prompt(ctx, "Again? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Choose an attack: Which item? Again? ", out.String())
}

func TestLineInputStopsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	in := newLineInput(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineInputCancelWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	in := newLineInput(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := in.Prompt(ctx, "> ")
		done <- err
	}()
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}
