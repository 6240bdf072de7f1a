package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stigoleg/arc-timer/internal/countdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, runPlain(ctx, "1", countdown.DefaultConfig(), &out))
	assert.Equal(t, "1\n0\nRestart\n", out.String())
}

func TestRunPlainNeedsDuration(t *testing.T) {
	for _, input := range []string{"", "0", "abc"} {
		var out bytes.Buffer
		err := runPlain(context.Background(), input, countdown.DefaultConfig(), &out)
		assert.ErrorIs(t, err, errNoDuration, "input %q", input)
		assert.Empty(t, out.String())
	}
}

func TestRunPlainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runPlain(ctx, "60", countdown.DefaultConfig(), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "60\n", out.String())
}
