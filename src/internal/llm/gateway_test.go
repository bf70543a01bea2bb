package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text       string
	err        error
	lastSystem string
	calls      int
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt, systemMessage string) (string, error) {
	f.calls++
	f.lastSystem = systemMessage
	return f.text, f.err
}

// blockingCompleter never answers on its own.
type blockingCompleter struct {
	deadline time.Time
}

func (b *blockingCompleter) Complete(ctx context.Context, prompt, systemMessage string) (string, error) {
	b.deadline, _ = ctx.Deadline()
	<-ctx.Done()
	return "", ctx.Err()
}

var opts = Options{FallbackChars: 100}

func TestFallback_Truncates(t *testing.T) {
	prompt := strings.Repeat("a", 150)
	got := Fallback(prompt, 100)

	assert.Equal(t, "AI analysis: "+strings.Repeat("a", 100)+"... (simulated response)", got)
}

func TestFallback_ShortPromptAndRunes(t *testing.T) {
	assert.Equal(t, "AI analysis: hi... (simulated response)", Fallback("hi", 100))
	assert.Equal(t, "AI analysis: héé... (simulated response)", Fallback("héééé", 3))
	assert.Equal(t, Fallback("x", defaultFallbackChars), Fallback("x", 0))
}

func TestResilientGateway_Success(t *testing.T) {
	c := &fakeCompleter{text: "generated"}
	gw := NewResilientGateway(c, opts, metrics.Noop())

	assert.Equal(t, "generated", gw.Generate(context.Background(), "prompt", "You are an expert."))
	assert.Equal(t, "You are an expert.", c.lastSystem)
}

func TestResilientGateway_DefaultSystemMessage(t *testing.T) {
	c := &fakeCompleter{text: "ok"}
	NewResilientGateway(c, opts, metrics.Noop()).Generate(context.Background(), "prompt", "")

	assert.Equal(t, DefaultSystemMessage, c.lastSystem)
}

func TestResilientGateway_ErrorFallsBack(t *testing.T) {
	gw := NewResilientGateway(&fakeCompleter{err: errors.New("boom")}, opts, metrics.Noop())

	assert.Equal(t, Fallback("prompt", 100), gw.Generate(context.Background(), "prompt", "sys"))
}

func TestResilientGateway_EmptyTextFallsBack(t *testing.T) {
	gw := NewResilientGateway(&fakeCompleter{text: "  "}, opts, metrics.Noop())

	assert.Equal(t, Fallback("prompt", 100), gw.Generate(context.Background(), "prompt", "sys"))
}

func TestResilientGateway_SlowCallLeavesReserve(t *testing.T) {
	c := &blockingCompleter{}
	gw := NewResilientGateway(c, Options{FallbackChars: 100, Timeout: time.Minute, Reserve: 150 * time.Millisecond}, metrics.Noop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.Equal(t, Fallback("prompt", 100), gw.Generate(ctx, "prompt", "sys"))
	assert.NoError(t, ctx.Err())

	parent, _ := ctx.Deadline()
	assert.False(t, c.deadline.IsZero())
	assert.True(t, c.deadline.Before(parent))
}

func TestResilientGateway_TimeoutCapsCall(t *testing.T) {
	c := &blockingCompleter{}
	gw := NewResilientGateway(c, Options{Timeout: 20 * time.Millisecond}, metrics.Noop())

	start := time.Now()
	gw.Generate(context.Background(), "prompt", "sys")

	assert.Less(t, time.Since(start), time.Second)
}

func TestResilientGateway_NoTimeLeftSkipsCall(t *testing.T) {
	c := &fakeCompleter{text: "late"}
	gw := NewResilientGateway(c, Options{FallbackChars: 100, Reserve: time.Second}, metrics.Noop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Equal(t, Fallback("prompt", 100), gw.Generate(ctx, "prompt", "sys"))
	assert.Zero(t, c.calls)
}

func TestNew_SelectsImplementation(t *testing.T) {
	reserve := 10 * time.Second
	assert.IsType(t, &stubGateway{}, New(&config.LLMSettings{Provider: ProviderOpenAI}, reserve, metrics.Noop()))
	assert.IsType(t, &stubGateway{}, New(&config.LLMSettings{Provider: ProviderStub, ApiKey: "k"}, reserve, metrics.Noop()))

	gw := New(&config.LLMSettings{Provider: ProviderOpenAI, ApiKey: "k", Model: "gpt-5", Timeout: 20}, reserve, metrics.Noop())
	require.IsType(t, &resilientGateway{}, gw)
	assert.Equal(t, 20*time.Second, gw.(*resilientGateway).opts.Timeout)
	assert.Equal(t, reserve, gw.(*resilientGateway).opts.Reserve)
}
