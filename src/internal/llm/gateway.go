package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/metrics"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSystemMessage = "You are a helpful AI assistant."
	defaultFallbackChars = 100

	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// Gateway turns a prompt into text. It never fails: when generation is not
// possible the deterministic fallback text is returned instead.
type Gateway interface {
	Generate(ctx context.Context, prompt, systemMessage string) string
}

// Completer is the raw text-generation call, e.g. *clients.LLMClient.
type Completer interface {
	Complete(ctx context.Context, prompt, systemMessage string) (string, error)
}

// Fallback echoes the start of the prompt.
func Fallback(prompt string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = defaultFallbackChars
	}
	runes := []rune(prompt)
	if len(runes) > maxChars {
		runes = runes[:maxChars]
	}
	return fmt.Sprintf("AI analysis: %s... (simulated response)", string(runes))
}

// Options bound a real generation call. Timeout caps the call itself;
// Reserve is the part of the caller's deadline kept free for the work that
// follows generation, such as persisting the result.
type Options struct {
	FallbackChars int
	Timeout       time.Duration
	Reserve       time.Duration
}

type resilientGateway struct {
	completer Completer
	opts      Options
	recorder  metrics.Recorder
}

func NewResilientGateway(completer Completer, opts Options, recorder metrics.Recorder) Gateway {
	return &resilientGateway{
		completer: completer,
		opts:      opts,
		recorder:  recorder,
	}
}

func (g *resilientGateway) Generate(ctx context.Context, prompt, systemMessage string) string {
	if systemMessage == "" {
		systemMessage = DefaultSystemMessage
	}

	budget, ok := g.budget(ctx)
	if !ok {
		logrus.Warn("No time left for AI call, using fallback response")
		g.recorder.RecordLLMCall(metrics.LLMResultFallback)
		return Fallback(prompt, g.opts.FallbackChars)
	}

	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if budget > 0 {
		callCtx, cancel = context.WithTimeout(ctx, budget)
	}
	defer cancel()

	text, err := g.completer.Complete(callCtx, prompt, systemMessage)
	if err != nil || strings.TrimSpace(text) == "" {
		logrus.WithError(err).Error("AI call error, using fallback response")
		g.recorder.RecordLLMCall(metrics.LLMResultFallback)
		return Fallback(prompt, g.opts.FallbackChars)
	}

	g.recorder.RecordLLMCall(metrics.LLMResultSuccess)
	return text
}

// budget returns how long the call may run: the configured timeout, cut
// short so that Reserve remains before the caller's deadline. Zero means
// unbounded; false means there is no time left at all.
func (g *resilientGateway) budget(ctx context.Context) (time.Duration, bool) {
	budget := g.opts.Timeout

	deadline, ok := ctx.Deadline()
	if !ok {
		return budget, true
	}

	remaining := time.Until(deadline) - g.opts.Reserve
	if remaining <= 0 {
		return 0, false
	}
	if budget <= 0 || remaining < budget {
		budget = remaining
	}
	return budget, true
}

type stubGateway struct {
	fallbackChars int
	recorder      metrics.Recorder
}

func NewStubGateway(fallbackChars int, recorder metrics.Recorder) Gateway {
	return &stubGateway{fallbackChars: fallbackChars, recorder: recorder}
}

func (g *stubGateway) Generate(_ context.Context, prompt, _ string) string {
	g.recorder.RecordLLMCall(metrics.LLMResultStub)
	return Fallback(prompt, g.fallbackChars)
}

// New selects the gateway implementation from configuration. Without an API
// key, or with provider "stub", the deterministic stub is used. reserve is
// kept free at the end of each request deadline for the write that follows.
func New(cfg *config.LLMSettings, reserve time.Duration, recorder metrics.Recorder) Gateway {
	if cfg.Provider == ProviderStub || cfg.ApiKey == "" {
		logrus.WithField("provider", cfg.Provider).Warn("LLM gateway running in stub mode")
		return NewStubGateway(cfg.FallbackChars, recorder)
	}

	client, err := clients.NewLLMClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create LLM client, running in stub mode")
		return NewStubGateway(cfg.FallbackChars, recorder)
	}

	logrus.WithField("model", cfg.Model).Info("LLM gateway ready")
	return NewResilientGateway(client, Options{
		FallbackChars: cfg.FallbackChars,
		Timeout:       time.Duration(cfg.Timeout) * time.Second,
		Reserve:       reserve,
	}, recorder)
}
