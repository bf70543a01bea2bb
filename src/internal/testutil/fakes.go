// Package testutil holds fakes shared by the feature package tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"bizpulse-api/src/internal/llm"
	"bizpulse-api/src/internal/metrics"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
)

// Gateway records prompts and answers with a fixed reply.
type Gateway struct {
	Reply   string
	Prompts []string
	Systems []string
}

func (g *Gateway) Generate(_ context.Context, prompt, systemMessage string) string {
	g.Prompts = append(g.Prompts, prompt)
	g.Systems = append(g.Systems, systemMessage)
	return g.Reply
}

// StalledReserve is what StalledGateway leaves of the caller's deadline.
const StalledReserve = 200 * time.Millisecond

type stalledCompleter struct{}

func (stalledCompleter) Complete(ctx context.Context, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// StalledGateway is a real resilient gateway over an AI backend that never
// answers. Callers need a deadline longer than StalledReserve.
func StalledGateway() llm.Gateway {
	return llm.NewResilientGateway(stalledCompleter{}, llm.Options{
		FallbackChars: 100,
		Timeout:       time.Minute,
		Reserve:       StalledReserve,
	}, metrics.Noop())
}

type Activity struct {
	UserID   string
	Service  string
	Action   string
	Metadata map[string]string
}

// Publisher records published activities.
type Publisher struct {
	mu         sync.Mutex
	Activities []Activity
	Err        error
}

func (p *Publisher) PublishActivity(userID, serviceName, action string, metadata map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Activities = append(p.Activities, Activity{userID, serviceName, action, metadata})
	return p.Err
}

// Actions lists the recorded action names in order.
func (p *Publisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	actions := make([]string, 0, len(p.Activities))
	for _, a := range p.Activities {
		actions = append(actions, a.Action)
	}
	return actions
}

// Router returns a test-mode engine whose requests are already
// authenticated as userID.
func Router(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(user.ContextKey, &user.User{ID: userID, Email: userID + "@example.com", Name: userID})
		c.Set("user_id", userID)
		c.Next()
	})
	return router
}
