package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizpulse-api/src/clients"
	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/dependency"
	"bizpulse-api/src/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg        *config.Configuration
	httpServer *http.Server
	deps       *dependency.Manager
	cleanup    []func(ctx context.Context)
}

func New(cfg *config.Configuration) *Server {
	return &Server{cfg: cfg}
}

// Start connects the backing services, serves HTTP and blocks until SIGINT
// or SIGTERM, then drains requests and closes every connection.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.init(ctx); err != nil {
		s.close()
		return err
	}
	defer s.close()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("HTTP server stopped")
	return nil
}

func (s *Server) init(ctx context.Context) error {
	mongodb, err := clients.NewMongoDB(&s.cfg.Database)
	if err != nil {
		return err
	}
	s.onClose(func(ctx context.Context) { _ = mongodb.Close(ctx) })

	redisClient := s.connectRedis()
	rabbitMQ := s.connectRabbitMQ()

	gin.SetMode(s.cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s.deps = dependency.NewDependencyManager(router, mongodb, redisClient, rabbitMQ, registry, s.cfg)
	router.Use(middleware.RequestLogger(s.deps.Metrics))

	indexCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Database.Timeout)*time.Second)
	s.deps.EnsureIndexes(indexCtx)
	cancel()

	SetupRoutes(s.deps)

	s.httpServer = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Server.IdleTimeout) * time.Second,
	}

	return nil
}

// connectRedis returns nil when Redis is not configured or unreachable.
func (s *Server) connectRedis() *clients.RedisClient {
	if s.cfg.Redis.Url == "" {
		return nil
	}
	redisClient, err := clients.NewRedisClient(&s.cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("Continuing without Redis")
		return nil
	}
	s.onClose(func(context.Context) { _ = redisClient.Close() })
	return redisClient
}

// connectRabbitMQ returns nil when RabbitMQ is not configured or unreachable.
func (s *Server) connectRabbitMQ() *clients.RabbitMQ {
	if s.cfg.Queue.RabbitMQ.Url == "" {
		return nil
	}
	rabbitMQ, err := clients.NewRabbitMQ(&s.cfg.Queue.RabbitMQ)
	if err != nil {
		log.WithError(err).Warn("Continuing without RabbitMQ")
		return nil
	}
	s.onClose(func(context.Context) { _ = rabbitMQ.Close() })
	return rabbitMQ
}

func (s *Server) onClose(fn func(ctx context.Context)) {
	s.cleanup = append(s.cleanup, fn)
}

// close releases resources in reverse order of acquisition.
func (s *Server) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i](ctx)
	}
	s.cleanup = nil
}
