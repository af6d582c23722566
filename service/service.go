package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/nluentities/config"
	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/parser"
)

// queueGroup spreads requests across service instances.
const queueGroup = "nluentities"

// Service is the NATS-facing extraction service. It answers ParseRequest
// messages on the configured subject and serves Prometheus metrics over
// HTTP when enabled.
type Service struct {
	cfg    *config.Config
	parser *parser.Parser
	logger *slog.Logger

	conn       *nats.Conn
	sub        *nats.Subscription
	metricsSrv *http.Server
}

// Option configures a Service.
type Option func(*Service)

// WithParser replaces the default parser.
func WithParser(p *parser.Parser) Option {
	return func(s *Service) {
		s.parser = p
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a service from configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{
		cfg:    cfg,
		parser: parser.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start connects to NATS, preloads configured engines, subscribes to the
// parse subject and launches the metrics endpoint. It returns once the
// service is accepting requests.
func (s *Service) Start(ctx context.Context) error {
	for _, lang := range s.cfg.PreloadedLanguages() {
		if _, err := s.parser.Extract("", lang, nil); err != nil {
			return fmt.Errorf("preloading engine for %s: %w", lang, err)
		}
		s.logger.Info("preloaded engine", slog.String("language", lang.String()))
	}

	conn, err := nats.Connect(s.cfg.NATS.URL,
		nats.Name("nluentities"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	s.conn = conn

	sub, err := conn.QueueSubscribe(s.cfg.NATS.Subject, queueGroup, func(msg *nats.Msg) {
		reply := s.Handle(msg.Data)
		if err := msg.Respond(reply); err != nil {
			s.logger.Error("responding to parse request", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		conn.Close()
		return fmt.Errorf("subscribe to %s: %w", s.cfg.NATS.Subject, err)
	}
	s.sub = sub
	s.logger.Info("serving parse requests",
		slog.String("subject", s.cfg.NATS.Subject),
		slog.String("url", s.cfg.NATS.URL))

	if s.cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		s.metricsSrv = &http.Server{Addr: s.cfg.Metrics.Addr, Handler: mux}
		go func() {
			if err := s.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics endpoint failed", slog.String("error", err.Error()))
			}
		}()
		s.logger.Info("serving metrics", slog.String("addr", s.cfg.Metrics.Addr))
	}

	return nil
}

// Run starts the service and blocks until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop(context.Background())
}

// Stop drains the subscription and shuts the service down.
func (s *Service) Stop(ctx context.Context) error {
	var errs []error
	if s.sub != nil {
		if err := s.sub.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("drain subscription: %w", err))
		}
	}
	if s.conn != nil {
		s.conn.Close()
	}
	if s.metricsSrv != nil {
		if err := s.metricsSrv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics endpoint: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Handle processes one raw parse request and produces the raw reply.
// It never returns transport errors: every failure becomes a structured
// error response.
func (s *Service) Handle(data []byte) []byte {
	requestID := uuid.NewString()

	var req ParseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return s.fail(requestID, ErrCodeBadRequest, fmt.Sprintf("malformed request: %s", err))
	}

	lang, err := language.FromCode(req.Language)
	if err != nil {
		return s.fail(requestID, ErrCodeUnsupportedLanguage, err.Error())
	}

	kinds := req.EntityKinds
	if len(kinds) == 0 {
		kinds = nil
	}

	entities, err := s.parser.Extract(req.Text, lang, kinds)
	if err != nil {
		code := ErrCodeEngine
		var langErr *parser.UnsupportedLanguageError
		if errors.As(err, &langErr) {
			code = ErrCodeUnsupportedLanguage
		}
		return s.fail(requestID, code, err.Error())
	}

	return s.reply(ParseResponse{
		RequestID: requestID,
		Entities:  entities,
	})
}

func (s *Service) fail(requestID, code, message string) []byte {
	s.logger.Warn("parse request failed",
		slog.String("request_id", requestID),
		slog.String("code", code),
		slog.String("error", message))
	return s.reply(ParseResponse{
		RequestID: requestID,
		Error:     message,
		ErrorCode: code,
	})
}

func (s *Service) reply(resp ParseResponse) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// The response model is fully serializable; reaching this means
		// a programming error upstream.
		s.logger.Error("marshaling parse response", slog.String("error", err.Error()))
		return []byte(`{"error":"internal error","error_code":"engine_error"}`)
	}
	return data
}
