package api

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

// ChatSession maintains the ordered turn history of one conversation and
// mediates calls to the Generator. History is append-only.
type ChatSession struct {
	id        string
	generator Generator
	config    models.ModelConfig // Fixed for the session's lifetime
	logger    *zap.Logger

	mu       sync.RWMutex // Protects turns, inFlight
	turns    []models.Turn
	inFlight bool
}

// SessionOption configures a ChatSession
type SessionOption func(*ChatSession)

// WithSessionLogger sets the session logger
func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *ChatSession) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewChatSession creates an empty session bound to a generator and a
// fixed model configuration
func NewChatSession(generator Generator, cfg models.ModelConfig, opts ...SessionOption) *ChatSession {
	s := &ChatSession{
		id:        uuid.Must(uuid.NewV7()).String(),
		generator: generator,
		config:    cfg.Clone(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

// copyTurns creates a copy of the history to avoid races
func copyTurns(t []models.Turn) []models.Turn {
	result := make([]models.Turn, len(t))
	copy(result, t)
	return result
}

// Submit sends one user message and returns the assistant's reply.
//
// Blank input returns ErrEmptyInput without touching history. Otherwise the
// user turn is appended, the generator is called once with the full history,
// and on success the reply is appended as an assistant turn. On failure the
// user turn stays and the error is returned as a RemoteCallError.
func (s *ChatSession) Submit(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apierrors.ErrEmptyInput
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", apierrors.ErrSessionBusy
	}
	s.inFlight = true
	s.turns = append(s.turns, models.NewUserTurn(text))
	history := copyTurns(s.turns)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	s.logger.Info("submit started", zap.Int("turns", len(history)))
	start := time.Now()

	output, err := s.generator.GenerateContent(ctx, history, s.config.Clone())
	if err == nil && output == nil {
		err = apierrors.NewParseError("generator returned no output")
	}
	if err != nil {
		err = apierrors.AsRemoteCallError(err)
		s.logger.Warn("submit failed",
			zap.Duration("latency", time.Since(start)),
			zap.String("kind", apierrors.GetKind(err).String()),
			zap.Error(err),
		)
		return "", err
	}

	reply := output.Text()

	s.mu.Lock()
	s.turns = append(s.turns, models.NewAssistantTurn(reply))
	count := len(s.turns)
	s.mu.Unlock()

	s.logger.Info("submit finished",
		zap.Int("turns", count),
		zap.Duration("latency", time.Since(start)),
		zap.Int("output_tokens", output.Usage.OutputTokens),
	)

	return reply, nil
}

// ID returns the session identifier used in logs
func (s *ChatSession) ID() string {
	return s.id
}

// Turns returns a copy of the history in chronological order
func (s *ChatSession) Turns() []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTurns(s.turns)
}

// Len returns the number of turns in the history
func (s *ChatSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Config returns a copy of the session's model configuration
func (s *ChatSession) Config() models.ModelConfig {
	return s.config.Clone()
}

// Busy reports whether a Submit is in flight
func (s *ChatSession) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// LastReply returns the most recent assistant text, or ""
func (s *ChatSession) LastReply() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Role == models.RoleAssistant {
			return s.turns[i].Text
		}
	}
	return ""
}
