package api

import (
	"context"
	"sync"

	"github.com/diogo/geminichat/internal/models"
)

// MockGenerator is a scripted Generator for tests. Each call consumes the
// next entry of Replies/Errs; past the end the last entry repeats.
type MockGenerator struct {
	Replies []string
	Errs    []error

	// Block, when set, is received from before replying
	Block chan struct{}

	mu      sync.Mutex
	calls   [][]models.Turn
	configs []models.ModelConfig
}

// Ensure MockGenerator implements Generator
var _ Generator = (*MockGenerator)(nil)

// NewMockGenerator returns a generator that answers with replies in order
func NewMockGenerator(replies ...string) *MockGenerator {
	return &MockGenerator{Replies: replies}
}

// GenerateContent records the call and returns the scripted result
func (m *MockGenerator) GenerateContent(ctx context.Context, turns []models.Turn, cfg models.ModelConfig) (*models.ModelOutput, error) {
	m.mu.Lock()
	idx := len(m.calls)
	recorded := make([]models.Turn, len(turns))
	copy(recorded, turns)
	m.calls = append(m.calls, recorded)
	m.configs = append(m.configs, cfg)
	m.mu.Unlock()

	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := pick(m.Errs, idx); err != nil {
		return nil, err
	}

	reply := ""
	if len(m.Replies) > 0 {
		if idx < len(m.Replies) {
			reply = m.Replies[idx]
		} else {
			reply = m.Replies[len(m.Replies)-1]
		}
	}

	return &models.ModelOutput{
		ModelName:  cfg.Model,
		Candidates: []models.Candidate{{Text: reply, FinishReason: "STOP"}},
	}, nil
}

func pick(errs []error, idx int) error {
	if len(errs) == 0 {
		return nil
	}
	if idx < len(errs) {
		return errs[idx]
	}
	return errs[len(errs)-1]
}

// Calls returns the history passed to each call
func (m *MockGenerator) Calls() [][]models.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]models.Turn, len(m.calls))
	copy(out, m.calls)
	return out
}

// Configs returns the model configuration passed to each call
func (m *MockGenerator) Configs() []models.ModelConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ModelConfig, len(m.configs))
	copy(out, m.configs)
	return out
}

// CallCount returns how many times GenerateContent ran
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
