package api

import (
	"context"

	"github.com/diogo/geminichat/internal/models"
)

// Generator produces the next assistant reply for a conversation.
// turns is the full history, ending with the newest user turn.
type Generator interface {
	GenerateContent(ctx context.Context, turns []models.Turn, cfg models.ModelConfig) (*models.ModelOutput, error)
}
