package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/diogo/geminichat/internal/config"
)

// NewGenerator builds the Generator named by settings.Config.Provider.
// The returned func releases its resources.
func NewGenerator(ctx context.Context, settings *config.Settings, logger *zap.Logger) (Generator, func(), error) {
	switch settings.Config.Provider {
	case config.ProviderArk:
		client, err := NewArkClient(ctx, settings.APIKey, settings.Model.Model, settings.Config.BaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case config.ProviderGemini, "":
		client, err := NewClient(settings.APIKey,
			WithBaseURL(settings.Config.BaseURL),
			WithTimeout(settings.Timeout()),
			WithLogger(logger),
		)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown provider %q", settings.Config.Provider)
	}
}
