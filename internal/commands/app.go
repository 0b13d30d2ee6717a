package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/diogo/geminichat/internal/api"
	"github.com/diogo/geminichat/internal/config"
	"github.com/diogo/geminichat/internal/logger"
)

// app is the wired runtime shared by the chat and one-shot paths
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	session  *api.ChatSession
	closers  []func()
}

// startApp loads configuration and constructs the logger, the model client
// and the session, in that order. Configuration problems surface before
// anything is shown to the user.
func startApp(ctx context.Context, deps *Dependencies, opts *rootOptions) (*app, error) {
	if err := config.LoadDotEnv(opts.envFiles...); err != nil {
		return nil, err
	}

	settings, err := deps.LoadSettings(config.LoadOptions{
		Model:   opts.model,
		Verbose: opts.verbose,
	})
	if err != nil {
		return nil, err
	}

	a := &app{settings: settings, logger: logger.Nop()}

	log, closeLog, err := deps.NewLogger(settings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: logging disabled: %v\n", err)
	} else {
		a.logger = log
		a.closers = append(a.closers, func() {
			_ = log.Sync()
			_ = closeLog()
		})
	}

	a.logger.Info("starting",
		zap.String("version", Version),
		zap.String("provider", settings.Config.Provider),
		zap.String("model", settings.Model.Model),
	)

	gen, closeGen, err := deps.NewGenerator(ctx, settings, a.logger)
	if err != nil {
		a.logger.Error("failed to create model client", zap.Error(err))
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, closeGen)

	a.session = api.NewChatSession(gen, settings.Model, api.WithSessionLogger(a.logger))
	return a, nil
}

// Close releases resources in reverse order of creation
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if a.closers[i] != nil {
			a.closers[i]()
		}
	}
	a.closers = nil
}
