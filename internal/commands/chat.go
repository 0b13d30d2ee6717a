package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diogo/geminichat/internal/render"
	"github.com/diogo/geminichat/internal/tui"
)

func newChatCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with Gemini.

The chat keeps the whole conversation as context for every message.
Type 'exit' or 'quit', or press Esc or Ctrl+C, to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), deps, opts)
		},
	}
}

func runChat(ctx context.Context, deps *Dependencies, opts *rootOptions) error {
	a, err := startApp(ctx, deps, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.settings.Config
	model := tui.NewModel(a.session, tui.Config{
		ModelName: a.settings.Model.Model,
		Theme:     render.ResolveTUITheme(cfg.TUITheme),
		Markdown:  render.OptionsFromConfig(cfg.Markdown, 80),
		Raw:       opts.raw,
		Timeout:   a.settings.Timeout(),
		AutoCopy:  cfg.CopyToClipboard,
		Clipboard: deps.Clipboard,
		Logger:    a.logger,
	})

	err = deps.TUI.RunChat(model)
	a.logger.Info("chat ended")
	return err
}
