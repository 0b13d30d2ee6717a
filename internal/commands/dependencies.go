package commands

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/geminichat/internal/api"
	"github.com/diogo/geminichat/internal/config"
	"github.com/diogo/geminichat/internal/logger"
	"github.com/diogo/geminichat/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(model tui.Model) error
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

// RunChat runs the chat shell in the alternate screen
func (d *DefaultTUI) RunChat(model tui.Model) error {
	return tui.Run(model)
}

// GeneratorFactory builds the model client for resolved settings
type GeneratorFactory func(ctx context.Context, settings *config.Settings, logger *zap.Logger) (api.Generator, func(), error)

// LoggerFactory builds the application logger and its close func
type LoggerFactory func(settings *config.Settings) (*zap.Logger, func() error, error)

// Dependencies holds the external dependencies for the commands.
// Everything the commands touch outside the process goes through here.
type Dependencies struct {
	LoadSettings func(opts config.LoadOptions) (*config.Settings, error)
	NewGenerator GeneratorFactory
	NewLogger    LoggerFactory
	TUI          TUIInterface
	Clipboard    func(text string) error

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdoutIsTTY reports whether stdout is a terminal
	StdoutIsTTY func() bool
	// StdinIsPiped reports whether stdin carries redirected input
	StdinIsPiped func() bool
	// TerminalWidth returns the stdout width in columns, or 0 if unknown
	TerminalWidth func() int
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		LoadSettings:  config.Load,
		NewGenerator:  api.NewGenerator,
		NewLogger:     fileLogger,
		TUI:           &DefaultTUI{},
		Clipboard:     clipboard.WriteAll,
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		StdoutIsTTY:   isStdoutTTY,
		StdinIsPiped:  isStdinPiped,
		TerminalWidth: getTerminalWidth,
	}
}

// fileLogger writes to the configured log file
func fileLogger(settings *config.Settings) (*zap.Logger, func() error, error) {
	path, err := config.GetLogPath(settings.Config)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewFileLogger(path, settings.Config.Verbose)
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func isStdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// getTerminalWidth returns the terminal width or 0
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
