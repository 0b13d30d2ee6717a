package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/render"
	"github.com/diogo/geminichat/internal/tui"
)

var (
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorSuccess  = lipgloss.Color("#9ece6a")
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorError    = lipgloss.Color("#f7768e")
)

var (
	assistantLabelStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	separatorStyle      = lipgloss.NewStyle().Foreground(colorTextMute)
	successStyle        = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle          = lipgloss.NewStyle().Foreground(colorError)
	dimStyle            = lipgloss.NewStyle().Foreground(colorTextDim)
)

// spinner handles the animated loading indicator
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool
}

// newSpinner creates a new animated spinner writing to out
func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(s.out, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(s.out, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	spin := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(chars[s.frame%len(chars)])

	dots := strings.Repeat(".", (s.frame/3)%4)
	msg := lipgloss.NewStyle().Foreground(colorText).Render(s.message + dots)

	fmt.Fprintf(s.out, "\r\033[K%s %s", spin, msg)
}

// stopOnce safely closes the stop channel only once
func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopWithSuccess stops the spinner and shows success message
func (s *spinner) stopWithSuccess(message string) {
	s.stopOnce()
	<-s.done
	fmt.Fprintln(s.out, successStyle.Render("✓ "+message))
}

// stopWithError stops the spinner without a message
func (s *spinner) stopWithError() {
	s.stopOnce()
	<-s.done
}

// readPrompt returns the one-shot prompt from -f, the argument or piped
// stdin, in that order. ok is false when none was given.
func readPrompt(deps *Dependencies, opts *rootOptions, args []string) (prompt string, ok bool, err error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil

	case len(args) > 0:
		return args[0], true, nil

	case deps.StdinIsPiped != nil && deps.StdinIsPiped():
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), true, nil
	}

	return "", false, nil
}

// runQuery submits a single message through a fresh session and prints
// the reply. Output is raw with --raw or when stdout is not a terminal.
func runQuery(ctx context.Context, deps *Dependencies, opts *rootOptions, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return apierrors.ErrEmptyInput
	}

	a, err := startApp(ctx, deps, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.settings.Config
	raw := opts.raw || !deps.StdoutIsTTY()

	if timeout := a.settings.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var spin *spinner
	if !raw {
		spin = newSpinner(deps.Stderr, "Waiting for "+a.settings.Model.Model)
		spin.start()
	}

	start := time.Now()
	reply, err := a.session.Submit(ctx, prompt)
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		return err
	}
	if spin != nil {
		spin.stopWithSuccess("Done")
	}
	if cfg.Verbose && !raw {
		fmt.Fprintln(deps.Stderr, dimStyle.Render(fmt.Sprintf("[verbose] Request took %s", time.Since(start).Round(time.Millisecond))))
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !raw {
			fmt.Fprintln(deps.Stderr, successStyle.Render("✓ Response saved to "+opts.output))
		}
		return nil
	}

	if raw {
		fmt.Fprint(deps.Stdout, reply)
		if !strings.HasSuffix(reply, "\n") {
			fmt.Fprintln(deps.Stdout)
		}
		return nil
	}

	if cfg.CopyToClipboard {
		if err := deps.Clipboard(reply); err != nil {
			a.logger.Debug("clipboard write failed", zap.Error(err))
			fmt.Fprintln(deps.Stderr, errorStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(deps.Stderr, successStyle.Render("✓ Copied to clipboard"))
		}
	}

	width := replyWidth(deps.TerminalWidth())
	fmt.Fprintln(deps.Stdout, assistantLabelStyle.Render("AI:"))
	fmt.Fprintln(deps.Stdout, render.Reply(reply, render.OptionsFromConfig(cfg.Markdown, width)))
	fmt.Fprintln(deps.Stdout, separatorStyle.Render(tui.Separator))
	return nil
}

// replyWidth clamps the terminal width to a readable column count
func replyWidth(termWidth int) int {
	width := termWidth - 4
	if termWidth <= 0 {
		width = 80
	}
	if width < 40 {
		width = 40
	}
	if width > 120 {
		width = 120
	}
	return width
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))

	var rce *apierrors.RemoteCallError
	if errors.As(err, &rce) {
		if rce.StatusCode > 0 {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", rce.StatusCode)))
		}
		if rce.Endpoint != "" {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", rce.Endpoint)))
		}
	}

	if hint := errorHint(err); hint != "" {
		sb.WriteString(dimStyle.Render("\n  Hint: " + hint))
	}

	return sb.String()
}

func errorHint(err error) string {
	var cfgErr *apierrors.ConfigurationError
	if isMissingKey(err) && errors.As(err, &cfgErr) {
		return fmt.Sprintf("Set %s in your environment or in a .env file", cfgErr.Field)
	}
	if errors.Is(err, apierrors.ErrEmptyInput) {
		return "Pass a prompt as an argument, with -f, or on stdin"
	}
	return tui.ErrorHint(err)
}
