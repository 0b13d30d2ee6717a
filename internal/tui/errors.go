package tui

import (
	"fmt"
	"strings"

	apierrors "github.com/diogo/geminichat/internal/errors"
)

// ErrorHint returns a one-line suggestion for a failed submission, or ""
func ErrorHint(err error) string {
	switch {
	case err == nil:
		return ""
	case apierrors.IsConfigurationError(err):
		return "Fix the configuration and restart"
	case apierrors.IsAuthError(err):
		return "Check that GEMINI_API_KEY holds a valid key"
	case apierrors.IsQuotaError(err):
		return "Quota or rate limit reached. Wait a moment and try again"
	case apierrors.IsSafetyError(err):
		return "Blocked by content safety. See safety_threshold in config.json"
	case apierrors.IsNetworkError(err):
		return "Check your internet connection"
	case apierrors.IsTimeoutError(err):
		return "The request timed out or was cancelled. Try again"
	case apierrors.GetKind(err) == apierrors.KindParse:
		return "The service returned an unexpected response"
	default:
		return ""
	}
}

// formatError renders an error entry with its HTTP status and hint
func formatError(s Styles, err error) string {
	var sb strings.Builder

	sb.WriteString(s.Error.Render(fmt.Sprintf("Error: %v", err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Hint.Render(fmt.Sprintf("  HTTP status %d", status)))
	}

	if hint := ErrorHint(err); hint != "" {
		sb.WriteString("\n")
		sb.WriteString(s.ErrorHint.Render("  " + hint))
	}

	return sb.String()
}
