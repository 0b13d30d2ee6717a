// Package errors provides custom error types for the geminichat client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrConfiguration = errors.New("configuration error")
	ErrRemoteCall    = errors.New("remote call failed")
	ErrEmptyInput    = errors.New("input is empty")
	ErrSessionBusy   = errors.New("a message is already being sent")
	ErrClientClosed  = errors.New("client is closed")
)

// ConfigurationError represents a missing or invalid startup setting
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ConfigurationError) Is(target error) bool {
	if target == ErrConfiguration {
		return true
	}
	_, ok := target.(*ConfigurationError)
	return ok
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

// Kind classifies why a remote call failed
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindQuota
	KindSafety
	KindTimeout
	KindAPI
	KindParse
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindQuota:
		return "quota"
	case KindSafety:
		return "safety"
	case KindTimeout:
		return "timeout"
	case KindAPI:
		return "api"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// KindFromStatus maps an HTTP status code to a Kind
func KindFromStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindQuota
	case status == 408 || status == 504:
		return KindTimeout
	case status >= 400:
		return KindAPI
	default:
		return KindUnknown
	}
}

// RemoteCallError represents any failure of a call to the model service
type RemoteCallError struct {
	Kind       Kind
	StatusCode int
	Endpoint   string
	Message    string
	Body       string // Truncated response body for diagnostics
	Err        error
}

func (e *RemoteCallError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote call failed (%s) [%d]: %s", e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("remote call failed (%s): %s", e.Kind, msg)
}

// Unwrap returns the underlying cause
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *RemoteCallError) Is(target error) bool {
	if target == ErrRemoteCall {
		return true
	}
	_, ok := target.(*RemoteCallError)
	return ok
}

// NewRemoteCallError creates a RemoteCallError of the given kind
func NewRemoteCallError(kind Kind, message string, cause error) *RemoteCallError {
	return &RemoteCallError{Kind: kind, Message: message, Err: cause}
}

// NewNetworkError wraps a transport failure
func NewNetworkError(endpoint string, cause error) *RemoteCallError {
	return &RemoteCallError{
		Kind:     KindNetwork,
		Endpoint: endpoint,
		Message:  "network request failed",
		Err:      cause,
	}
}

// NewStatusError creates a RemoteCallError from a non-2xx response
func NewStatusError(status int, endpoint, message, body string) *RemoteCallError {
	if len(body) > 4096 {
		body = body[:4096]
	}
	return &RemoteCallError{
		Kind:       KindFromStatus(status),
		StatusCode: status,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// NewSafetyError creates a RemoteCallError for a reply blocked by content safety
func NewSafetyError(reason string) *RemoteCallError {
	return &RemoteCallError{
		Kind:    KindSafety,
		Message: fmt.Sprintf("response blocked: %s", reason),
	}
}

// NewParseError creates a RemoteCallError for an unreadable response
func NewParseError(message string) *RemoteCallError {
	return &RemoteCallError{Kind: KindParse, Message: message}
}

// AsRemoteCallError wraps err as a RemoteCallError unless it already is one
func AsRemoteCallError(err error) error {
	if err == nil {
		return nil
	}
	var rce *RemoteCallError
	if errors.As(err, &rce) {
		return err
	}
	return &RemoteCallError{Kind: KindUnknown, Err: err}
}

func kindOf(err error) Kind {
	var rce *RemoteCallError
	if errors.As(err, &rce) {
		return rce.Kind
	}
	return KindUnknown
}

// GetKind returns the Kind of a RemoteCallError in err's chain
func GetKind(err error) Kind {
	return kindOf(err)
}

// GetHTTPStatus returns the HTTP status carried by err, or 0
func GetHTTPStatus(err error) int {
	var rce *RemoteCallError
	if errors.As(err, &rce) {
		return rce.StatusCode
	}
	return 0
}

// IsAuthError reports whether err is an authentication failure
func IsAuthError(err error) bool { return kindOf(err) == KindAuth }

// IsQuotaError reports whether err is a quota or rate-limit failure
func IsQuotaError(err error) bool { return kindOf(err) == KindQuota }

// IsSafetyError reports whether err is a content-safety rejection
func IsSafetyError(err error) bool { return kindOf(err) == KindSafety }

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool { return kindOf(err) == KindNetwork }

// IsTimeoutError reports whether err is a timeout or cancellation
func IsTimeoutError(err error) bool { return kindOf(err) == KindTimeout }

// IsConfigurationError reports whether err is a ConfigurationError
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
