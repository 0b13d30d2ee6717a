// Package models contains data types and constants for the Gemini API.
package models

// Endpoints for the Gemini generative language API
const (
	EndpointBase     = "https://generativelanguage.googleapis.com"
	EndpointVersion  = "v1beta"
	GenerateMethod   = "generateContent"
	APIKeyHeader     = "x-goog-api-key"
	DefaultUserAgent = "geminichat/0.1"
)

// Known model names
const (
	Model15ProLatest = "gemini-1.5-pro-latest"
	Model15Flash     = "gemini-1.5-flash"
	Model25Flash     = "gemini-2.5-flash"
	Model25Pro       = "gemini-2.5-pro"

	// DefaultModel is the model used when nothing else is configured
	DefaultModel = Model15ProLatest
)

// AllModels returns the list of known model names
func AllModels() []string {
	return []string{Model15ProLatest, Model15Flash, Model25Flash, Model25Pro}
}

// IsKnownModel reports whether name is one of AllModels.
// Unknown names are still sent to the API as-is.
func IsKnownModel(name string) bool {
	for _, m := range AllModels() {
		if m == name {
			return true
		}
	}
	return false
}

// DefaultHeaders returns the default headers for generateContent requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   DefaultUserAgent,
	}
}
