package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

// Environment variable names
const (
	EnvAPIKey          = "GEMINI_API_KEY"
	EnvArkAPIKey       = "ARK_API_KEY"
	EnvModel           = "GEMINI_MODEL"
	EnvBaseURL         = "GEMINI_BASE_URL"
	EnvTemperature     = "GEMINI_TEMPERATURE"
	EnvTopP            = "GEMINI_TOP_P"
	EnvTopK            = "GEMINI_TOP_K"
	EnvMaxOutputTokens = "GEMINI_MAX_OUTPUT_TOKENS"
	EnvSafetyThreshold = "GEMINI_SAFETY_THRESHOLD"
)

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are kept. Missing files are skipped; with no paths
// it reads ".env" in the working directory.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return apierrors.NewConfigurationError(p, fmt.Sprintf("failed to load env file: %v", err))
		}
	}
	return nil
}

// APIKeyVar returns the credential variable name for a provider
func APIKeyVar(provider string) string {
	if provider == ProviderArk {
		return EnvArkAPIKey
	}
	return EnvAPIKey
}

// ReadAPIKey reads the provider credential. A missing or blank value is a
// ConfigurationError so startup can stop before any UI is shown.
func ReadAPIKey(provider string) (string, error) {
	name := APIKeyVar(provider)
	key := strings.TrimSpace(os.Getenv(name))
	if key == "" {
		return "", apierrors.NewConfigurationError(name, "environment variable is not set")
	}
	return key, nil
}

// applyEnvOverrides copies GEMINI_* overrides onto cfg
func applyEnvOverrides(cfg *Config) error {
	if v := getEnv(EnvModel); v != "" {
		cfg.DefaultModel = v
	}
	if v := getEnv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getEnv(EnvSafetyThreshold); v != "" {
		cfg.SafetyThreshold = strings.ToUpper(v)
	}

	temperature, err := parseOptionalFloatEnv(EnvTemperature)
	if err != nil {
		return err
	}
	if temperature != nil {
		cfg.Generation.Temperature = temperature
	}

	topP, err := parseOptionalFloatEnv(EnvTopP)
	if err != nil {
		return err
	}
	if topP != nil {
		cfg.Generation.TopP = topP
	}

	topK, err := parseOptionalIntEnv(EnvTopK)
	if err != nil {
		return err
	}
	if topK != nil {
		cfg.Generation.TopK = topK
	}

	maxTokens, err := parseOptionalIntEnv(EnvMaxOutputTokens)
	if err != nil {
		return err
	}
	if maxTokens != nil {
		cfg.Generation.MaxOutputTokens = maxTokens
	}

	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	value := getEnv(key)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, apierrors.NewConfigurationError(key, fmt.Sprintf("invalid value %q", value))
	}
	return models.Float64(val), nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	value := getEnv(key)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, apierrors.NewConfigurationError(key, fmt.Sprintf("invalid value %q", value))
	}
	return models.Int(val), nil
}
