package config

import (
	"errors"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

// Settings is the fully resolved startup configuration
type Settings struct {
	Config Config
	APIKey string
	Model  models.ModelConfig
}

// LoadOptions carries command-line overrides
type LoadOptions struct {
	Model   string
	Verbose bool
}

// Timeout returns the per-call timeout, or zero for none
func (s *Settings) Timeout() time.Duration {
	if s.Config.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.Config.TimeoutSeconds) * time.Second
}

// Load resolves the config file, environment overrides, command-line
// overrides and the credential. Every failure is a ConfigurationError.
func Load(opts LoadOptions) (*Settings, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, apierrors.NewConfigurationError("config.json", err.Error())
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if opts.Model != "" {
		cfg.DefaultModel = opts.Model
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	apiKey, err := ReadAPIKey(cfg.Provider)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Config: cfg,
		APIKey: apiKey,
		Model:  cfg.ModelConfig(),
	}, nil
}

func thresholdValues() []interface{} {
	all := models.AllThresholds()
	values := make([]interface{}, 0, len(all))
	for _, t := range all {
		values = append(values, string(t))
	}
	return values
}

func categoryValues() []interface{} {
	all := models.AllHarmCategories()
	values := make([]interface{}, 0, len(all))
	for _, c := range all {
		values = append(values, string(c))
	}
	return values
}

// Validate checks value ranges and enum names in cfg
func Validate(cfg Config) error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Provider, validation.Required, validation.In(ProviderGemini, ProviderArk)),
		validation.Field(&cfg.DefaultModel, validation.Required),
		validation.Field(&cfg.TimeoutSeconds, validation.Min(0)),
		validation.Field(&cfg.SafetyThreshold, validation.In(thresholdValues()...)),
		validation.Field(&cfg.Safety, validation.Each(validation.In(thresholdValues()...))),
	)
	if err != nil {
		return toConfigurationError(err)
	}

	for category := range cfg.Safety {
		if err := validation.Validate(category, validation.In(categoryValues()...)); err != nil {
			return apierrors.NewConfigurationError("safety", "unknown harm category "+category)
		}
	}

	gen := cfg.Generation
	err = validation.ValidateStruct(&gen,
		validation.Field(&gen.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&gen.TopP, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&gen.TopK, validation.Min(0)),
		validation.Field(&gen.MaxOutputTokens, validation.Min(1), validation.Max(65536)),
	)
	if err != nil {
		return toConfigurationError(err)
	}

	return nil
}

// toConfigurationError reports the first failing field in name order
func toConfigurationError(err error) error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierrors.NewConfigurationError("", err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	first := fields[0]
	return apierrors.NewConfigurationError(first, verrs[first].Error())
}
