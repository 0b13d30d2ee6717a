package models

// HarmCategory names a content-safety hazard category
type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmBlockThreshold is the enforcement level for a HarmCategory
type HarmBlockThreshold string

const (
	BlockNone             HarmBlockThreshold = "BLOCK_NONE"
	BlockOnlyHigh         HarmBlockThreshold = "BLOCK_ONLY_HIGH"
	BlockMediumAndAbove   HarmBlockThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockLowAndAbove      HarmBlockThreshold = "BLOCK_LOW_AND_ABOVE"
	BlockThresholdDefault HarmBlockThreshold = "HARM_BLOCK_THRESHOLD_UNSPECIFIED"
)

// AllHarmCategories returns the categories configured on every request
func AllHarmCategories() []HarmCategory {
	return []HarmCategory{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	}
}

// AllThresholds returns the accepted threshold names
func AllThresholds() []HarmBlockThreshold {
	return []HarmBlockThreshold{
		BlockNone,
		BlockOnlyHigh,
		BlockMediumAndAbove,
		BlockLowAndAbove,
		BlockThresholdDefault,
	}
}

// IsValid reports whether t is a threshold the API accepts
func (t HarmBlockThreshold) IsValid() bool {
	for _, v := range AllThresholds() {
		if v == t {
			return true
		}
	}
	return false
}

// SafetySetting pairs a category with its threshold
type SafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}

// GenerationConfig holds sampling and length controls.
// Nil fields are omitted from the request so the server default applies.
type GenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	TopP            *float64 `json:"topP,omitempty"`
	TopK            *int     `json:"topK,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// ModelConfig is the fixed record sent with every remote call of a session
type ModelConfig struct {
	Model             string
	Generation        GenerationConfig
	Safety            []SafetySetting
	SystemInstruction string
}

// UniformSafety returns settings for every category at the same threshold
func UniformSafety(threshold HarmBlockThreshold) []SafetySetting {
	categories := AllHarmCategories()
	settings := make([]SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, SafetySetting{Category: c, Threshold: threshold})
	}
	return settings
}

// DefaultGenerationConfig returns temperature 1, top_p 0.95, top_k 0, 8192 output tokens
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     Float64(1),
		TopP:            Float64(0.95),
		TopK:            Int(0),
		MaxOutputTokens: Int(8192),
	}
}

// DefaultModelConfig returns the configuration used when nothing is overridden
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Model:      DefaultModel,
		Generation: DefaultGenerationConfig(),
		Safety:     UniformSafety(BlockNone),
	}
}

// Clone returns a deep copy so callers cannot mutate shared state
func (c ModelConfig) Clone() ModelConfig {
	out := c
	out.Generation = GenerationConfig{
		Temperature:     cloneFloat(c.Generation.Temperature),
		TopP:            cloneFloat(c.Generation.TopP),
		TopK:            cloneInt(c.Generation.TopK),
		MaxOutputTokens: cloneInt(c.Generation.MaxOutputTokens),
	}
	if c.Safety != nil {
		out.Safety = make([]SafetySetting, len(c.Safety))
		copy(out.Safety, c.Safety)
	}
	return out
}

// Float64 returns a pointer to v
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
