package answer

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 150
	DefaultBaseURL     = "https://api.openai.com/v1/"
)

// Configuration keys recognized by ConfigFromMap.
const (
	KeyAPIKey      = "api_key"
	KeyName        = "name"
	KeyTemperature = "temperature"
	KeyMaxTokens   = "max_tokens"
	KeyBaseURL     = "base_url"
)

// ModelConfig holds the caller-supplied model options. Nil optional fields
// fall back to the package defaults when resolved.
type ModelConfig struct {
	// APIKey is the bearer credential for the chat-completion API.
	// The mock generator ignores it.
	APIKey string

	// Name is the model identifier (e.g. "gpt-4o-mini", "gpt-4")
	Name *string

	// Temperature controls sampling randomness. An explicit 0 is honored.
	Temperature *float64

	// MaxTokens caps the response length
	MaxTokens *int

	// BaseURL points the client at an OpenAI-compatible endpoint.
	// Empty means DefaultBaseURL.
	BaseURL string
}

// Params are the resolved generation parameters sent with a request.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Resolve fills in defaults for every option the config leaves unset.
func (c ModelConfig) Resolve() Params {
	p := Params{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	if c.Name != nil {
		p.Model = *c.Name
	}
	if c.Temperature != nil {
		p.Temperature = *c.Temperature
	}
	if c.MaxTokens != nil {
		p.MaxTokens = *c.MaxTokens
	}
	return p
}

// WithName returns a copy of the config using the given model.
func (c ModelConfig) WithName(name string) ModelConfig {
	c.Name = &name
	return c
}

// WithTemperature returns a copy of the config using the given temperature.
func (c ModelConfig) WithTemperature(t float64) ModelConfig {
	c.Temperature = &t
	return c
}

// WithMaxTokens returns a copy of the config using the given token cap.
func (c ModelConfig) WithMaxTokens(n int) ModelConfig {
	c.MaxTokens = &n
	return c
}

// ConfigFromMap builds a ModelConfig from a loosely typed option mapping.
// Unrecognized keys are ignored; recognized keys with values that cannot be
// coerced to the expected type are rejected.
func ConfigFromMap(m map[string]any) (ModelConfig, error) {
	var cfg ModelConfig

	if v, ok := m[KeyAPIKey]; ok && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return ModelConfig{}, invalidKey(KeyAPIKey, err)
		}
		cfg.APIKey = s
	}

	if v, ok := m[KeyName]; ok && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return ModelConfig{}, invalidKey(KeyName, err)
		}
		cfg.Name = &s
	}

	if v, ok := m[KeyTemperature]; ok && v != nil {
		f, err := toFloat(v)
		if err != nil {
			return ModelConfig{}, invalidKey(KeyTemperature, err)
		}
		cfg.Temperature = &f
	}

	if v, ok := m[KeyMaxTokens]; ok && v != nil {
		n, err := toInt(v)
		if err != nil {
			return ModelConfig{}, invalidKey(KeyMaxTokens, err)
		}
		cfg.MaxTokens = &n
	}

	if v, ok := m[KeyBaseURL]; ok && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return ModelConfig{}, invalidKey(KeyBaseURL, err)
		}
		cfg.BaseURL = s
	}

	return cfg, nil
}

// toFloat rejects booleans, which cast would otherwise turn into 0 or 1.
func toFloat(v any) (float64, error) {
	if _, ok := v.(bool); ok {
		return 0, fmt.Errorf("boolean %v is not a number", v)
	}
	return cast.ToFloat64E(v)
}

// toInt rejects booleans and floats with a fractional part instead of
// truncating them.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case bool:
		return 0, fmt.Errorf("boolean %v is not an integer", n)
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
	case float32:
		if float64(n) != math.Trunc(float64(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
	}
	return cast.ToIntE(v)
}

func invalidKey(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
}
