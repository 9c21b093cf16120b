// Package config loads model configuration for the command line from an
// optional config file and the process environment.
package config

import (
	"fmt"

	"github.com/Yates-Labs/groundqa/internal/answer"
	"github.com/spf13/viper"
)

// Environment variables consulted by Load.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
)

// Load reads the option mapping from path (YAML, JSON or TOML, chosen by
// extension) when path is non-empty, overlays OPENAI_API_KEY and
// OPENAI_BASE_URL from the environment, and converts the result into a
// ModelConfig. Unrecognized keys in the file are ignored.
func Load(path string) (answer.ModelConfig, error) {
	v := viper.New()

	if err := v.BindEnv(answer.KeyAPIKey, EnvAPIKey); err != nil {
		return answer.ModelConfig{}, err
	}
	if err := v.BindEnv(answer.KeyBaseURL, EnvBaseURL); err != nil {
		return answer.ModelConfig{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return answer.ModelConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg, err := answer.ConfigFromMap(v.AllSettings())
	if err != nil {
		return answer.ModelConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
