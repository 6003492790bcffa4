package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ajitpratap0/strata/pkg/errors"
)

// envPrefix namespaces environment overrides, e.g. STRATA_INFERENCE_DELIMITER.
const envPrefix = "STRATA"

// LoadWithOverrides builds a Config from defaults, an optional YAML file,
// and STRATA_* environment variables, in increasing precedence.
func LoadWithOverrides(filePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("inference.buffer_size", defaults.Inference.BufferSize)
	v.SetDefault("inference.delimiter", defaults.Inference.Delimiter)
	v.SetDefault("inference.overflow_policy", string(defaults.Inference.OverflowPolicy))
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.encoding", defaults.Logging.Encoding)
	v.SetDefault("logging.development", defaults.Logging.Development)

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
		}
	}

	cfg := &Config{
		Inference: InferenceConfig{
			BufferSize:     v.GetInt("inference.buffer_size"),
			Delimiter:      v.GetString("inference.delimiter"),
			OverflowPolicy: OverflowPolicy(v.GetString("inference.overflow_policy")),
		},
		Logging: LoggingConfig{
			Level:       v.GetString("logging.level"),
			Encoding:    v.GetString("logging.encoding"),
			Development: v.GetBool("logging.development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
