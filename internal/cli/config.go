package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the pergen configuration from pergen.yaml.
type Config struct {
	// Schema is the path of the .pergen file.
	Schema string `mapstructure:"schema" yaml:"schema"`

	// Generation settings. An empty target means the directory of the schema.
	Target    string   `mapstructure:"target" yaml:"target"`
	Package   string   `mapstructure:"package" yaml:"package"`
	Dialect   string   `mapstructure:"dialect" yaml:"dialect"`
	Header    string   `mapstructure:"header" yaml:"header,omitempty"`
	Features  []string `mapstructure:"features" yaml:"features"`
	Templates []string `mapstructure:"templates" yaml:"templates"`

	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DatabaseConfig holds the settings of "pergen apply".
type DatabaseConfig struct {
	DSN           string        `mapstructure:"dsn" yaml:"dsn"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold" yaml:"slow_threshold"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "schema.pergen")
	v.SetDefault("target", "")
	v.SetDefault("package", "")
	v.SetDefault("dialect", "mysql")
	v.SetDefault("header", "")
	v.SetDefault("features", []string{})
	v.SetDefault("templates", []string{})

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.slow_threshold", 100*time.Millisecond)

	v.SetDefault("log.level", "info")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for pergen.yaml or pergen.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"pergen.yaml", "pergen.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// OutputDir returns the generation target: the configured target, or the
// directory of the schema file.
func (c *Config) OutputDir() string {
	if c.Target != "" {
		return c.Target
	}
	return filepath.Dir(c.Schema)
}
