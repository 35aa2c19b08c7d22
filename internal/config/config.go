// Package config loads awscmdlet settings from defaults, an optional YAML
// file, environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nandemo-ya/awscmdlet/internal/awsclient"
	"github.com/nandemo-ya/awscmdlet/internal/logging"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "AWSCMDLET"

// Config represents the awscmdlet configuration
type Config struct {
	AWS        AWSConfig        `yaml:"aws" mapstructure:"aws"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Invocation InvocationConfig `yaml:"invocation" mapstructure:"invocation"`
}

// AWSConfig represents how service clients are built
type AWSConfig struct {
	Region             string        `yaml:"region" mapstructure:"region"`
	Profile            string        `yaml:"profile" mapstructure:"profile"`
	Endpoint           string        `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID        string        `yaml:"accessKeyID" mapstructure:"accessKeyID"`
	SecretAccessKey    string        `yaml:"secretAccessKey" mapstructure:"secretAccessKey"`
	SessionToken       string        `yaml:"sessionToken" mapstructure:"sessionToken"`
	MaxAttempts        int           `yaml:"maxAttempts" mapstructure:"maxAttempts"`
	Timeout            time.Duration `yaml:"timeout" mapstructure:"timeout"`
	InsecureSkipVerify bool          `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

// OutputConfig represents result rendering
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig represents diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// InvocationConfig holds defaults applied to every invocation
type InvocationConfig struct {
	// Lenient turns missing required parameters into warnings.
	Lenient         bool `yaml:"lenient" mapstructure:"lenient"`
	NoAutoIteration bool `yaml:"noAutoIteration" mapstructure:"noAutoIteration"`
}

var (
	v        *viper.Viper
	instance *Config
	initOnce sync.Once
	mu       sync.RWMutex
)

// ResetConfig resets the configuration instance (for testing)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	v = nil
	instance = nil
	initOnce = sync.Once{}
}

// InitConfig initializes the configuration with Viper
func InitConfig() {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		v = viper.New()

		v.SetDefault("aws.region", awsclient.DefaultRegion)
		v.SetDefault("aws.profile", "")
		v.SetDefault("aws.endpoint", "")
		v.SetDefault("aws.accessKeyID", "")
		v.SetDefault("aws.secretAccessKey", "")
		v.SetDefault("aws.sessionToken", "")
		v.SetDefault("aws.maxAttempts", 3)
		v.SetDefault("aws.timeout", 30*time.Second)
		v.SetDefault("aws.insecureSkipVerify", false)

		v.SetDefault("output.format", "json")

		v.SetDefault("log.level", "warn")
		v.SetDefault("log.format", "text")

		v.SetDefault("invocation.lenient", false)
		v.SetDefault("invocation.noAutoIteration", false)

		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		bindSDKEnvVars()
	})
}

// bindSDKEnvVars lets the standard AWS variables stand in for the prefixed ones
func bindSDKEnvVars() {
	_ = v.BindEnv("aws.region", "AWSCMDLET_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION")
	_ = v.BindEnv("aws.profile", "AWSCMDLET_AWS_PROFILE", "AWS_PROFILE")
	_ = v.BindEnv("aws.endpoint", "AWSCMDLET_AWS_ENDPOINT", "AWS_ENDPOINT_URL")
	_ = v.BindEnv("aws.maxAttempts", "AWSCMDLET_AWS_MAXATTEMPTS", "AWS_MAX_ATTEMPTS")
}

// LoadConfig loads configuration from a file. An empty path searches the
// standard locations and tolerates a missing file.
func LoadConfig(configPath string) (*Config, error) {
	InitConfig()

	mu.Lock()
	defer mu.Unlock()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("awscmdlet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.awscmdlet")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	instance = cfg
	return cfg, nil
}

// BindFlag makes an explicitly set command line flag override key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind to %s", key)
	}
	InitConfig()

	mu.Lock()
	defer mu.Unlock()
	return v.BindPFlag(key, flag)
}

// GetConfig returns the current configuration instance
func GetConfig() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := LoadConfig("")
	if err != nil {
		logging.Warn("falling back to default configuration", "error", err)
		return &Config{
			AWS:    AWSConfig{Region: awsclient.DefaultRegion, MaxAttempts: 3, Timeout: 30 * time.Second},
			Output: OutputConfig{Format: "json"},
			Log:    LogConfig{Level: "warn", Format: "text"},
		}
	}
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug":   true,
		"verbose": true,
		"info":    true,
		"warn":    true,
		"error":   true,
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.AWS.Region != "" && len(c.AWS.Region) < 3 {
		return fmt.Errorf("invalid AWS region format: %s", c.AWS.Region)
	}
	if c.AWS.MaxAttempts < 0 {
		return fmt.Errorf("max attempts cannot be negative: %d", c.AWS.MaxAttempts)
	}
	if c.AWS.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.AWS.Timeout)
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		return errors.New("accessKeyID and secretAccessKey must be set together")
	}

	return nil
}

// ClientConfig converts the AWS section into client factory settings
func (c *Config) ClientConfig() awsclient.Config {
	return awsclient.Config{
		Credentials: awsclient.Credentials{
			AccessKeyID:     c.AWS.AccessKeyID,
			SecretAccessKey: c.AWS.SecretAccessKey,
			SessionToken:    c.AWS.SessionToken,
		},
		Region:             c.AWS.Region,
		Profile:            c.AWS.Profile,
		Endpoint:           c.AWS.Endpoint,
		InsecureSkipVerify: c.AWS.InsecureSkipVerify,
		Timeout:            c.AWS.Timeout,
		MaxAttempts:        c.AWS.MaxAttempts,
	}
}

// LoggingConfig converts the log section into logger settings
func (c *Config) LoggingConfig() *logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Log.Level)
	cfg.Format = c.Log.Format
	return cfg
}
