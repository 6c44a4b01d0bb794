package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Form    FormConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

// FormConfig controls the quiz form behaviour.
type FormConfig struct {
	// SchemaFile overrides the embedded form schema when set.
	SchemaFile string
	// ErrorDisplay is "touched" or "all".
	ErrorDisplay string
	// SubmitDelay is the artificial delay before a valid submit completes.
	SubmitDelay time.Duration
	// SessionTTL bounds how long an idle form session is kept.
	SessionTTL time.Duration
	// Store selects the session cache: "redis" or "memory".
	Store string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("form.error_display", "touched")
	v.SetDefault("form.submit_delay", "400ms")
	v.SetDefault("form.session_ttl", "30m")
	v.SetDefault("form.store", "memory")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "quizform")
}

// LoadConfig reads config.yaml from the working directory, ./config or ./configs and
// applies environment overrides. A missing file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Form: FormConfig{
			SchemaFile:   v.GetString("form.schema_file"),
			ErrorDisplay: v.GetString("form.error_display"),
			SubmitDelay:  v.GetDuration("form.submit_delay"),
			SessionTTL:   v.GetDuration("form.session_ttl"),
			Store:        strings.ToLower(v.GetString("form.store")),
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("metrics.enabled"),
			Namespace: v.GetString("metrics.namespace"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" && env != "test" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Form.SubmitDelay < 0 {
		return fmt.Errorf("form.submit_delay must not be negative")
	}
	if c.Form.SessionTTL <= 0 {
		return fmt.Errorf("form.session_ttl must be positive")
	}
	switch c.Form.Store {
	case "memory":
	case "redis":
		if c.Redis.Address == "" {
			return fmt.Errorf("form.store is redis but redis.address is empty")
		}
	default:
		return fmt.Errorf("unsupported form.store %q", c.Form.Store)
	}
	switch strings.ToLower(c.Form.ErrorDisplay) {
	case "touched", "all":
	default:
		return fmt.Errorf("unsupported form.error_display %q", c.Form.ErrorDisplay)
	}
	return nil
}
