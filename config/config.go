package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	// DefaultKMABaseURL is the short-term (village) forecast endpoint of the public data portal.
	DefaultKMABaseURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getVilageFcst"
)

type Config struct {
	App      AppConfig      `yaml:"app" envconfig:"APP"`
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	KMA      KMAConfig      `yaml:"kma" envconfig:"KMA"`
	Location LocationConfig `yaml:"location" envconfig:"LOCATION"`
	Log      LogConfig      `yaml:"log" envconfig:"LOG"`
	Sentry   SentryConfig   `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type KMAConfig struct {
	BaseURL    string          `yaml:"base_url" envconfig:"BASE_URL"`
	ServiceKey string          `yaml:"service_key" envconfig:"SERVICE_KEY"`
	Timeout    time.Duration   `yaml:"timeout" envconfig:"TIMEOUT"`
	NumOfRows  int             `yaml:"num_of_rows" envconfig:"NUM_OF_ROWS"`
	RateLimit  RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	CacheTTL   time.Duration   `yaml:"cache_ttl" envconfig:"CACHE_TTL"`
}

// RateLimitConfig disables limiting when RPS is zero.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" envconfig:"RPS"`
	Burst int     `yaml:"burst" envconfig:"BURST"`
}

type LocationConfig struct {
	Name     string `yaml:"name" envconfig:"NAME"`
	NX       int    `yaml:"nx" envconfig:"NX"`
	NY       int    `yaml:"ny" envconfig:"NY"`
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE"`
	Locale   string `yaml:"locale" envconfig:"LOCALE"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file and then applies environment overrides.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Default returns the configuration of the Yangju grid cell with the portal defaults.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "kma-forecast",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		KMA: KMAConfig{
			BaseURL:   DefaultKMABaseURL,
			Timeout:   10 * time.Second,
			NumOfRows: 100,
			RateLimit: RateLimitConfig{
				RPS:   5,
				Burst: 5,
			},
			CacheTTL: 10 * time.Minute,
		},
		Location: LocationConfig{
			Name:     "양주시",
			NX:       62,
			NY:       128,
			Timezone: "Asia/Seoul",
			Locale:   "ko",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	config := Default()

	if err := p.loadFromFile(config); err != nil {
		return nil, err
	}

	// Only variables that are set override file values.
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return config, nil
}

// loadFromFile tolerates a missing file.
func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var errs []error

	if strings.TrimSpace(config.App.Name) == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if config.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if config.KMA.BaseURL == "" {
		errs = append(errs, errors.New("kma.base_url is required"))
	}
	if strings.TrimSpace(config.KMA.ServiceKey) == "" {
		errs = append(errs, errors.New("kma.service_key is required"))
	}
	if config.KMA.Timeout <= 0 {
		errs = append(errs, errors.New("kma.timeout must be positive"))
	}
	if config.KMA.NumOfRows <= 0 || config.KMA.NumOfRows > 1000 {
		errs = append(errs, errors.New("kma.num_of_rows must be between 1 and 1000"))
	}
	if config.KMA.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("kma.rate_limit.rps cannot be negative"))
	}
	if config.KMA.RateLimit.RPS > 0 && config.KMA.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("kma.rate_limit.burst must be at least 1"))
	}
	if config.Location.NX < 1 || config.Location.NX > 149 || config.Location.NY < 1 || config.Location.NY > 253 {
		errs = append(errs, fmt.Errorf("location grid (%d,%d) is outside the forecast grid", config.Location.NX, config.Location.NY))
	}
	if config.Location.Locale != "ko" && config.Location.Locale != "en" {
		errs = append(errs, fmt.Errorf("location.locale %q is not supported", config.Location.Locale))
	}

	return errors.Join(errs...)
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	config, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// TimeLocation returns the configured zone, or a fixed +09:00 zone when the zone database is missing.
func (c *Config) TimeLocation() *time.Location {
	if loc, err := time.LoadLocation(c.Location.Timezone); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}
