package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/wepin/wepin-common-go/pkg/domain"
	"github.com/wepin/wepin-common-go/pkg/sdkurl"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration. Values come from an optional YAML file and
// are then overlaid with WEPIN_* environment variables.
type Config struct {
	Environment  string `yaml:"environment" env:"WEPIN_ENVIRONMENT" env-default:"development"`
	AppKey       string `yaml:"app_key" env:"WEPIN_APP_KEY"`
	AppID        string `yaml:"app_id" env:"WEPIN_APP_ID"`
	Domain       string `yaml:"domain" env:"WEPIN_DOMAIN"`
	SDKType      string `yaml:"sdk_type" env:"WEPIN_SDK_TYPE" env-default:"go"`
	SDKVersion   string `yaml:"sdk_version" env:"WEPIN_SDK_VERSION" env-default:"0.1.0"`
	Platform     int    `yaml:"platform" env:"WEPIN_PLATFORM"`
	OutputFormat string `yaml:"output_format" env:"WEPIN_OUTPUT_FORMAT" env-default:"console"`

	Attributes     domain.Attribute       `yaml:"attributes"`
	LoginProviders []string               `yaml:"login_providers"`
	URLOverrides   map[string]sdkurl.URLs `yaml:"url_overrides"`
}

// Parser handles loading and validation of configuration files
type Parser struct{}

// NewParser creates a new configuration parser
func NewParser() *Parser {
	return &Parser{}
}

// Load reads filename when it is non-empty, applies the environment overlay and
// validates the result.
func (p *Parser) Load(filename string) (*Config, error) {
	var cfg Config
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.Attributes = cfg.Attributes.WithDefaults()
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))

	if err := p.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks a loaded configuration
func (p *Parser) Validate(cfg *Config) error {
	switch cfg.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("environment must be development or production, got %q", cfg.Environment)
	}

	if cfg.AppKey != "" {
		if _, ok := domain.KeyTypeFromAppKey(cfg.AppKey); !ok {
			return fmt.Errorf("app_key must start with %s, %s or %s", domain.DevKeyPrefix, domain.StageKeyPrefix, domain.ProdKeyPrefix)
		}
	}

	if cfg.Platform < 0 {
		return fmt.Errorf("platform cannot be negative")
	}

	for _, name := range cfg.LoginProviders {
		if _, err := domain.ParseLoginProvider(name); err != nil {
			return fmt.Errorf("login_providers: %w", err)
		}
	}

	for name, urls := range cfg.URLOverrides {
		if _, err := domain.ParseKeyType(name); err != nil {
			return fmt.Errorf("url_overrides: %w", err)
		}
		if err := urls.Validate(); err != nil {
			return fmt.Errorf("url_overrides.%s: %w", name, err)
		}
	}

	return nil
}

// ResolverOptions turns the configured overrides into resolver options
func (c *Config) ResolverOptions(l sdkurl.Logger) ([]sdkurl.Option, error) {
	opts := []sdkurl.Option{sdkurl.WithLogger(l)}
	for name, urls := range c.URLOverrides {
		k, err := domain.ParseKeyType(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkurl.WithOverride(k, urls))
	}
	return opts, nil
}

// RequestHeaders returns the backend identity derived from the configuration
func (c *Config) RequestHeaders() sdkurl.RequestHeaders {
	return sdkurl.RequestHeaders{
		AppKey:  c.AppKey,
		Domain:  c.Domain,
		SDKType: c.SDKType,
		Version: c.SDKVersion,
	}
}

// WidgetAttributes returns the attribute set sent to the widget
func (c *Config) WidgetAttributes() domain.AttributeWithProviders {
	return domain.NewAttributeWithProviders(c.Attributes, c.LoginProviders)
}
