package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyAPIKey             = "api.key"
	KeyAPISecret          = "api.secret"
	KeyAPIBaseURL         = "api.base_url"
	KeyOutputFile         = "output.file"
	KeyOutputFormat       = "output.format"
	KeyIncludeNonbillable = "output.include_nonbillable"
)

const defaultBaseURL = "https://api.early.app/api/v4"

// Config is built once at startup and passed by value into the pipeline;
// no component reads environment state on its own.
type Config struct {
	API    APIConfig    `mapstructure:"api" validate:"required"`
	Output OutputConfig `mapstructure:"output"`
}

type APIConfig struct {
	Key     string `mapstructure:"key" validate:"required"`
	Secret  string `mapstructure:"secret" validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type OutputConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`

	// Resolved from the raw INCLUDE_NONBILLABLE value: only the literal
	// string "true" enables inclusion.
	IncludeNonbillable bool `mapstructure:"-"`
}

// SetDefaults sets default values if not provided.
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// BindEnv wires the recognized environment variables. Credentials accept
// both the vendor-prefixed and bare names, prefixed first.
func BindEnv() {
	bindEnv(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it.
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# earlyexport configuration
api:
  key: ""
  secret: ""
  base_url: "https://api.early.app/api/v4"

output:
  file: "output.csv"
  format: ""
  include_nonbillable: "false"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if strings.TrimSpace(cfg.API.Key) == "" || strings.TrimSpace(cfg.API.Secret) == "" {
		return nil, errors.New("EARLY_API_KEY and EARLY_API_SECRET environment variables are required")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cfg.Output.IncludeNonbillable = strings.TrimSpace(v.GetString(KeyIncludeNonbillable)) == "true"

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, defaultBaseURL)
	v.SetDefault(KeyOutputFile, "output.csv")
	v.SetDefault(KeyOutputFormat, "")
	v.SetDefault(KeyIncludeNonbillable, "false")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv(KeyAPIKey, "EARLY_API_KEY", "API_KEY")
	_ = v.BindEnv(KeyAPISecret, "EARLY_API_SECRET", "API_SECRET")
	_ = v.BindEnv(KeyAPIBaseURL, "EARLY_API_BASE_URL")
	_ = v.BindEnv(KeyOutputFile, "OUTPUT_FILE")
	_ = v.BindEnv(KeyIncludeNonbillable, "INCLUDE_NONBILLABLE")
}
