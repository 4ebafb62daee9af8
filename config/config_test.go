package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_RequiresCredentials(t *testing.T) {
	t.Parallel()

	content := []byte(`api:
  base_url: "https://api.early.app/api/v4"
output:
  file: "output.csv"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for missing credentials")
	}
	if !strings.Contains(err.Error(), "EARLY_API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_AppliesDefaults(t *testing.T) {
	t.Parallel()

	content := []byte(`api:
  key: "k"
  secret: "s"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.API.BaseURL != "https://api.early.app/api/v4" {
		t.Fatalf("unexpected base URL default: %q", cfg.API.BaseURL)
	}
	if cfg.Output.File != "output.csv" {
		t.Fatalf("unexpected output file default: %q", cfg.Output.File)
	}
	if cfg.Output.IncludeNonbillable {
		t.Fatalf("nonbillable entries must be excluded by default")
	}
}

func TestValidateYAMLContent_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	content := []byte(`api:
  key: "k"
  secret: "s"
  base_url: "not a url"
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for invalid base URL")
	}
}

func TestValidateYAMLContent_IncludeNonbillableIsLiteralTrue(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"true": true,
		"TRUE": false,
		"yes":  false,
		"1":    false,
		"":     false,
	}

	for value, want := range cases {
		content := []byte(`api:
  key: "k"
  secret: "s"
output:
  include_nonbillable: "` + value + `"
`)
		cfg, err := ValidateYAMLContent(content)
		if err != nil {
			t.Fatalf("value %q: %v", value, err)
		}
		if cfg.Output.IncludeNonbillable != want {
			t.Fatalf("value %q: IncludeNonbillable = %v, want %v", value, cfg.Output.IncludeNonbillable, want)
		}
	}
}

func TestExampleYAML_ValidatesWithCredentials(t *testing.T) {
	t.Parallel()

	// The template ships empty credentials on purpose; filling them in must
	// produce a valid config.
	content := strings.Replace(ExampleYAML(), `key: ""`, `key: "k"`, 1)
	content = strings.Replace(content, `secret: ""`, `secret: "s"`, 1)

	if _, err := ValidateYAMLContent([]byte(content)); err != nil {
		t.Fatalf("example config should validate: %v", err)
	}
}
