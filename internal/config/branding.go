package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// BrandingConfig represents the structure of the branding.yaml file.
// Display settings that are easier to manage in YAML than env vars.
type BrandingConfig struct {
	SiteTitle   string `yaml:"site_title,omitempty"`
	SiteTagline string `yaml:"site_tagline,omitempty"`
	SiteFooter  string `yaml:"site_footer,omitempty"`
}

// LoadBranding loads the YAML branding file.
// Path is determined by BRANDING_FILE env var, defaulting to "branding.yaml".
// Returns nil without error if the branding file doesn't exist.
func LoadBranding() (*BrandingConfig, error) {
	path := getEnv("BRANDING_FILE", "branding.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Branding file is optional
			return nil, nil
		}
		return nil, err
	}

	var b BrandingConfig
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

// ApplyBranding overlays non-empty branding values on the config.
func (c *Config) ApplyBranding(b *BrandingConfig) {
	if b == nil {
		return
	}
	if b.SiteTitle != "" {
		c.SiteTitle = b.SiteTitle
	}
	if b.SiteTagline != "" {
		c.SiteTagline = b.SiteTagline
	}
	if b.SiteFooter != "" {
		c.SiteFooter = b.SiteFooter
	}
}
