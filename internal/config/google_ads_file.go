package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// googleAdsFile mirrors the google-ads.yaml layout used by the official client libraries.
type googleAdsFile struct {
	DeveloperToken  string `yaml:"developer_token"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	RefreshToken    string `yaml:"refresh_token"`
	LoginCustomerID any    `yaml:"login_customer_id"`
}

// mergeFile fills the credentials left empty by the environment.
func (g *GoogleAds) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigurationFile, path, err)
	}

	var file googleAdsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigurationFile, path, err)
	}

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&g.DeveloperToken, file.DeveloperToken)
	fill(&g.ClientID, file.ClientID)
	fill(&g.ClientSecret, file.ClientSecret)
	fill(&g.RefreshToken, file.RefreshToken)
	if file.LoginCustomerID != nil {
		fill(&g.LoginCustomerID, fmt.Sprint(file.LoginCustomerID))
	}

	return nil
}
