package cfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/code1iners/ce1pers/pkg/validator"

	"github.com/goccy/go-yaml"
)

// Providers YAML config file path
const defaultProvidersYAMLPath = "internal/cfg/providers.yaml"

// ProviderSettings are the non-secret client settings of one provider.
type ProviderSettings struct {
	ClientID    string            `yaml:"client_id"`
	RedirectURI string            `yaml:"redirect_uri"`
	Scope       string            `yaml:"scope"`
	Version     string            `yaml:"version"`
	PKCE        bool              `yaml:"pkce"`
	Params      map[string]string `yaml:"params"`
}

// ProvidersConfig maps a provider name to its client settings.
type ProvidersConfig map[string]ProviderSettings

type providersYAML struct {
	Providers ProvidersConfig `yaml:"providers"`
}

func (l *Loader) loadProviders() ProvidersConfig {
	path := l.getEnvWithDefault("PROVIDERS_CONFIG_PATH", defaultProvidersYAMLPath)

	providers, err := LoadProvidersFile(path)
	if err != nil {
		l.errs = append(l.errs, errors.New("failed to load providers yaml config: "+err.Error()))
		return nil
	}

	for name, p := range providers {
		if err := validator.ValidateProvider(name); err != nil {
			l.errs = append(l.errs, fmt.Errorf("provider %q: %w", name, err))
			continue
		}
		// NAME_CLIENT_ID overrides the file so deployments can keep one YAML
		if id := os.Getenv(envPrefix(name) + "_CLIENT_ID"); id != "" {
			p.ClientID = id
		}
		if p.ClientID == "" {
			l.errs = append(l.errs, fmt.Errorf("provider %s: missing client_id", name))
		}
		if err := validator.ValidateRedirectURI(p.RedirectURI); err != nil {
			l.errs = append(l.errs, fmt.Errorf("provider %s: redirect_uri: %w", name, err))
		}
		providers[name] = p
	}
	return providers
}

// LoadProvidersFile reads provider settings from a YAML file.
func LoadProvidersFile(path string) (ProvidersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc providersYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if doc.Providers == nil {
		doc.Providers = ProvidersConfig{}
	}
	return doc.Providers, nil
}

func envPrefix(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
