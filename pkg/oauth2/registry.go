package oauth2

import (
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/google/go-querystring/query"
)

// Provider names of the built-in configurations.
const (
	ProviderApple         = "apple"
	ProviderFacebook      = "facebook"
	ProviderGoogle        = "google"
	ProviderGoogleChooser = "google-chooser"
	ProviderKakao         = "kakao"
	ProviderLine          = "line"
	ProviderNaver         = "naver"
)

// Registry holds provider configurations by name.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]*ProviderConfig
}

// NewRegistry registers the given providers. Later entries win on duplicate names.
func NewRegistry(list ...*ProviderConfig) *Registry {
	r := &Registry{providers: make(map[string]*ProviderConfig, len(list))}
	for _, p := range list {
		r.providers[p.Name] = p
	}
	return r
}

// DefaultRegistry returns a registry with every built-in provider.
func DefaultRegistry() *Registry {
	return NewRegistry(
		AppleProvider(),
		FacebookProvider(),
		GoogleProvider(),
		GoogleChooserProvider(),
		KakaoProvider(),
		LineProvider(),
		NaverProvider(),
	)
}

// Register adds or replaces a provider configuration.
func (r *Registry) Register(p *ProviderConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name] = p
}

// Get returns a provider by name.
func (r *Registry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AuthCodeURL builds the authorization URL for a named provider from raw query values.
func (r *Registry) AuthCodeURL(name, version string, params url.Values) (string, error) {
	p, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return p.AuthCodeURL(version, params)
}

// buildURL encodes a typed params struct and hands it to the provider config.
func buildURL(p *ProviderConfig, version string, params any) (string, error) {
	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", p.Name, ErrInvalidParams, err)
	}
	return p.AuthCodeURL(version, values)
}
