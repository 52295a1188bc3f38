package oauth2

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	xoauth2 "golang.org/x/oauth2"
)

// versionPlaceholder is substituted in endpoint templates that carry an API version.
const versionPlaceholder = "{version}"

// FieldRule describes how a single query parameter is treated by a provider.
type FieldRule struct {
	Name     string
	Required bool
	// Default is applied when the caller leaves the field empty.
	Default string
	// OneOf restricts the value to an enumeration. Empty means any value.
	OneOf []string
	// Separator splits multi-valued fields (space for Google prompt, comma for Kakao prompt)
	// before checking every item against OneOf.
	Separator string
}

// ProviderConfig is the per-provider configuration record consumed by the shared
// query serialisation routine.
type ProviderConfig struct {
	Name string
	// AuthURL and TokenURL may contain {version}.
	AuthURL        string
	TokenURL       string
	DefaultVersion string
	AuthStyle      xoauth2.AuthStyle
	Fields         []FieldRule
}

// Rule returns the rule declared for the given query key.
func (p *ProviderConfig) Rule(name string) (FieldRule, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldRule{}, false
}

// EndpointURL returns the authorization endpoint with the version substituted.
// An empty version falls back to the provider default.
func (p *ProviderConfig) EndpointURL(version string) string {
	return p.expand(p.AuthURL, version)
}

// Endpoint returns the provider endpoints for callers that exchange the
// authorization code themselves.
func (p *ProviderConfig) Endpoint(version string) xoauth2.Endpoint {
	return xoauth2.Endpoint{
		AuthURL:   p.expand(p.AuthURL, version),
		TokenURL:  p.expand(p.TokenURL, version),
		AuthStyle: p.AuthStyle,
	}
}

func (p *ProviderConfig) expand(template, version string) string {
	if !strings.Contains(template, versionPlaceholder) {
		return template
	}
	if version == "" {
		version = p.DefaultVersion
	}
	if version == "" {
		return template
	}
	return strings.ReplaceAll(template, versionPlaceholder, url.PathEscape(version))
}

// AuthCodeURL merges params over the provider defaults, validates the result and
// returns the absolute authorization URL. params is not modified.
// A version is rejected for providers whose endpoint is not versioned.
func (p *ProviderConfig) AuthCodeURL(version string, params url.Values) (string, error) {
	if version != "" && !strings.Contains(p.AuthURL, versionPlaceholder) {
		return "", &ParamError{
			Provider: p.Name,
			Field:    "version",
			Err:      fmt.Errorf("%w: %q: endpoint is not versioned", ErrInvalidValue, version),
		}
	}

	merged := p.withDefaults(params)

	if err := p.validate(merged); err != nil {
		return "", err
	}

	endpoint := p.EndpointURL(version)
	if endpoint == "" || strings.Contains(endpoint, versionPlaceholder) {
		return "", &ParamError{Provider: p.Name, Field: "version", Err: ErrMissingField}
	}

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + merged.Encode(), nil
}

func (p *ProviderConfig) withDefaults(params url.Values) url.Values {
	merged := make(url.Values, len(params)+len(p.Fields))
	for _, f := range p.Fields {
		if f.Default != "" {
			merged.Set(f.Name, f.Default)
		}
	}
	for k, vs := range params {
		vs = slices.DeleteFunc(slices.Clone(vs), func(v string) bool { return v == "" })
		if len(vs) == 0 {
			continue
		}
		merged[k] = vs
	}
	return merged
}

// validate checks declared fields. A declared field may carry one value only;
// multi-item fields use their separator instead of repeated keys.
func (p *ProviderConfig) validate(values url.Values) error {
	for _, f := range p.Fields {
		vs := values[f.Name]
		if len(vs) == 0 {
			if f.Required {
				return &ParamError{Provider: p.Name, Field: f.Name, Err: ErrMissingField}
			}
			continue
		}
		if len(vs) > 1 {
			return &ParamError{
				Provider: p.Name,
				Field:    f.Name,
				Err:      fmt.Errorf("%w: repeated %d times", ErrInvalidValue, len(vs)),
			}
		}
		v := vs[0]
		if len(f.OneOf) == 0 {
			continue
		}
		items := []string{v}
		switch f.Separator {
		case "":
		case " ":
			items = strings.Fields(v)
		default:
			items = strings.Split(v, f.Separator)
		}
		for _, item := range items {
			if !slices.Contains(f.OneOf, strings.TrimSpace(item)) {
				return &ParamError{
					Provider: p.Name,
					Field:    f.Name,
					Err:      fmt.Errorf("%w: %q", ErrInvalidValue, item),
				}
			}
		}
	}
	return nil
}
