package oauth2

import (
	"context"

	xoauth2 "golang.org/x/oauth2"
)

// AppleParams are the Sign in with Apple authorization request parameters.
type AppleParams struct {
	// ClientID is the App ID or Services ID. Required.
	ClientID string `url:"client_id,omitempty"`
	// RedirectURI must be HTTPS and registered for the Services ID. Required.
	RedirectURI string `url:"redirect_uri,omitempty"`
	// ResponseType is "code" (default) or "code id_token".
	ResponseType string `url:"response_type,omitempty"`
	Nonce        string `url:"nonce,omitempty"`
	// ResponseMode is one of query, fragment, form_post.
	ResponseMode string `url:"response_mode,omitempty"`
	// Scope defaults to "name email".
	Scope string `url:"scope,omitempty"`
	State string `url:"state,omitempty"`
}

// AppleProvider returns the Sign in with Apple configuration.
func AppleProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:      ProviderApple,
		AuthURL:   "https://appleid.apple.com/auth/authorize",
		TokenURL:  "https://appleid.apple.com/auth/token",
		AuthStyle: xoauth2.AuthStyleInParams,
		Fields: []FieldRule{
			{Name: "client_id", Required: true},
			{Name: "redirect_uri", Required: true},
			{Name: "response_type", Default: "code", OneOf: []string{"code", "code id_token"}},
			{Name: "scope", Default: "name email"},
			{Name: "response_mode", OneOf: []string{"query", "fragment", "form_post"}},
			{Name: "nonce"},
			{Name: "state"},
		},
	}
}

// MakeAppleLoginURL builds the Apple authorization URL.
func MakeAppleLoginURL(p AppleParams) (string, error) {
	return buildURL(AppleProvider(), "", p)
}

// AppleLogin builds the Apple authorization URL and navigates to it.
func AppleLogin(ctx context.Context, nav Navigator, p AppleParams) error {
	u, err := MakeAppleLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
