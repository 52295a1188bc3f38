package oauth2

import (
	"context"
	"strings"

	xoauth2 "golang.org/x/oauth2"
)

// DefaultLineVersion is the LINE Login API version used when none is given.
const DefaultLineVersion = "v2.1"

// LineParams are the LINE Login authorization request parameters.
type LineParams struct {
	// Version is the API path segment, not a query parameter.
	Version string `url:"-"`
	// ResponseType must be "code". Required.
	ResponseType string `url:"response_type,omitempty"`
	// ClientID is the LINE Login channel ID.
	ClientID    string `url:"client_id,omitempty"`
	RedirectURI string `url:"redirect_uri,omitempty"`
	State       string `url:"state,omitempty"`
	// Scope is a space separated list such as "profile openid email".
	Scope  string `url:"scope,omitempty"`
	Nonce  string `url:"nonce,omitempty"`
	Prompt string `url:"prompt,omitempty"`
	// MaxAge is the allowed elapsed time in seconds since the last authentication.
	MaxAge              *int   `url:"max_age,omitempty"`
	UILocales           string `url:"ui_locales,omitempty"`
	BotPrompt           string `url:"bot_prompt,omitempty"`
	InitialAMRDisplay   string `url:"initial_amr_display,omitempty"`
	SwitchAMR           *bool  `url:"switch_amr,omitempty"`
	DisableAutoLogin    *bool  `url:"disable_auto_login,omitempty"`
	DisableIOSAutoLogin *bool  `url:"disable_ios_auto_login,omitempty"`
	CodeChallenge       string `url:"code_challenge,omitempty"`
	CodeChallengeMethod string `url:"code_challenge_method,omitempty"`
	ResponseMode        string `url:"response_mode,omitempty"`
}

// LineProvider returns the LINE Login configuration.
func LineProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:           ProviderLine,
		AuthURL:        "https://access.line.me/oauth2/{version}/authorize",
		TokenURL:       "https://api.line.me/oauth2/{version}/token",
		DefaultVersion: DefaultLineVersion,
		AuthStyle:      xoauth2.AuthStyleInParams,
		Fields: []FieldRule{
			{Name: "response_type", Required: true, OneOf: []string{"code"}},
			{Name: "client_id", Required: true},
			{Name: "redirect_uri", Required: true},
			{Name: "state", Required: true},
			{Name: "scope", Required: true},
			{Name: "bot_prompt", OneOf: []string{"normal", "aggressive"}},
			{Name: "code_challenge_method", OneOf: []string{"S256"}},
			{Name: "response_mode", OneOf: []string{"query", "form_post", "query.jwt", "form_post.jwt", "jwt"}},
			{Name: "nonce"},
			{Name: "prompt"},
			{Name: "max_age"},
			{Name: "ui_locales"},
			{Name: "initial_amr_display"},
			{Name: "switch_amr"},
			{Name: "disable_auto_login"},
			{Name: "disable_ios_auto_login"},
			{Name: "code_challenge"},
		},
	}
}

// LineOAuthURL returns the LINE OAuth base URL for an API version.
func LineOAuthURL(version string) string {
	return strings.TrimSuffix(LineProvider().EndpointURL(version), "/authorize")
}

// MakeLineLoginURL builds the LINE authorization URL.
func MakeLineLoginURL(p LineParams) (string, error) {
	return buildURL(LineProvider(), p.Version, p)
}

// LineLogin builds the LINE authorization URL and navigates to it.
func LineLogin(ctx context.Context, nav Navigator, p LineParams) error {
	u, err := MakeLineLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
