package oauth2

import (
	"context"

	xoauth2 "golang.org/x/oauth2"
)

// DefaultFacebookVersion is the Graph API version used when none is given.
const DefaultFacebookVersion = "v24.0"

// FacebookParams are the Facebook Login dialog parameters.
type FacebookParams struct {
	ClientID    string `url:"client_id,omitempty"`
	RedirectURI string `url:"redirect_uri,omitempty"`
	State       string `url:"state,omitempty"`
	// Version is the Graph API path segment, not a query parameter.
	Version string `url:"-"`
	// ResponseType is code (default), token, "code token" or granted_scopes.
	ResponseType string `url:"response_type,omitempty"`
	// Scope is a comma or space separated permission list.
	Scope string `url:"scope,omitempty"`
}

// FacebookProvider returns the Facebook Login configuration.
func FacebookProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:           ProviderFacebook,
		AuthURL:        "https://www.facebook.com/{version}/dialog/oauth",
		TokenURL:       "https://graph.facebook.com/{version}/oauth/access_token",
		DefaultVersion: DefaultFacebookVersion,
		AuthStyle:      xoauth2.AuthStyleInParams,
		Fields: []FieldRule{
			{Name: "client_id", Required: true},
			{Name: "redirect_uri", Required: true},
			{Name: "state", Required: true},
			{Name: "response_type", Default: "code", OneOf: []string{"code", "token", "code token", "granted_scopes"}},
			{Name: "scope"},
		},
	}
}

// FacebookOAuthURL returns the login dialog endpoint for a Graph API version.
func FacebookOAuthURL(version string) string {
	return FacebookProvider().EndpointURL(version)
}

// MakeFacebookLoginURL builds the Facebook authorization URL.
func MakeFacebookLoginURL(p FacebookParams) (string, error) {
	return buildURL(FacebookProvider(), p.Version, p)
}

// FacebookLogin builds the Facebook authorization URL and navigates to it.
func FacebookLogin(ctx context.Context, nav Navigator, p FacebookParams) error {
	u, err := MakeFacebookLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
