package oauth2

import (
	"context"

	xoauth2 "golang.org/x/oauth2"
)

// GoogleParams are the Google OAuth 2.0 web server flow parameters.
type GoogleParams struct {
	ClientID    string `url:"client_id,omitempty"`
	RedirectURI string `url:"redirect_uri,omitempty"`
	// ResponseType defaults to "code".
	ResponseType string `url:"response_type,omitempty"`
	// Scope is a space separated scope list. Required.
	Scope string `url:"scope,omitempty"`
	// AccessType is online or offline.
	AccessType            string `url:"access_type,omitempty"`
	State                 string `url:"state,omitempty"`
	IncludeGrantedScopes  string `url:"include_granted_scopes,omitempty"`
	EnableGranularConsent string `url:"enable_granular_consent,omitempty"`
	LoginHint             string `url:"login_hint,omitempty"`
	// Prompt is a space separated subset of none, consent, select_account.
	Prompt              string `url:"prompt,omitempty"`
	Nonce               string `url:"nonce,omitempty"`
	CodeChallenge       string `url:"code_challenge,omitempty"`
	CodeChallengeMethod string `url:"code_challenge_method,omitempty"`

	// Service, O2V and FlowName are only sent to the account chooser endpoint.
	Service  string `url:"service,omitempty"`
	O2V      string `url:"o2v,omitempty"`
	FlowName string `url:"flowName,omitempty"`
}

func googleFields() []FieldRule {
	return []FieldRule{
		{Name: "client_id", Required: true},
		{Name: "redirect_uri", Required: true},
		{Name: "scope", Required: true},
		{Name: "response_type", Default: "code"},
		{Name: "access_type", OneOf: []string{"online", "offline"}},
		{Name: "prompt", OneOf: []string{"none", "consent", "select_account"}, Separator: " "},
		{Name: "code_challenge_method", OneOf: []string{"S256", "plain"}},
		{Name: "include_granted_scopes", OneOf: []string{"true", "false"}},
		{Name: "enable_granular_consent", OneOf: []string{"true", "false"}},
		{Name: "state"},
		{Name: "login_hint"},
		{Name: "nonce"},
		{Name: "code_challenge"},
	}
}

// GoogleProvider returns the standard Google authorization endpoint configuration.
func GoogleProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:      ProviderGoogle,
		AuthURL:   "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:  "https://oauth2.googleapis.com/token",
		AuthStyle: xoauth2.AuthStyleInParams,
		Fields:    googleFields(),
	}
}

// GoogleChooserProvider returns the account chooser variant of the Google endpoint.
func GoogleChooserProvider() *ProviderConfig {
	fields := append(googleFields(),
		FieldRule{Name: "service"},
		FieldRule{Name: "o2v"},
		FieldRule{Name: "flowName"},
	)
	return &ProviderConfig{
		Name:      ProviderGoogleChooser,
		AuthURL:   "https://accounts.google.com/o/oauth2/v2/auth/oauthchooseaccount",
		TokenURL:  "https://oauth2.googleapis.com/token",
		AuthStyle: xoauth2.AuthStyleInParams,
		Fields:    fields,
	}
}

// MakeGoogleLoginURL builds the Google authorization URL.
// Chooser-only fields are dropped for this endpoint.
func MakeGoogleLoginURL(p GoogleParams) (string, error) {
	p.Service, p.O2V, p.FlowName = "", "", ""
	return buildURL(GoogleProvider(), "", p)
}

// MakeGoogleChooseAccountURL builds the Google account chooser URL.
func MakeGoogleChooseAccountURL(p GoogleParams) (string, error) {
	return buildURL(GoogleChooserProvider(), "", p)
}

// GoogleLogin builds the Google authorization URL and navigates to it.
func GoogleLogin(ctx context.Context, nav Navigator, p GoogleParams) error {
	u, err := MakeGoogleLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
