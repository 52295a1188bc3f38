package oauth2

import (
	"context"

	xoauth2 "golang.org/x/oauth2"
)

// KakaoParams are the Kakao Login authorization parameters.
type KakaoParams struct {
	// ClientID is the app's REST API key.
	ClientID    string `url:"client_id,omitempty"`
	RedirectURI string `url:"redirect_uri,omitempty"`
	// ResponseType is fixed to "code".
	ResponseType string `url:"response_type,omitempty"`
	Scope        string `url:"scope,omitempty"`
	// Prompt is a comma separated subset of login, none, create, select_account.
	Prompt       string `url:"prompt,omitempty"`
	LoginHint    string `url:"login_hint,omitempty"`
	ServiceTerms string `url:"service_terms,omitempty"`
	State        string `url:"state,omitempty"`
	Nonce        string `url:"nonce,omitempty"`
}

// KakaoProvider returns the Kakao Login configuration.
func KakaoProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:      ProviderKakao,
		AuthURL:   "https://kauth.kakao.com/oauth/authorize",
		TokenURL:  "https://kauth.kakao.com/oauth/token",
		AuthStyle: xoauth2.AuthStyleInParams,
		Fields: []FieldRule{
			{Name: "client_id", Required: true},
			{Name: "redirect_uri", Required: true},
			{Name: "response_type", Default: "code", OneOf: []string{"code"}},
			{Name: "prompt", OneOf: []string{"login", "none", "create", "select_account"}, Separator: ","},
			{Name: "scope"},
			{Name: "login_hint"},
			{Name: "service_terms"},
			{Name: "state"},
			{Name: "nonce"},
		},
	}
}

// MakeKakaoLoginURL builds the Kakao authorization URL.
func MakeKakaoLoginURL(p KakaoParams) (string, error) {
	return buildURL(KakaoProvider(), "", p)
}

// KakaoLogin builds the Kakao authorization URL and navigates to it.
func KakaoLogin(ctx context.Context, nav Navigator, p KakaoParams) error {
	u, err := MakeKakaoLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
