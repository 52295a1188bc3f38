package oauth2

import (
	"context"

	xoauth2 "golang.org/x/oauth2"
)

// NaverParams are the Naver Login authorization parameters. All fields are required.
type NaverParams struct {
	ClientID     string `url:"client_id,omitempty"`
	RedirectURI  string `url:"redirect_uri,omitempty"`
	ResponseType string `url:"response_type,omitempty"`
	State        string `url:"state,omitempty"`
}

// NaverProvider returns the Naver Login configuration.
func NaverProvider() *ProviderConfig {
	return &ProviderConfig{
		Name:      ProviderNaver,
		AuthURL:   "https://nid.naver.com/oauth2.0/authorize",
		TokenURL:  "https://nid.naver.com/oauth2.0/token",
		AuthStyle: xoauth2.AuthStyleInParams,
		Fields: []FieldRule{
			{Name: "client_id", Required: true},
			{Name: "redirect_uri", Required: true},
			{Name: "response_type", Required: true, OneOf: []string{"code"}},
			{Name: "state", Required: true},
		},
	}
}

// MakeNaverLoginURL builds the Naver authorization URL.
func MakeNaverLoginURL(p NaverParams) (string, error) {
	return buildURL(NaverProvider(), "", p)
}

// NaverLogin builds the Naver authorization URL and navigates to it.
func NaverLogin(ctx context.Context, nav Navigator, p NaverParams) error {
	u, err := MakeNaverLoginURL(p)
	if err != nil {
		return err
	}
	return nav.NavigateTo(ctx, u)
}
