package oauth2

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseAuthURL splits an authorization URL into its endpoint and decoded query.
func parseAuthURL(t *testing.T, raw string) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Scheme + "://" + u.Host + u.Path, u.Query()
}

func flatten(v url.Values) map[string]string {
	m := make(map[string]string, len(v))
	for k := range v {
		m[k] = v.Get(k)
	}
	return m
}

func requireParamError(t *testing.T, err error, target error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	var pe *ParamError
	require.True(t, errors.As(err, &pe), "expected *ParamError, got %T", err)
	assert.Equal(t, field, pe.Field)
}

func TestMakeAppleLoginURL(t *testing.T) {
	raw, err := MakeAppleLoginURL(AppleParams{
		ClientID:     "com.example.app",
		RedirectURI:  "https://example.com/cb",
		Nonce:        "n1",
		ResponseMode: "query",
		Scope:        "name email",
		State:        "s1",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "https://appleid.apple.com/auth/authorize?"))

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://appleid.apple.com/auth/authorize", endpoint)
	assert.Equal(t, map[string]string{
		"response_type": "code",
		"scope":         "name email",
		"client_id":     "com.example.app",
		"redirect_uri":  "https://example.com/cb",
		"nonce":         "n1",
		"response_mode": "query",
		"state":         "s1",
	}, flatten(query))

	assert.Contains(t, raw, "redirect_uri=https%3A%2F%2Fexample.com%2Fcb")
	assert.Contains(t, raw, "scope=name+email")
}

func TestMakeAppleLoginURL_Defaults(t *testing.T) {
	raw, err := MakeAppleLoginURL(AppleParams{
		ClientID:    "com.example.app",
		RedirectURI: "https://example.com/cb",
	})
	require.NoError(t, err)

	_, query := parseAuthURL(t, raw)
	assert.Equal(t, map[string]string{
		"response_type": "code",
		"scope":         "name email",
		"client_id":     "com.example.app",
		"redirect_uri":  "https://example.com/cb",
	}, flatten(query))
}

func TestMakeAppleLoginURL_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params AppleParams
		target error
		field  string
	}{
		{
			name:   "missing client_id",
			params: AppleParams{RedirectURI: "https://example.com/cb"},
			target: ErrMissingField,
			field:  "client_id",
		},
		{
			name:   "missing redirect_uri",
			params: AppleParams{ClientID: "com.example.app"},
			target: ErrMissingField,
			field:  "redirect_uri",
		},
		{
			name:   "unsupported response_mode",
			params: AppleParams{ClientID: "a", RedirectURI: "https://x/cb", ResponseMode: "web_message"},
			target: ErrInvalidValue,
			field:  "response_mode",
		},
		{
			name:   "id_token only is unsupported",
			params: AppleParams{ClientID: "a", RedirectURI: "https://x/cb", ResponseType: "id_token"},
			target: ErrInvalidValue,
			field:  "response_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := MakeAppleLoginURL(tt.params)
			requireParamError(t, err, tt.target, tt.field)
			assert.Empty(t, raw)
		})
	}
}

func TestMakeFacebookLoginURL(t *testing.T) {
	raw, err := MakeFacebookLoginURL(FacebookParams{
		ClientID:    "abc",
		RedirectURI: "https://x/cb",
		State:       "s",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://www.facebook.com/v24.0/dialog/oauth", endpoint)
	assert.Equal(t, map[string]string{
		"response_type": "code",
		"client_id":     "abc",
		"redirect_uri":  "https://x/cb",
		"state":         "s",
	}, flatten(query))
	assert.NotContains(t, query, "version")
}

func TestMakeFacebookLoginURL_VersionAndOverride(t *testing.T) {
	raw, err := MakeFacebookLoginURL(FacebookParams{
		ClientID:     "abc",
		RedirectURI:  "https://x/cb",
		State:        "s",
		Version:      "v19.0",
		ResponseType: "code token",
		Scope:        "email,public_profile",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://www.facebook.com/v19.0/dialog/oauth", endpoint)
	assert.Equal(t, "code token", query.Get("response_type"))
	assert.Equal(t, "email,public_profile", query.Get("scope"))
}

func TestMakeFacebookLoginURL_MissingState(t *testing.T) {
	_, err := MakeFacebookLoginURL(FacebookParams{ClientID: "abc", RedirectURI: "https://x/cb"})
	requireParamError(t, err, ErrMissingField, "state")
}

func TestFacebookOAuthURL(t *testing.T) {
	assert.Equal(t, "https://www.facebook.com/v24.0/dialog/oauth", FacebookOAuthURL(""))
	assert.Equal(t, "https://www.facebook.com/v18.0/dialog/oauth", FacebookOAuthURL("v18.0"))
}

func TestMakeGoogleLoginURL(t *testing.T) {
	raw, err := MakeGoogleLoginURL(GoogleParams{
		ClientID:    "client.apps.googleusercontent.com",
		RedirectURI: "https://example.com/oauth/google",
		Scope:       "openid email profile",
		AccessType:  "offline",
		Prompt:      "consent select_account",
		State:       "xyz",
		Service:     "lso",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth", endpoint)
	assert.Equal(t, map[string]string{
		"response_type": "code",
		"client_id":     "client.apps.googleusercontent.com",
		"redirect_uri":  "https://example.com/oauth/google",
		"scope":         "openid email profile",
		"access_type":   "offline",
		"prompt":        "consent select_account",
		"state":         "xyz",
	}, flatten(query))
}

func TestMakeGoogleLoginURL_Errors(t *testing.T) {
	_, err := MakeGoogleLoginURL(GoogleParams{ClientID: "c", RedirectURI: "https://x/cb"})
	requireParamError(t, err, ErrMissingField, "scope")

	_, err = MakeGoogleLoginURL(GoogleParams{ClientID: "c", RedirectURI: "https://x/cb", Scope: "email", AccessType: "forever"})
	requireParamError(t, err, ErrInvalidValue, "access_type")

	_, err = MakeGoogleLoginURL(GoogleParams{ClientID: "c", RedirectURI: "https://x/cb", Scope: "email", Prompt: "consent login"})
	requireParamError(t, err, ErrInvalidValue, "prompt")
}

func TestMakeGoogleChooseAccountURL(t *testing.T) {
	raw, err := MakeGoogleChooseAccountURL(GoogleParams{
		ClientID:    "c",
		RedirectURI: "https://x/cb",
		Scope:       "email",
		Service:     "lso",
		O2V:         "2",
		FlowName:    "GeneralOAuthFlow",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth/oauthchooseaccount", endpoint)
	assert.Equal(t, "lso", query.Get("service"))
	assert.Equal(t, "2", query.Get("o2v"))
	assert.Equal(t, "GeneralOAuthFlow", query.Get("flowName"))
	assert.Equal(t, "code", query.Get("response_type"))
}

func TestMakeKakaoLoginURL(t *testing.T) {
	raw, err := MakeKakaoLoginURL(KakaoParams{
		ClientID:    "rest-api-key",
		RedirectURI: "https://example.com/kakao",
		Prompt:      "login,select_account",
		Nonce:       "n",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://kauth.kakao.com/oauth/authorize", endpoint)
	assert.Equal(t, map[string]string{
		"response_type": "code",
		"client_id":     "rest-api-key",
		"redirect_uri":  "https://example.com/kakao",
		"prompt":        "login,select_account",
		"nonce":         "n",
	}, flatten(query))
}

func TestMakeKakaoLoginURL_InvalidPrompt(t *testing.T) {
	_, err := MakeKakaoLoginURL(KakaoParams{ClientID: "k", RedirectURI: "https://x/cb", Prompt: "consent"})
	requireParamError(t, err, ErrInvalidValue, "prompt")
}

func TestMakeLineLoginURL(t *testing.T) {
	maxAge := 0
	switchAMR := false

	raw, err := MakeLineLoginURL(LineParams{
		ResponseType:        "code",
		ClientID:            "1234567890",
		RedirectURI:         "https://example.com/line",
		State:               "st",
		Scope:               "profile openid",
		MaxAge:              &maxAge,
		SwitchAMR:           &switchAMR,
		CodeChallenge:       "challenge",
		CodeChallengeMethod: "S256",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://access.line.me/oauth2/v2.1/authorize", endpoint)
	assert.Equal(t, map[string]string{
		"response_type":         "code",
		"client_id":             "1234567890",
		"redirect_uri":          "https://example.com/line",
		"state":                 "st",
		"scope":                 "profile openid",
		"max_age":               "0",
		"switch_amr":            "false",
		"code_challenge":        "challenge",
		"code_challenge_method": "S256",
	}, flatten(query))
}

func TestMakeLineLoginURL_Version(t *testing.T) {
	raw, err := MakeLineLoginURL(LineParams{
		Version:      "v2",
		ResponseType: "code",
		ClientID:     "1",
		RedirectURI:  "https://x/cb",
		State:        "s",
		Scope:        "profile",
	})
	require.NoError(t, err)

	endpoint, _ := parseAuthURL(t, raw)
	assert.Equal(t, "https://access.line.me/oauth2/v2/authorize", endpoint)
	assert.Equal(t, "https://access.line.me/oauth2/v2", LineOAuthURL("v2"))
	assert.Equal(t, "https://access.line.me/oauth2/v2.1", LineOAuthURL(""))
	assert.Equal(t, "https://access.line.me/oauth2/v2%2F..", LineOAuthURL("v2/.."))
	assert.Equal(t, FacebookProvider().EndpointURL("v2/.."), FacebookOAuthURL("v2/.."))
}

func TestMakeLineLoginURL_Errors(t *testing.T) {
	base := LineParams{ResponseType: "code", ClientID: "1", RedirectURI: "https://x/cb", State: "s", Scope: "profile"}

	noType := base
	noType.ResponseType = ""
	_, err := MakeLineLoginURL(noType)
	requireParamError(t, err, ErrMissingField, "response_type")

	noScope := base
	noScope.Scope = ""
	_, err = MakeLineLoginURL(noScope)
	requireParamError(t, err, ErrMissingField, "scope")

	badMode := base
	badMode.ResponseMode = "fragment"
	_, err = MakeLineLoginURL(badMode)
	requireParamError(t, err, ErrInvalidValue, "response_mode")

	plain := base
	plain.CodeChallengeMethod = "plain"
	_, err = MakeLineLoginURL(plain)
	requireParamError(t, err, ErrInvalidValue, "code_challenge_method")
}

func TestMakeNaverLoginURL(t *testing.T) {
	raw, err := MakeNaverLoginURL(NaverParams{
		ClientID:     "naver-id",
		RedirectURI:  "https://example.com/naver",
		ResponseType: "code",
		State:        "s&t",
	})
	require.NoError(t, err)

	endpoint, query := parseAuthURL(t, raw)
	assert.Equal(t, "https://nid.naver.com/oauth2.0/authorize", endpoint)
	assert.Equal(t, map[string]string{
		"client_id":     "naver-id",
		"redirect_uri":  "https://example.com/naver",
		"response_type": "code",
		"state":         "s&t",
	}, flatten(query))
	assert.Contains(t, raw, "state=s%26t")
}

func TestMakeNaverLoginURL_NoDefaults(t *testing.T) {
	_, err := MakeNaverLoginURL(NaverParams{ClientID: "id", RedirectURI: "https://x/cb", State: "s"})
	requireParamError(t, err, ErrMissingField, "response_type")
}

func TestBuilders_Idempotent(t *testing.T) {
	params := KakaoParams{ClientID: "k", RedirectURI: "https://x/cb", Scope: "profile_nickname account_email", State: "s"}

	first, err := MakeKakaoLoginURL(params)
	require.NoError(t, err)
	second, err := MakeKakaoLoginURL(params)
	require.NoError(t, err)

	_, q1 := parseAuthURL(t, first)
	_, q2 := parseAuthURL(t, second)
	assert.Equal(t, q1, q2)
}

func TestBuilders_ResponseTypeOverride(t *testing.T) {
	raw, err := MakeAppleLoginURL(AppleParams{ClientID: "a", RedirectURI: "https://x/cb", ResponseType: "code id_token", ResponseMode: "form_post"})
	require.NoError(t, err)
	_, query := parseAuthURL(t, raw)
	assert.Equal(t, "code id_token", query.Get("response_type"))

	raw, err = MakeFacebookLoginURL(FacebookParams{ClientID: "a", RedirectURI: "https://x/cb", State: "s", ResponseType: "token"})
	require.NoError(t, err)
	_, query = parseAuthURL(t, raw)
	assert.Equal(t, "token", query.Get("response_type"))
}
