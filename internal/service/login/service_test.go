package login

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/pkg/logger"
	"github.com/code1iners/ce1pers/pkg/oauth2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProviders() cfg.ProvidersConfig {
	return cfg.ProvidersConfig{
		"google": {
			ClientID:    "g-client",
			RedirectURI: "https://example.com/auth/google/callback",
			Scope:       "openid email",
			PKCE:        true,
			Params:      map[string]string{"access_type": "offline"},
		},
		"naver": {
			ClientID:    "n-client",
			RedirectURI: "https://example.com/auth/naver/callback",
			Params:      map[string]string{"response_type": "code"},
		},
		"facebook": {
			ClientID:    "fb-client",
			RedirectURI: "https://example.com/auth/facebook/callback",
			Version:     "v20.0",
		},
		// scope is required by LINE
		"line": {
			ClientID:    "1234567890",
			RedirectURI: "https://example.com/auth/line/callback",
			Params:      map[string]string{"response_type": "code"},
		},
		"myspace": {
			ClientID:    "m",
			RedirectURI: "https://example.com/cb",
		},
	}
}

type fixture struct {
	service  *Service
	states   oauth2.StateStorage
	registry *prometheus.Registry
	metrics  *Metrics
}

func newFixture(t *testing.T, states oauth2.StateStorage) *fixture {
	t.Helper()
	if states == nil {
		mem := oauth2.NewInMemoryStorage()
		t.Cleanup(func() { mem.Close() })
		states = mem
	}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := NewService(oauth2.DefaultRegistry(), testProviders(), states, metrics, logger.Nop{}, 10*time.Minute)
	return &fixture{service: svc, states: states, registry: reg, metrics: metrics}
}

func TestService_AuthURL_Google(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	req, err := f.service.AuthURL(ctx, "google")
	require.NoError(t, err)
	assert.Equal(t, "google", req.Provider)
	assert.Len(t, req.State, 64)

	u, err := url.Parse(req.URL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "g-client", q.Get("client_id"))
	assert.Equal(t, "https://example.com/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "openid email", q.Get("scope"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, req.State, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("nonce"))

	data, err := f.service.ConsumeState(ctx, req.State)
	require.NoError(t, err)
	assert.Equal(t, "google", data.Provider)
	assert.Equal(t, q.Get("nonce"), data.Nonce)

	sum := sha256.Sum256([]byte(data.CodeVerifier))
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(sum[:]), q.Get("code_challenge"))

	_, err = f.service.ConsumeState(ctx, req.State)
	assert.ErrorIs(t, err, oauth2.ErrStateNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.authURLs.WithLabelValues("google", "success")))
}

func TestService_AuthURL_WithoutNonceOrPKCE(t *testing.T) {
	f := newFixture(t, nil)

	req, err := f.service.AuthURL(context.Background(), "naver")
	require.NoError(t, err)

	u, err := url.Parse(req.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://nid.naver.com/oauth2.0/authorize", u.Scheme+"://"+u.Host+u.Path)
	assert.Equal(t, map[string][]string{
		"client_id":     {"n-client"},
		"redirect_uri":  {"https://example.com/auth/naver/callback"},
		"response_type": {"code"},
		"state":         {req.State},
	}, map[string][]string(u.Query()))

	data, err := f.service.ConsumeState(context.Background(), req.State)
	require.NoError(t, err)
	assert.Empty(t, data.Nonce)
	assert.Empty(t, data.CodeVerifier)
}

func TestService_AuthURL_Version(t *testing.T) {
	f := newFixture(t, nil)

	req, err := f.service.AuthURL(context.Background(), "facebook")
	require.NoError(t, err)
	assert.Contains(t, req.URL, "https://www.facebook.com/v20.0/dialog/oauth?")
}

func TestService_AuthURL_Errors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.service.AuthURL(ctx, "myspace")
	assert.ErrorIs(t, err, oauth2.ErrProviderNotFound)

	_, err = f.service.AuthURL(ctx, "kakao")
	assert.ErrorIs(t, err, ErrProviderNotConfigured)

	_, err = f.service.AuthURL(ctx, "line")
	assert.ErrorIs(t, err, oauth2.ErrMissingField)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.authURLs.WithLabelValues(unknownProvider, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.authURLs.WithLabelValues("kakao", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.authURLs.WithLabelValues("line", "error")))
}

func TestService_AuthURL_SaveFailure(t *testing.T) {
	states := new(MockStateStorage)
	states.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(d oauth2.StateData) bool {
		return d.Provider == "naver" && !d.ExpiresAt.IsZero()
	})).Return(errors.New("connection refused"))

	f := newFixture(t, states)

	_, err := f.service.AuthURL(context.Background(), "naver")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save state")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.authURLs.WithLabelValues("naver", "error")))
	states.AssertExpectations(t)
}

func TestService_AuthURL_InvalidConfigSkipsSave(t *testing.T) {
	states := new(MockStateStorage)
	f := newFixture(t, states)

	_, err := f.service.AuthURL(context.Background(), "line")
	require.Error(t, err)
	states.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Redirect(t *testing.T) {
	f := newFixture(t, nil)

	var target string
	nav := oauth2.NavigatorFunc(func(_ context.Context, u string) error {
		target = u
		return nil
	})

	require.NoError(t, f.service.Redirect(context.Background(), nav, "google"))
	assert.Contains(t, target, "https://accounts.google.com/o/oauth2/v2/auth?")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.redirects.WithLabelValues("google")))

	navErr := errors.New("closed")
	err := f.service.Redirect(context.Background(), oauth2.NavigatorFunc(func(context.Context, string) error {
		return navErr
	}), "google")
	assert.ErrorIs(t, err, navErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.redirects.WithLabelValues("google")))
}

func TestService_Providers(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, []string{"facebook", "google", "line", "naver"}, f.service.Providers())
}

func TestService_StateExpiry(t *testing.T) {
	f := newFixture(t, nil)
	f.service.now = func() time.Time { return time.Now().Add(-time.Hour) }

	req, err := f.service.AuthURL(context.Background(), "naver")
	require.NoError(t, err)

	_, err = f.service.ConsumeState(context.Background(), req.State)
	assert.ErrorIs(t, err, oauth2.ErrStateExpired)
}
