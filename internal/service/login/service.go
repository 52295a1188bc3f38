package login

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/pkg/logger"
	"github.com/code1iners/ce1pers/pkg/oauth2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/code1iners/ce1pers/internal/service/login"

// unknownProvider labels metrics for names outside the registry.
const unknownProvider = "unknown"

type Service struct {
	registry  *oauth2.Registry
	providers cfg.ProvidersConfig
	states    oauth2.StateStorage
	metrics   *Metrics
	logger    logger.Logger
	stateTTL  time.Duration
	now       func() time.Time
}

func NewService(
	registry *oauth2.Registry,
	providers cfg.ProvidersConfig,
	states oauth2.StateStorage,
	metrics *Metrics,
	log logger.Logger,
	stateTTL time.Duration,
) *Service {
	return &Service{
		registry:  registry,
		providers: providers,
		states:    states,
		metrics:   metrics,
		logger:    log,
		stateTTL:  stateTTL,
		now:       time.Now,
	}
}

// Providers returns the configured provider names that the registry knows.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		if _, err := s.registry.Get(name); err == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// AuthURL issues state, nonce and PKCE values for the provider, stores them and
// returns the authorization URL.
func (s *Service) AuthURL(ctx context.Context, provider string) (*AuthRequest, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "login.AuthURL")
	defer span.End()
	span.SetAttributes(attribute.String("oauth2.provider", provider))

	p, err := s.registry.Get(provider)
	if err != nil {
		s.metrics.RecordAuthURL(unknownProvider, false)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	settings, ok := s.providers[provider]
	if !ok {
		s.metrics.RecordAuthURL(provider, false)
		span.SetStatus(codes.Error, ErrProviderNotConfigured.Error())
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
	}

	state, err := oauth2.GenerateState()
	if err != nil {
		return nil, s.fail(ctx, provider, fmt.Errorf("failed to generate state: %w", err))
	}

	data := oauth2.StateData{
		Provider:  provider,
		ExpiresAt: s.now().Add(s.stateTTL),
	}

	values := url.Values{}
	for k, v := range settings.Params {
		values.Set(k, v)
	}
	values.Set("client_id", settings.ClientID)
	values.Set("redirect_uri", settings.RedirectURI)
	values.Set("state", state)
	if settings.Scope != "" {
		values.Set("scope", settings.Scope)
	}

	if _, ok := p.Rule("nonce"); ok {
		data.Nonce, err = oauth2.GenerateNonce()
		if err != nil {
			return nil, s.fail(ctx, provider, fmt.Errorf("failed to generate nonce: %w", err))
		}
		values.Set("nonce", data.Nonce)
	}

	if _, ok := p.Rule("code_challenge"); ok && settings.PKCE {
		pkce := oauth2.GeneratePKCE()
		data.CodeVerifier = pkce.Verifier
		values.Set("code_challenge", pkce.Challenge)
		values.Set("code_challenge_method", pkce.ChallengeMethod)
	}

	authURL, err := p.AuthCodeURL(settings.Version, values)
	if err != nil {
		return nil, s.fail(ctx, provider, err)
	}

	if err := s.states.Save(ctx, state, data); err != nil {
		return nil, s.fail(ctx, provider, fmt.Errorf("failed to save state: %w", err))
	}

	s.metrics.RecordAuthURL(provider, true)
	s.logger.Debug(ctx, "authorization url issued",
		logger.Field{Key: "provider", Value: provider},
		logger.Field{Key: "pkce", Value: data.CodeVerifier != ""},
	)

	return &AuthRequest{Provider: provider, URL: authURL, State: state}, nil
}

// Redirect issues an authorization request and hands its URL to nav.
func (s *Service) Redirect(ctx context.Context, nav oauth2.Navigator, provider string) error {
	req, err := s.AuthURL(ctx, provider)
	if err != nil {
		return err
	}
	if err := nav.NavigateTo(ctx, req.URL); err != nil {
		return err
	}
	s.metrics.RecordRedirect(provider)
	return nil
}

// ConsumeState returns the values issued with state. A state can be consumed once.
func (s *Service) ConsumeState(ctx context.Context, state string) (*oauth2.StateData, error) {
	return s.states.Consume(ctx, state)
}

func (s *Service) fail(ctx context.Context, provider string, err error) error {
	s.metrics.RecordAuthURL(provider, false)
	trace.SpanFromContext(ctx).SetStatus(codes.Error, err.Error())
	s.logger.Error(ctx, "failed to issue authorization url",
		logger.Field{Key: "provider", Value: provider},
		logger.Field{Key: "error", Value: err.Error()},
	)
	return err
}
