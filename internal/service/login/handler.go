package login

import (
	"errors"
	"net/http"

	"github.com/code1iners/ce1pers/pkg/oauth2"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RedirectHandler starts a login with the provider
// @Summary Login with a social provider
// @Description Redirects to the provider authorization page
// @Tags auth
// @Param provider path string true "Provider name"
// @Success 302 {string} string "Redirect to provider"
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Failure 500 {object} ErrorResponse "Provider misconfigured"
// @Router /auth/{provider} [get]
func (h *Handler) RedirectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		nav := oauth2.GinNavigator{Context: c}
		if err := h.service.Redirect(c.Request.Context(), nav, c.Param("provider")); err != nil {
			writeAuthError(c, err)
		}
	}
}

// AuthURLHandler returns the authorization URL without redirecting
// @Summary Build an authorization URL
// @Tags auth
// @Produce json
// @Param provider path string true "Provider name"
// @Success 200 {object} AuthURLResponse
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Failure 500 {object} ErrorResponse "Provider misconfigured"
// @Router /auth/{provider}/url [get]
func (h *Handler) AuthURLHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := h.service.AuthURL(c.Request.Context(), c.Param("provider"))
		if err != nil {
			writeAuthError(c, err)
			return
		}

		c.JSON(http.StatusOK, AuthURLResponse{
			Provider: req.Provider,
			URL:      req.URL,
			State:    req.State,
		})
	}
}

// ConsumeStateHandler redeems an issued state
// @Summary Consume an issued state
// @Description Returns the nonce and PKCE verifier issued with the state. A state can be consumed once.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ConsumeStateRequest true "State"
// @Success 200 {object} ConsumeStateResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Unknown or expired state"
// @Router /auth/state/consume [post]
func (h *Handler) ConsumeStateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConsumeStateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "state is required"})
			return
		}

		data, err := h.service.ConsumeState(c.Request.Context(), req.State)
		switch {
		case errors.Is(err, oauth2.ErrStateNotFound), errors.Is(err, oauth2.ErrStateExpired):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to consume state"})
			return
		}

		c.JSON(http.StatusOK, ConsumeStateResponse{
			Provider:     data.Provider,
			Nonce:        data.Nonce,
			CodeVerifier: data.CodeVerifier,
		})
	}
}

// ProvidersHandler lists the providers this service can start a login with.
func (h *Handler) ProvidersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"providers": h.service.Providers()})
	}
}

func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, oauth2.ErrProviderNotFound), errors.Is(err, ErrProviderNotConfigured):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
