package login

import "errors"

var ErrProviderNotConfigured = errors.New("provider not configured")

// AuthRequest is an issued authorization request.
type AuthRequest struct {
	Provider string
	URL      string
	State    string
}

type AuthURLResponse struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
	State    string `json:"state"`
}

type ConsumeStateRequest struct {
	State string `json:"state" binding:"required"`
}

type ConsumeStateResponse struct {
	Provider     string `json:"provider"`
	Nonce        string `json:"nonce,omitempty"`
	CodeVerifier string `json:"code_verifier,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
