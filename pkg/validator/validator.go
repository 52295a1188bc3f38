package validator

import (
	"errors"
	"net"
	"net/url"
	"regexp"
)

var (
	ProviderValidator  = regexp.MustCompile(`^[a-z][a-z0-9-]{0,31}$`)
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidProvider = errors.New("invalid provider")
)

// ValidateProvider checks the syntax of a provider name, not whether it is registered.
func ValidateProvider(provider string) error {
	if provider == "" {
		return ErrMissingField
	}
	if !ProviderValidator.MatchString(provider) {
		return ErrInvalidProvider
	}
	return nil
}

// ValidateRedirectURI requires an absolute https URI without a fragment.
// Plain http is accepted for loopback hosts.
func ValidateRedirectURI(raw string) error {
	if raw == "" {
		return ErrMissingField
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || u.Fragment != "" {
		return ErrInvalidInput
	}
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if isLoopback(u.Hostname()) {
			return nil
		}
	}
	return ErrInvalidInput
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
