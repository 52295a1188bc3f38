package oauth2

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/gin-gonic/gin"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Navigator hands an authorization URL to whatever drives the user agent.
type Navigator interface {
	NavigateTo(ctx context.Context, url string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, url string) error

func (f NavigatorFunc) NavigateTo(ctx context.Context, url string) error {
	return f(ctx, url)
}

// ResponseNavigator redirects an HTTP client. Code defaults to 302 Found.
type ResponseNavigator struct {
	Writer  http.ResponseWriter
	Request *http.Request
	Code    int
}

func (n ResponseNavigator) NavigateTo(_ context.Context, url string) error {
	code := n.Code
	if code == 0 {
		code = http.StatusFound
	}
	http.Redirect(n.Writer, n.Request, url, code)
	return nil
}

// GinNavigator redirects the client of a gin request.
type GinNavigator struct {
	Context *gin.Context
	Code    int
}

func (n GinNavigator) NavigateTo(_ context.Context, url string) error {
	code := n.Code
	if code == 0 {
		code = http.StatusFound
	}
	n.Context.Redirect(code, url)
	return nil
}

// BrowserNavigator opens the URL in the system browser.
type BrowserNavigator struct {
	// GOOS overrides runtime.GOOS when set.
	GOOS string

	start func(ctx context.Context, name string, args ...string) error
}

func (n BrowserNavigator) NavigateTo(ctx context.Context, url string) error {
	goos := n.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	var name string
	var args []string
	switch goos {
	case "darwin":
		name, args = "open", []string{url}
	case "linux", "freebsd", "openbsd", "netbsd":
		name, args = "xdg-open", []string{url}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}

	start := n.start
	if start == nil {
		start = startCommand
	}
	if err := start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// The opener outlives the request, so ctx is not bound to the process.
// The child is released rather than waited on; openers exit once the browser has the URL.
func startCommand(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
