package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/code1iners/ce1pers/pkg/oauth2"

	"github.com/spf13/cobra"
)

type options struct {
	clientID     string
	redirectURI  string
	scope        string
	state        string
	nonce        string
	responseType string
	version      string
	params       []string
	pkce         bool
	open         bool
}

func newRootCmd(registry *oauth2.Registry, nav oauth2.Navigator) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "loginurl <provider>",
		Short: "Build a social login authorization URL",
		Long: `Builds the authorization URL for a provider and prints it, or opens it in
the system browser with --open.

Providers: ` + strings.Join(registry.Names(), ", "),
		Args:         cobra.ExactArgs(1),
		ValidArgs:    registry.Names(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, registry, nav, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.clientID, "client-id", "", "OAuth client identifier")
	f.StringVar(&opts.redirectURI, "redirect-uri", "", "registered redirect URI")
	f.StringVar(&opts.scope, "scope", "", "requested scope")
	f.StringVar(&opts.state, "state", "", "opaque state value")
	f.StringVar(&opts.nonce, "nonce", "", "OIDC nonce")
	f.StringVar(&opts.responseType, "response-type", "", "response type, provider default when empty")
	f.StringVar(&opts.version, "version", "", "API version for versioned endpoints")
	f.StringArrayVar(&opts.params, "param", nil, "extra query parameter as key=value, repeatable")
	f.BoolVar(&opts.pkce, "pkce", false, "add an S256 code challenge and print the verifier to stderr")
	f.BoolVar(&opts.open, "open", false, "open the URL in the system browser")

	return cmd
}

func run(cmd *cobra.Command, registry *oauth2.Registry, nav oauth2.Navigator, provider string, opts options) error {
	values, err := opts.values()
	if err != nil {
		return err
	}

	if opts.pkce {
		pkce := oauth2.GeneratePKCE()
		values.Set("code_challenge", pkce.Challenge)
		values.Set("code_challenge_method", pkce.ChallengeMethod)
		fmt.Fprintf(cmd.ErrOrStderr(), "code_verifier: %s\n", pkce.Verifier)
	}

	authURL, err := registry.AuthCodeURL(provider, opts.version, values)
	if err != nil {
		return err
	}

	if opts.open {
		return nav.NavigateTo(cmd.Context(), authURL)
	}
	fmt.Fprintln(cmd.OutOrStdout(), authURL)
	return nil
}

func (o options) values() (url.Values, error) {
	values := url.Values{}
	for _, p := range o.params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: want key=value", p)
		}
		values.Add(key, value)
	}

	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("client_id", o.clientID)
	set("redirect_uri", o.redirectURI)
	set("scope", o.scope)
	set("state", o.state)
	set("nonce", o.nonce)
	set("response_type", o.responseType)

	return values, nil
}
