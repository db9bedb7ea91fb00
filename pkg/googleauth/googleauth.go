package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Client wraps the Google OAuth2 login flow: authorization URL, code
// exchange, and userinfo lookup for the signed-in account.
type Client struct {
	oauth *oauth2.Config
}

// Config holds the OAuth application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// New creates a Google OAuth client requesting email and profile scopes.
func New(cfg Config) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{goauth.UserinfoEmailScope, goauth.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL returns the Google consent page URL for the given CSRF state.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for a token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("googleauth: code exchange failed: %w", err)
	}
	return token, nil
}

// Userinfo fetches the email and display name of the authenticated account.
func (c *Client) Userinfo(ctx context.Context, token *oauth2.Token) (UserInfo, error) {
	svc, err := goauth.NewService(ctx, option.WithTokenSource(c.oauth.TokenSource(ctx, token)))
	if err != nil {
		return UserInfo{}, fmt.Errorf("googleauth: failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, fmt.Errorf("googleauth: userinfo lookup failed: %w", err)
	}
	if info.Email == "" {
		return UserInfo{}, fmt.Errorf("googleauth: account has no email")
	}

	return UserInfo{Email: info.Email, Name: info.Name}, nil
}
