// Package provider talks to the OAuth identity provider: it exchanges an
// authorization code for an access token, fetches the attendee profile the
// token grants, and composes the two into one fallible operation.
package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"github.com/hackcwru/signup/internal/domain"
	"github.com/hackcwru/signup/internal/httpx"
)

// Config holds the provider endpoint and app credentials.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Client performs the code-for-profile flow against the provider.
type Client struct {
	cfg      Config
	http     *http.Client
	validate *validator.Validate
	oauth    *oauth2.Config
}

// New creates a Client. The http.Client carries the outbound timeout policy.
func New(cfg Config, hc *http.Client) *Client {
	return &Client{
		cfg:      cfg,
		http:     hc,
		validate: validator.New(),
		oauth: &oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.BaseURL + "/oauth/authorize",
				TokenURL: cfg.BaseURL + "/oauth/token",
			},
		},
	}
}

// AuthorizeURL returns the provider page that starts the flow.
func (c *Client) AuthorizeURL() string {
	return c.oauth.AuthCodeURL("")
}

// ExchangeCode trades an authorization code for an access token. The provider
// takes the credentials as query parameters, and each callback is a one-shot
// exchange, so the connection is closed after the call.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*domain.TokenResponse, error) {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("client_secret", c.cfg.ClientSecret)
	q.Set("code", code)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/oauth/token?"+q.Encode(), nil)
	if err != nil {
		return nil, httpx.Transport(httpx.StageExchange, err)
	}
	req.Close = true

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, httpx.Transport(httpx.StageExchange, err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckStatus(httpx.StageExchange, resp.StatusCode); err != nil {
		return nil, err
	}

	var token domain.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, httpx.Decode(httpx.StageExchange, err)
	}
	if err := c.validate.Struct(&token); err != nil {
		return nil, httpx.Decode(httpx.StageExchange, err)
	}

	return &token, nil
}

// profileEnvelope is the single-field container the provider wraps the
// profile in.
type profileEnvelope struct {
	Data domain.Profile `json:"data"`
}

// FetchProfile retrieves the profile the access token grants. A decode
// failure here usually means the provider changed its schema, so it is tagged
// with the fetch stage to keep it apart from exchange-time failures.
func (c *Client) FetchProfile(ctx context.Context, token *domain.TokenResponse) (*domain.Profile, error) {
	q := url.Values{}
	q.Set("access_token", token.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/api/user?"+q.Encode(), nil)
	if err != nil {
		return nil, httpx.Transport(httpx.StageFetch, err)
	}
	req.Close = true

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, httpx.Transport(httpx.StageFetch, err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckStatus(httpx.StageFetch, resp.StatusCode); err != nil {
		return nil, err
	}

	var envelope profileEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, httpx.Decode(httpx.StageFetch, err)
	}
	if err := c.validate.Struct(&envelope.Data); err != nil {
		return nil, httpx.Decode(httpx.StageFetch, err)
	}

	return &envelope.Data, nil
}

// Complete runs exchange then fetch, stopping at the first failure. Codes are
// single-use, so there is no retry: a failed exchange surfaces immediately.
func (c *Client) Complete(ctx context.Context, code string) (*domain.Profile, error) {
	token, err := c.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.FetchProfile(ctx, token)
}
