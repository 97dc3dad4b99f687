package statsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// Package statsapi is the HTTP connector for the upstream uptime service.
// Responses are wrapped as {"success": bool, "data": ..., "error": "..."}.

// ErrUpstream is returned when the upstream envelope reports success=false.
var ErrUpstream = errors.New("upstream reported failure")

// Client is a thin wrapper over http.Client with optional bearer auth.
// Use New to construct it.
type Client struct {
	c       *http.Client
	baseURL string
}

// New builds a client for baseURL. A non-empty token is sent as a bearer
// token through an oauth2 static token source.
func New(c *http.Client, baseURL, token string) *Client {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c)
		c = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	}
	return &Client{c: c, baseURL: strings.TrimRight(baseURL, "/")}
}

// Stats fetches the raw stats array for a widget configuration.
func (sc *Client) Stats(ctx context.Context, configID string) ([]byte, error) {
	q := url.Values{}
	q.Set("config", configID)
	return sc.get(ctx, "/stats", q)
}

// Drilldown fetches the raw category -> records object for one env/month.
func (sc *Client) Drilldown(ctx context.Context, configID, env, month string) ([]byte, error) {
	q := url.Values{}
	q.Set("env", env)
	q.Set("month", month)
	q.Set("config", configID)
	return sc.get(ctx, "/drilldown", q)
}

func (sc *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	rawURL := sc.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := sc.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s failed: %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return unwrap(path, body)
}

// unwrap returns the envelope's data. A body that is not an envelope is
// passed through unchanged.
func unwrap(path string, body []byte) ([]byte, error) {
	env := gjson.ParseBytes(body)
	if !env.IsObject() || !env.Get("success").Exists() && !env.Get("data").Exists() {
		return body, nil
	}
	if s := env.Get("success"); s.Exists() && !s.Bool() {
		msg := env.Get("error").String()
		if msg == "" {
			msg = "failed to fetch " + strings.TrimPrefix(path, "/")
		}
		slog.Warn("statsapi.envelope.failure", "path", path, "error", msg)
		return nil, fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
	data := env.Get("data")
	if !data.Exists() {
		return []byte("null"), nil
	}
	return []byte(data.Raw), nil
}
