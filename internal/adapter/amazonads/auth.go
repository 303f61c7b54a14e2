package amazonads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

// tokenScope is the fixed scope requested with every refresh.
const tokenScope = "profile"

// Authenticator implements port.Authenticator with the refresh-token grant.
// Every call performs a fresh exchange; nothing is cached.
type Authenticator struct {
	tokenURL   url.URL
	creds      domain.Credentials
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAuthenticator returns an Authenticator posting to tokenURL.
func NewAuthenticator(tokenURL url.URL, creds domain.Credentials, timeout time.Duration, logger *slog.Logger) *Authenticator {
	return &Authenticator{
		tokenURL:   tokenURL,
		creds:      creds,
		httpClient: newHTTPClient(timeout),
		logger:     logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FetchAccessToken exchanges the refresh token for a bearer token. Any
// status other than 200 fails with domain.ErrAuthentication; there is no
// retry.
func (a *Authenticator) FetchAccessToken(ctx context.Context) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", a.creds.ClientID)
	form.Set("client_secret", a.creds.ClientSecret)
	form.Set("refresh_token", a.creds.RefreshToken)
	form.Set("scope", tokenScope)
	form.Set("profile_id", a.creds.ProfileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	a.logger.InfoContext(ctx, "token status", slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrAuthentication, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("%w: response has no access_token", domain.ErrAuthentication)
	}

	token := &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
	}
	if tr.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return token, nil
}
