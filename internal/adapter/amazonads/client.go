package amazonads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

const (
	headerClientID = "Amazon-Advertising-API-ClientId"
	headerScope    = "Amazon-Advertising-API-Scope"
)

// resource describes one Sponsored Products v3 creation endpoint.
type resource struct {
	path      string // relative to the API host
	mediaType string // versioned content type, also sent as Accept
	key       string // top-level key of request and response bodies
	idField   string // ID field of a success entry
	verbose   bool   // log status and body at info level
}

var (
	campaignsResource = resource{
		path:      "/sp/campaigns",
		mediaType: "application/vnd.spCampaign.v3+json",
		key:       "campaigns",
		idField:   "campaignId",
		verbose:   true,
	}
	adGroupsResource = resource{
		path:      "/sp/adGroups",
		mediaType: "application/vnd.spAdGroup.v3+json",
		key:       "adGroups",
		idField:   "adGroupId",
	}
	keywordsResource = resource{
		path:      "/sp/keywords",
		mediaType: "application/vnd.spKeyword.v3+json",
		key:       "keywords",
		idField:   "keywordId",
		verbose:   true,
	}
	productAdsResource = resource{
		path:      "/sp/productAds",
		mediaType: "application/vnd.spProductAd.v3+json",
		key:       "productAds",
		idField:   "adId",
	}
)

// Client implements port.AdsAPI against the Sponsored Products v3 REST API.
// It is safe for concurrent use; the bearer token is supplied per call.
type Client struct {
	apiURL     url.URL
	creds      domain.Credentials
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a client for the API host at apiURL. The client ID and
// profile ID from creds are sent on every request. A zero timeout keeps the
// transport defaults.
func NewClient(apiURL url.URL, creds domain.Credentials, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiURL:     apiURL,
		creds:      creds,
		httpClient: newHTTPClient(timeout),
		logger:     logger,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// authorized wraps the base transport so every request carries the bearer
// token.
func (c *Client) authorized(token *oauth2.Token) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   c.httpClient.Transport,
		},
		Timeout: c.httpClient.Timeout,
	}
}

// create posts payload to the resource endpoint and returns the IDs of the
// accepted entries ordered by their request index.
func (c *Client) create(ctx context.Context, token *oauth2.Token, res resource, payload any) ([]string, error) {
	if token == nil || token.AccessToken == "" {
		return nil, fmt.Errorf("%s: %w: missing access token", res.key, domain.ErrAuthentication)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", res.key, err)
	}

	endpoint := c.apiURL.JoinPath(res.path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.key, err)
	}
	req.Header.Set(headerClientID, c.creds.ClientID)
	req.Header.Set(headerScope, c.creds.ProfileID)
	req.Header.Set("Content-Type", res.mediaType)
	req.Header.Set("Accept", res.mediaType)

	resp, err := c.authorized(token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.key, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", res.key, err)
	}

	level := slog.LevelDebug
	if res.verbose {
		level = slog.LevelInfo
	}
	c.logger.Log(ctx, level, res.key+" status",
		slog.Int("status", resp.StatusCode),
		slog.String("response", string(raw)),
	)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusMultiStatus {
		return nil, &domain.APIError{Resource: res.key, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	result, err := parseMultiStatus(raw, res)
	if err != nil {
		return nil, err
	}
	if len(result.ids) == 0 {
		return nil, &domain.CreationRejectedError{Resource: res.key, Reasons: result.rejected}
	}
	if len(result.rejected) > 0 {
		c.logger.WarnContext(ctx, res.key+" partially rejected",
			slog.Int("created", len(result.ids)),
			slog.Any("rejected", result.rejected),
		)
	}
	return result.ids, nil
}

// createOne is create for single-entity requests.
func (c *Client) createOne(ctx context.Context, token *oauth2.Token, res resource, payload any) (string, error) {
	ids, err := c.create(ctx, token, res, payload)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}
