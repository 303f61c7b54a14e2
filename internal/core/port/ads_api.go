package port

import (
	"context"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

// Authenticator exchanges the configured refresh token for a short-lived
// bearer token. It is an outbound port; the token is not cached.
type Authenticator interface {
	FetchAccessToken(ctx context.Context) (*oauth2.Token, error)
}

// AdsAPI creates Sponsored Products entities on the advertising platform.
// It is an outbound port in hexagonal architecture. Every call is a single
// blocking request authorised by the given token. Batch calls return the
// identifiers of the accepted entries only.
type AdsAPI interface {
	// CreateCampaign creates one manual campaign and returns its ID.
	CreateCampaign(ctx context.Context, token *oauth2.Token, spec domain.CampaignSpec) (string, error)
	// CreateAdGroup creates one ad group under campaignID and returns its ID.
	CreateAdGroup(ctx context.Context, token *oauth2.Token, campaignID string, spec domain.AdGroupSpec) (string, error)
	// CreateKeywords attaches keyword targets to the ad group.
	CreateKeywords(ctx context.Context, token *oauth2.Token, campaignID, adGroupID string, keywords []domain.Keyword) ([]string, error)
	// CreateProductAds attaches product ads to the ad group.
	CreateProductAds(ctx context.Context, token *oauth2.Token, campaignID, adGroupID string, products []domain.Product) ([]string, error)
}
