package amazonads

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

type createProductAdsRequest struct {
	ProductAds []productAdEntry `json:"productAds"`
}

type productAdEntry struct {
	CampaignID string       `json:"campaignId"`
	AdGroupID  string       `json:"adGroupId"`
	ASIN       string       `json:"asin"`
	SKU        string       `json:"sku"`
	State      domain.State `json:"state"`
}

// CreateProductAds submits one product ad per product as a single batch.
func (c *Client) CreateProductAds(ctx context.Context, token *oauth2.Token, campaignID, adGroupID string, products []domain.Product) ([]string, error) {
	req := createProductAdsRequest{ProductAds: make([]productAdEntry, 0, len(products))}
	for _, p := range products {
		req.ProductAds = append(req.ProductAds, productAdEntry{
			CampaignID: campaignID,
			AdGroupID:  adGroupID,
			ASIN:       p.ASIN,
			SKU:        p.SKU,
			State:      domain.StateEnabled,
		})
	}
	ids, err := c.create(ctx, token, productAdsResource, req)
	if err != nil {
		return nil, fmt.Errorf("create product ads: %w", err)
	}
	return ids, nil
}
