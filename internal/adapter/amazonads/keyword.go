package amazonads

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

type createKeywordsRequest struct {
	Keywords []keywordEntry `json:"keywords"`
}

type keywordEntry struct {
	CampaignID  string           `json:"campaignId"`
	AdGroupID   string           `json:"adGroupId"`
	KeywordText string           `json:"keywordText"`
	MatchType   domain.MatchType `json:"matchType"`
	Bid         float64          `json:"bid"`
	State       domain.State     `json:"state"`
}

func buildKeywordsRequest(campaignID, adGroupID string, keywords []domain.Keyword) createKeywordsRequest {
	req := createKeywordsRequest{Keywords: make([]keywordEntry, 0, len(keywords))}
	for _, kw := range keywords {
		req.Keywords = append(req.Keywords, keywordEntry{
			CampaignID:  campaignID,
			AdGroupID:   adGroupID,
			KeywordText: kw.Text,
			MatchType:   kw.MatchType,
			Bid:         kw.Bid,
			State:       domain.StateEnabled,
		})
	}
	return req
}

// CreateKeywords submits all keywords as one batch. An empty slice is still
// sent; the platform decides what an empty batch means.
func (c *Client) CreateKeywords(ctx context.Context, token *oauth2.Token, campaignID, adGroupID string, keywords []domain.Keyword) ([]string, error) {
	ids, err := c.create(ctx, token, keywordsResource, buildKeywordsRequest(campaignID, adGroupID, keywords))
	if err != nil {
		return nil, fmt.Errorf("create keywords: %w", err)
	}
	return ids, nil
}
