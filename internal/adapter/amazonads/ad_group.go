package amazonads

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

type createAdGroupsRequest struct {
	AdGroups []adGroupEntry `json:"adGroups"`
}

type adGroupEntry struct {
	Name       string       `json:"name"`
	CampaignID string       `json:"campaignId"`
	DefaultBid float64      `json:"defaultBid"`
	State      domain.State `json:"state"`
}

// CreateAdGroup creates one enabled ad group under campaignID.
func (c *Client) CreateAdGroup(ctx context.Context, token *oauth2.Token, campaignID string, spec domain.AdGroupSpec) (string, error) {
	req := createAdGroupsRequest{
		AdGroups: []adGroupEntry{{
			Name:       spec.Name,
			CampaignID: campaignID,
			DefaultBid: spec.DefaultBid,
			State:      domain.StateEnabled,
		}},
	}
	id, err := c.createOne(ctx, token, adGroupsResource, req)
	if err != nil {
		return "", fmt.Errorf("create ad group %q: %w", spec.Name, err)
	}
	return id, nil
}
