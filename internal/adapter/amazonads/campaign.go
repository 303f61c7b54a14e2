package amazonads

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
)

type createCampaignsRequest struct {
	Campaigns []campaignEntry `json:"campaigns"`
}

type campaignEntry struct {
	Name           string         `json:"name"`
	CampaignType   string         `json:"campaignType"`
	TargetingType  string         `json:"targetingType"`
	State          domain.State   `json:"state"`
	StartDate      string         `json:"startDate"`
	DynamicBidding dynamicBidding `json:"dynamicBidding"`
	Budget         campaignBudget `json:"budget"`
}

type dynamicBidding struct {
	PlacementBidding []placementBid         `json:"placementBidding"`
	Strategy         domain.BiddingStrategy `json:"strategy"`
}

type placementBid struct {
	Percentage int              `json:"percentage"`
	Placement  domain.Placement `json:"placement"`
}

type campaignBudget struct {
	BudgetType string  `json:"budgetType"`
	Budget     float64 `json:"budget"`
}

// buildCampaignRequest returns a request holding exactly one enabled,
// manually targeted campaign. Placement percentages are copied as given.
func buildCampaignRequest(spec domain.CampaignSpec) createCampaignsRequest {
	startDate := spec.StartDate
	if startDate == "" {
		startDate = domain.DefaultStartDate
	}
	return createCampaignsRequest{
		Campaigns: []campaignEntry{{
			Name:          spec.Name,
			CampaignType:  domain.CampaignType,
			TargetingType: domain.TargetingManual,
			State:         domain.StateEnabled,
			StartDate:     startDate,
			DynamicBidding: dynamicBidding{
				PlacementBidding: []placementBid{
					{Percentage: spec.Placements.Top, Placement: domain.PlacementTop},
					{Percentage: spec.Placements.RestOfSearch, Placement: domain.PlacementRestOfSearch},
					{Percentage: spec.Placements.ProductPage, Placement: domain.PlacementProductPage},
					{Percentage: spec.Placements.Business, Placement: domain.PlacementBusiness},
				},
				Strategy: spec.BiddingStrategy,
			},
			Budget: campaignBudget{
				BudgetType: domain.BudgetDaily,
				Budget:     spec.DailyBudget,
			},
		}},
	}
}

// CreateCampaign creates the campaign and returns the ID the platform
// assigned to it.
func (c *Client) CreateCampaign(ctx context.Context, token *oauth2.Token, spec domain.CampaignSpec) (string, error) {
	id, err := c.createOne(ctx, token, campaignsResource, buildCampaignRequest(spec))
	if err != nil {
		return "", fmt.Errorf("create campaign %q: %w", spec.Name, err)
	}
	return id, nil
}
