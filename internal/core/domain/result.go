package domain

// ProvisionResult aggregates the identifiers assigned by the platform during
// one run.
type ProvisionResult struct {
	CampaignID   string   `json:"campaignId"`
	AdGroupID    string   `json:"adGroupId"`
	KeywordIDs   []string `json:"keywordIds"`
	ProductAdIDs []string `json:"productAdIds"`
}
