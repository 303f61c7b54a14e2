package domain

// CampaignType is the ad product a campaign belongs to. Only Sponsored
// Products campaigns are created.
const CampaignType = "SPONSORED_PRODUCTS"

// TargetingManual is the only targeting type this tool creates.
const TargetingManual = "MANUAL"

// BudgetDaily is the budget type attached to every campaign.
const BudgetDaily = "DAILY"

// DefaultStartDate is the campaign start date used by the example plan.
const DefaultStartDate = "2026-01-08"

// State is the serving state of a created entity. Everything this tool
// creates is enabled; there is no pause or archive path.
type State string

const StateEnabled State = "ENABLED"

// BiddingStrategy selects how the platform adjusts bids in real time.
type BiddingStrategy string

const (
	StrategyLegacyForSales BiddingStrategy = "LEGACY_FOR_SALES"
	StrategyAutoForSales   BiddingStrategy = "AUTO_FOR_SALES"
	StrategyManual         BiddingStrategy = "MANUAL"
	StrategyRuleBased      BiddingStrategy = "RULE_BASED"
)

// Placement names a location class where an ad may render.
type Placement string

const (
	PlacementTop          Placement = "PLACEMENT_TOP"
	PlacementRestOfSearch Placement = "PLACEMENT_REST_OF_SEARCH"
	PlacementProductPage  Placement = "PLACEMENT_PRODUCT_PAGE"
	PlacementBusiness     Placement = "SITE_AMAZON_BUSINESS"
)

// PlacementBids holds the bid adjustment percentage for each placement.
// Values are sent as given, they are not normalised to any total.
type PlacementBids struct {
	Top          int `yaml:"top" json:"top"`
	RestOfSearch int `yaml:"restOfSearch" json:"restOfSearch"`
	ProductPage  int `yaml:"productPage" json:"productPage"`
	Business     int `yaml:"business" json:"business"`
}

// CampaignSpec describes the campaign to create. Budget is a daily cap in
// the marketplace currency.
type CampaignSpec struct {
	Name            string          `yaml:"name" json:"name"`
	DailyBudget     float64         `yaml:"dailyBudget" json:"dailyBudget"`
	BiddingStrategy BiddingStrategy `yaml:"biddingStrategy" json:"biddingStrategy"`
	Placements      PlacementBids   `yaml:"placements" json:"placements"`
	StartDate       string          `yaml:"startDate" json:"startDate"` // YYYY-MM-DD
}
