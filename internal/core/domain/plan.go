package domain

// Plan is the full set of business parameters for one provisioning run.
type Plan struct {
	Campaign CampaignSpec `yaml:"campaign" json:"campaign"`
	AdGroup  AdGroupSpec  `yaml:"adGroup" json:"adGroup"`
	Keywords []Keyword    `yaml:"keywords" json:"keywords"`
	Products []Product    `yaml:"products" json:"products"`
}

// DefaultPlan returns the example plan: a manual campaign with a budget of
// 100, a 50/30/10/10 placement split, three exact-match toy keywords and
// three products.
func DefaultPlan() Plan {
	return Plan{
		Campaign: CampaignSpec{
			Name:            "Faizan4b",
			DailyBudget:     100,
			BiddingStrategy: StrategyAutoForSales,
			Placements: PlacementBids{
				Top:          50,
				RestOfSearch: 30,
				ProductPage:  10,
				Business:     10,
			},
			StartDate: DefaultStartDate,
		},
		AdGroup: AdGroupSpec{
			Name:       "Lambda Ad Group 2",
			DefaultBid: 3.0,
		},
		Keywords: []Keyword{
			{Text: "kids toy", MatchType: MatchExact, Bid: 2.0},
			{Text: "children toy", MatchType: MatchExact, Bid: 2.0},
			{Text: "baby toy", MatchType: MatchExact, Bid: 2.0},
		},
		Products: []Product{
			{ASIN: "B00792NTR8", SKU: "0A-SLD7-P9Y1"},
			{ASIN: "B007OUBIDC", SKU: "0B-S5LI-HUN6"},
			{ASIN: "B009GCTRCU", SKU: "0L-Z03K-YKYE"},
		},
	}
}
