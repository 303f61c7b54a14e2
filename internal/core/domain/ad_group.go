package domain

// AdGroupSpec describes the single ad group created under the campaign.
type AdGroupSpec struct {
	Name       string  `yaml:"name" json:"name"`
	DefaultBid float64 `yaml:"defaultBid" json:"defaultBid"`
}
