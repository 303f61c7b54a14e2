package domain

// MatchType controls how strictly a keyword must match a shopper query.
type MatchType string

const (
	MatchExact  MatchType = "EXACT"
	MatchPhrase MatchType = "PHRASE"
	MatchBroad  MatchType = "BROAD"
)

// Keyword is a keyword target attached to the ad group.
type Keyword struct {
	Text      string    `yaml:"text" json:"text"`
	MatchType MatchType `yaml:"matchType" json:"matchType"`
	Bid       float64   `yaml:"bid" json:"bid"`
}

// Product identifies an advertised item by catalog identifier and the
// seller's stock-keeping unit.
type Product struct {
	ASIN string `yaml:"asin" json:"asin"`
	SKU  string `yaml:"sku" json:"sku"`
}
