package configs

import (
	"net/url"
	"time"

	"sp-provision/internal/core/domain"
)

// Ads holds the advertising API credentials and endpoints. The four
// credential fields are required; parsing fails when any is missing.
type Ads struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	RefreshToken string `env:"REFRESH_TOKEN,required"`
	ProfileID    string `env:"PROFILE_ID,required"`

	// TokenURL is the OAuth2 token endpoint used for the refresh-token
	// exchange.
	TokenURL url.URL `env:"TOKEN_URL" envDefault:"https://api.amazon.co.uk/auth/o2/token"`
	// APIURL is the regional advertising API host.
	APIURL url.URL `env:"API_URL" envDefault:"https://advertising-api-eu.amazon.com"`
	// Timeout bounds every outbound request. Zero leaves the transport
	// defaults in place.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

// Credentials returns the immutable credential set.
func (c Ads) Credentials() domain.Credentials {
	return domain.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RefreshToken: c.RefreshToken,
		ProfileID:    c.ProfileID,
	}
}
