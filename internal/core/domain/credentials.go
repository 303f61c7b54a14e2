package domain

// Credentials are the externally supplied secrets for the advertising API.
// They are read once at start-up and never change during a run.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	ProfileID    string // advertiser profile, sent as the API scope
}

// IsComplete reports whether every field is set.
func (c Credentials) IsComplete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != "" && c.ProfileID != ""
}
