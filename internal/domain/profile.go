package domain

// School is the attendee's school as reported by the provider.
type School struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// Profile is an attendee profile fetched from the provider. The provider
// reports timestamps and the date of birth as opaque strings; they are stored
// as received.
type Profile struct {
	ID                  int64   `json:"id" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
	FirstName           string  `json:"first_name" validate:"required"`
	LastName            string  `json:"last_name"`
	Major               string  `json:"major"`
	ShirtSize           string  `json:"shirt_size"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	DateOfBirth         string  `json:"date_of_birth"`
	Gender              string  `json:"gender"`
	PhoneNumber         string  `json:"phone_number"`
	School              School  `json:"school"`
}

// TokenResponse is the provider's token endpoint response. The access token is
// used once to fetch a profile and is never persisted.
type TokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"`
}
