package model

// LoginRequest authenticates a practice user or patient against the upstream.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a new practice user upstream.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResult is the upstream's login/registration response. Token is the
// bearer-style credential the upstream expects back as the user_token query
// parameter on every authenticated call.
type AuthResult struct {
	Token     string `json:"token,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`
	UUID      string `json:"uuid,omitempty"`
}

// Directory entry for the patient-facing practice listing.
type PracticeListing struct {
	PracticeUUID    string `json:"practice_uuid"`
	PracticeName    string `json:"practice_name"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	PracticeWebsite string `json:"practice_website,omitempty"`
	AboutPractice   string `json:"about_practice,omitempty"`
}
