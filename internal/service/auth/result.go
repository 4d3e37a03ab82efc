package auth

import "github.com/okoshkin/lifelog-backend/internal/domain"

// AuthResult is returned by Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	Profile      *domain.Profile
}

// RegisterResult is returned by Register. The confirmation token is the raw
// value that would normally be delivered by email; it is surfaced here so the
// caller can hand it to the mail sender.
type RegisterResult struct {
	Profile           *domain.Profile
	ConfirmationToken string
}
