package domain

import "time"

// AdminRole is the only role issued by the credential gate.
const AdminRole = "admin"

// Identity is the decoded subject of a verified access token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Token carries issued access token metadata.
type Token struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
