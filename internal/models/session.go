package models

// Known session roles issued by the auth provider
const (
	RoleMentee = "mentee"
	RoleMentor = "mentor"
)

// Session is the authenticated user's identity, extracted from the session
// token by the session middleware and passed explicitly into every service
// call. There is no ambient "current user" lookup anywhere else.
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}
