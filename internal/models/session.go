package models

// Session holds the persisted client credentials. The fields mirror the
// fixed storage keys the session store writes them under.
type Session struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenPair is the credential exchange response from the treasury backend.
type TokenPair struct {
	AccessToken       string `json:"access_token"`
	RefreshToken      string `json:"refresh_token"`
	AccessExpiryTime  string `json:"access_expiry_time,omitempty"`
	RefreshExpiryTime string `json:"refresh_expiry_time,omitempty"`
}

// LoginRequest carries the credentials forwarded to the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration payload forwarded to the backend.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}
