package models

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated user id.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}

// RegisterRequest is the POST /auth/register payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
