package types

// UserResponse is the public projection of a user. The password hash is never
// part of any response body.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
