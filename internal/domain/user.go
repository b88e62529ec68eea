package domain

type UserID string

type User struct {
	ID       UserID `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	// CreatedAt is passed through as sent by the server; empty when absent.
	CreatedAt string `json:"created_at,omitempty"`
}

type Credentials struct {
	Email    string
	Password string
}

type AuthResult struct {
	Message string
	User    User
	Token   string
}
