package domain

import "strings"

// SignupRequest is what a signup form collects. Only Email, Password and the
// derived username are sent to the server.
type SignupRequest struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
	Company   string
}

type SignupPayload struct {
	Email    string
	Password string
	Username string
}

// DeriveUsername returns username when set, otherwise the lower-cased
// concatenation of the name parts that are present.
func DeriveUsername(username, firstName, lastName string) string {
	if strings.TrimSpace(username) != "" {
		return username
	}

	var b strings.Builder
	for _, part := range []string{firstName, lastName} {
		b.WriteString(strings.TrimSpace(part))
	}

	return strings.ToLower(b.String())
}

func (r SignupRequest) Payload() SignupPayload {
	return SignupPayload{
		Email:    r.Email,
		Password: r.Password,
		Username: DeriveUsername(r.Username, r.FirstName, r.LastName),
	}
}
