package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/agenthub-cli/internal/domain"
)

// flexibleID accepts identifiers sent as JSON strings or numbers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = flexibleID(strings.TrimSpace(n.String()))
	return nil
}

type wireUser struct {
	ID        flexibleID `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	CreatedAt string     `json:"created_at"`
}

func (u wireUser) domain() domain.User {
	return domain.User{
		ID:        domain.UserID(u.ID),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
