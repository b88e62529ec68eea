package ports

import (
	"context"

	"github.com/bnema/agenthub-cli/internal/domain"
)

// AuthClient talks to the remote AgentHub API. Every failure is a
// *domain.AuthError.
type AuthClient interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error)
	Signup(ctx context.Context, payload domain.SignupPayload) (domain.AuthResult, error)
	Profile(ctx context.Context) (domain.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
	Logout(ctx context.Context) (string, error)
	RequestAgent(ctx context.Context, request domain.AgentRequest) (domain.AgentRequestReceipt, error)
}
