package ports

import "context"

type CredentialReader interface {
	Credential() (string, bool)
}

type CredentialStore interface {
	CredentialReader
	SetCredential(ctx context.Context, token string) error
	ClearCredential(ctx context.Context) error
	HasActiveSession() bool
}
