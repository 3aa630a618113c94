package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type CredentialRepository interface {
	List(ctx context.Context) ([]domain.Credential, error)
	Find(ctx context.Context, username string) (*domain.Credential, error)
	Add(ctx context.Context, cred *domain.Credential) error
}
