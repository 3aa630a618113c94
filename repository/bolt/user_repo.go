package bolt

import (
	"context"
	"encoding/json"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	"github.com/taskdeck/backend/repository"
)

const usersKey = "users"

type credentialRepository struct {
	store *kvstore.Store
}

// NewCredentialRepository returns a CredentialRepository over the local store.
// The credential list is one serialized value under the "users" key.
func NewCredentialRepository(store *kvstore.Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

func (r *credentialRepository) List(_ context.Context) ([]domain.Credential, error) {
	raw, found, err := r.store.Get(usersKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeCredentials(raw), nil
}

func (r *credentialRepository) Find(ctx context.Context, username string) (*domain.Credential, error) {
	creds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range creds {
		if creds[i].Username == username {
			return &creds[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *credentialRepository) Add(_ context.Context, cred *domain.Credential) error {
	if cred == nil || cred.Username == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Update(func(tx *kvstore.Tx) error {
		var creds []domain.Credential
		if raw, found := tx.Get(usersKey); found {
			creds = decodeCredentials(raw)
		}
		for _, existing := range creds {
			if existing.Username == cred.Username {
				return domain.ErrUserExists
			}
		}
		creds = append(creds, *cred)
		payload, err := json.Marshal(creds)
		if err != nil {
			return err
		}
		return tx.Put(usersKey, string(payload))
	})
}

func decodeCredentials(raw string) []domain.Credential {
	var creds []domain.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil
	}
	return creds
}
