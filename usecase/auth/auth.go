package auth

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	creds  repository.CredentialRepository
	prefs  repository.PreferenceRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(creds repository.CredentialRepository, prefs repository.PreferenceRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		creds:  creds,
		prefs:  prefs,
		logger: logger,
		now:    time.Now,
	}
}

// Register appends a new credential record. An existing username is a
// conflict and leaves the stored record untouched.
func (uc *UseCase) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.NewError(domain.ErrCodeInvalid, "username and password are required")
	}

	cred := &domain.Credential{
		Username:  username,
		Password:  password,
		CreatedAt: uc.now(),
	}
	if err := uc.creds.Add(ctx, cred); err != nil {
		return err
	}
	uc.logger.Info("user registered", zap.String("username", username))
	return nil
}

// Login succeeds only on an exact username/password match and records the
// username as the current user.
func (uc *UseCase) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	cred, err := uc.creds.Find(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if cred.Password != password {
		return domain.ErrInvalidCredentials
	}

	if err := uc.prefs.SetCurrentUser(ctx, username); err != nil {
		return err
	}
	uc.logger.Info("user logged in", zap.String("username", username))
	return nil
}

// CurrentUser returns the username recorded by the last successful login,
// empty when nobody has logged in yet.
func (uc *UseCase) CurrentUser(ctx context.Context) (string, error) {
	return uc.prefs.CurrentUser(ctx)
}
