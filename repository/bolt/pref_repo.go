package bolt

import (
	"context"
	"strconv"

	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	"github.com/taskdeck/backend/repository"
)

const (
	darkModeKey    = "darkMode"
	themeKey       = "theme"
	currentUserKey = "currentUser"

	defaultTheme = "default"
)

type preferenceRepository struct {
	store *kvstore.Store
}

// NewPreferenceRepository returns a PreferenceRepository over the local store.
func NewPreferenceRepository(store *kvstore.Store) repository.PreferenceRepository {
	return &preferenceRepository{store: store}
}

func (r *preferenceRepository) DarkMode(_ context.Context) (bool, error) {
	raw, found, err := r.store.Get(darkModeKey)
	if err != nil || !found {
		return false, err
	}
	enabled, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		return false, nil
	}
	return enabled, nil
}

func (r *preferenceRepository) SetDarkMode(_ context.Context, enabled bool) error {
	return r.store.Put(darkModeKey, strconv.FormatBool(enabled))
}

func (r *preferenceRepository) Theme(_ context.Context) (string, error) {
	raw, found, err := r.store.Get(themeKey)
	if err != nil {
		return "", err
	}
	if !found || raw == "" {
		return defaultTheme, nil
	}
	return raw, nil
}

func (r *preferenceRepository) SetTheme(_ context.Context, theme string) error {
	return r.store.Put(themeKey, theme)
}

func (r *preferenceRepository) CurrentUser(_ context.Context) (string, error) {
	raw, _, err := r.store.Get(currentUserKey)
	return raw, err
}

func (r *preferenceRepository) SetCurrentUser(_ context.Context, username string) error {
	return r.store.Put(currentUserKey, username)
}
