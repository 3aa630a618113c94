package repository

import "context"

// PreferenceRepository persists the display flags and the current user marker.
// Each value is stored under its own key, independent of the others.
type PreferenceRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, username string) error
}
