package domain

// Preferences holds the per-installation display flags.
type Preferences struct {
	DarkMode    bool   `json:"dark_mode"`
	Theme       string `json:"theme"`
	CurrentUser string `json:"current_user,omitempty"`
}

// Themes enumerates the selectable theme identifiers.
var Themes = []string{"default", "ocean", "forest", "sunset"}

// ValidTheme reports whether name is one of the selectable themes.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
