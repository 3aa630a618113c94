package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	DueDate     string `json:"due_date"`
}

// TaskEditRequest distinguishes absent fields from empty ones; only supplied
// fields are applied.
type TaskEditRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type PreferencesRequest struct {
	DarkMode *bool   `json:"dark_mode"`
	Theme    *string `json:"theme"`
}
