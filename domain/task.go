package domain

import "time"

// Task represents a tracked activity item with its creation-time weather snapshot.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	City        string     `json:"city"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	WeatherText string     `json:"weather_text,omitempty"`
	WeatherMain string     `json:"weather_main,omitempty"`
	WeatherIcon string     `json:"weather_icon,omitempty"`
}

// IsOverdue reports whether the task has a due date strictly before today's date
// and is still open. The comparison is date-only.
func (t *Task) IsOverdue(today time.Time) bool {
	if t == nil || t.Completed || t.DueDate == nil {
		return false
	}
	return dateOf(*t.DueDate).Before(dateOf(today))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
