package view

import (
	"fmt"
	"time"

	"github.com/taskdeck/backend/domain"
)

// Filter selects which subset of the task collection is rendered.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
)

// ParseFilter maps a query value to a Filter. Empty means all.
func ParseFilter(value string) (Filter, error) {
	switch Filter(value) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive, FilterCompleted, FilterOverdue:
		return Filter(value), nil
	default:
		return "", domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("unknown filter %q", value))
	}
}

// Node is the display projection of one task.
type Node struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	City        string `json:"city"`
	Completed   bool   `json:"completed"`
	Overdue     bool   `json:"overdue"`
	WeatherText string `json:"weather_text"`
	WeatherIcon string `json:"weather_icon,omitempty"`
	CreatedAt   string `json:"created_at"`
	DueLabel    string `json:"due_label"`
}

// Counts are computed over the unfiltered collection; the filter only limits
// which nodes are visible.
type Counts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// View is the rendered task list.
type View struct {
	Filter Filter `json:"filter"`
	Nodes  []Node `json:"tasks"`
	Counts Counts `json:"counts"`
}

const (
	createdAtLayout = "02 Jan 2006 15:04"
	dueDateLayout   = "2006-01-02"
	dueNotSet       = "Not set"
)

// Renderer projects the task collection into display nodes. It holds no state
// beyond its clock.
type Renderer struct {
	now func() time.Time
}

func NewRenderer(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now}
}

// Render applies filter and builds nodes in collection order plus aggregate
// counts over the whole collection.
func (r *Renderer) Render(tasks []domain.Task, filter Filter) View {
	today := r.now()
	out := View{
		Filter: filter,
		Nodes:  []Node{},
	}

	for i := range tasks {
		t := &tasks[i]
		out.Counts.Total++
		if t.Completed {
			out.Counts.Completed++
		} else {
			out.Counts.Active++
		}
		if !r.visible(t, filter, today) {
			continue
		}
		out.Nodes = append(out.Nodes, r.node(t, today))
	}
	return out
}

func (r *Renderer) visible(t *domain.Task, filter Filter, today time.Time) bool {
	switch filter {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return t.IsOverdue(today)
	default:
		return true
	}
}

func (r *Renderer) node(t *domain.Task, today time.Time) Node {
	due := dueNotSet
	if t.DueDate != nil {
		due = t.DueDate.Format(dueDateLayout)
	}
	text := t.WeatherText
	if text == "" {
		text = domain.WeatherUnavailable
	}
	return Node{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		City:        t.City,
		Completed:   t.Completed,
		Overdue:     t.IsOverdue(today),
		WeatherText: text,
		WeatherIcon: t.WeatherIcon,
		CreatedAt:   t.CreatedAt.Format(createdAtLayout),
		DueLabel:    due,
	}
}
