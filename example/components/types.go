package components

import "time"

// Status represents the completion status of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Tag represents a category tag for todos.
type Tag string

const (
	TagWork     Tag = "work"
	TagPersonal Tag = "personal"
	TagUrgent   Tag = "urgent"
	TagLater    Tag = "later"
)

// AllTags returns all available tags.
func AllTags() []Tag {
	return []Tag{TagWork, TagPersonal, TagUrgent, TagLater}
}

// Todo is a single todo item.
type Todo struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCompleted reports whether the todo is completed.
func (t *Todo) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasTag reports whether the todo carries tag.
func (t *Todo) HasTag(tag Tag) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// TodoStats holds counts over all todos.
type TodoStats struct {
	Total     int
	Completed int
	Pending   int
	ByTag     map[Tag]int
}

// TodoStore is the data source the components render from.
type TodoStore interface {
	Get(id string) *Todo
	List(status *Status, tags []Tag) []*Todo
	Stats() TodoStats
}
