package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/pthm/elcmp/el"
	"github.com/pthm/elcmp/example/components"
)

// Store is an in-memory todo store that implements components.TodoStore.
// Todos are kept newest first.
type Store struct {
	mu     sync.RWMutex
	todos  []*components.Todo
	nextID int
	now    func() time.Time
}

// NewStore creates a store seeded with sample data.
func NewStore() *Store {
	s := &Store{nextID: 1, now: time.Now}

	s.Add("Buy groceries", "Milk, eggs, bread", []components.Tag{components.TagPersonal})
	s.Add("Review PR #123", "Check the authentication changes", []components.Tag{components.TagWork, components.TagUrgent})
	s.Add("Write documentation", "Update API docs for v2", []components.Tag{components.TagWork})
	s.Add("Call dentist", "Schedule annual checkup", []components.Tag{components.TagPersonal, components.TagLater})

	return s
}

// Add creates a todo and returns its ID.
func (s *Store) Add(title, description string, tags []components.Tag) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("todo-%d", s.nextID)
	s.nextID++

	now := s.now()
	todo := &components.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      components.StatusPending,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos = append([]*components.Todo{todo}, s.todos...)
	return id
}

func (s *Store) index(id string) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get returns a todo by ID, or nil.
func (s *Store) Get(id string) *components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.todos[i]
	}
	return nil
}

// Toggle flips a todo between pending and completed.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}
	todo := s.todos[i]
	if todo.IsCompleted() {
		todo.Status = components.StatusPending
	} else {
		todo.Status = components.StatusCompleted
	}
	todo.UpdatedAt = s.now()
	return true
}

// Delete removes a todo by ID.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return true
}

// List returns the todos with the given status (all when nil) that carry
// every tag in tags.
func (s *Store) List(status *components.Status, tags []components.Tag) []*components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []any
	if status != nil {
		matched = el.FilterBy(s.todos, map[string]any{"Status": *status})
	} else {
		matched = el.FilterBy(s.todos, func(any) bool { return true })
	}

	result := make([]*components.Todo, 0, len(matched))
	for _, item := range matched {
		todo := item.(*components.Todo)
		if hasAll(todo, tags) {
			result = append(result, todo)
		}
	}
	return result
}

func hasAll(todo *components.Todo, tags []components.Tag) bool {
	for _, tag := range tags {
		if !todo.HasTag(tag) {
			return false
		}
	}
	return true
}

// Stats counts todos by status and tag.
func (s *Store) Stats() components.TodoStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := components.TodoStats{ByTag: make(map[components.Tag]int)}
	for _, todo := range s.todos {
		stats.Total++
		if todo.IsCompleted() {
			stats.Completed++
		} else {
			stats.Pending++
		}
		for _, tag := range todo.Tags {
			stats.ByTag[tag]++
		}
	}
	return stats
}
