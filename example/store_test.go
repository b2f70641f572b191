package main

import (
	"testing"

	"github.com/pthm/elcmp/example/components"
)

func TestStoreList(t *testing.T) {
	s := NewStore()
	s.Toggle("todo-2")

	completed := components.StatusCompleted
	pending := components.StatusPending

	tests := []struct {
		name   string
		status *components.Status
		tags   []components.Tag
		want   []string
	}{
		{"all newest first", nil, nil, []string{"todo-4", "todo-3", "todo-2", "todo-1"}},
		{"completed", &completed, nil, []string{"todo-2"}},
		{"pending work", &pending, []components.Tag{components.TagWork}, []string{"todo-3"}},
		{"all tags must match", nil, []components.Tag{components.TagPersonal, components.TagLater}, []string{"todo-4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, todo := range s.List(tt.status, tt.tags) {
				got = append(got, todo.ID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestStoreStats(t *testing.T) {
	s := NewStore()
	s.Toggle("todo-1")
	s.Delete("todo-3")

	stats := s.Stats()
	if stats.Total != 3 || stats.Completed != 1 || stats.Pending != 2 {
		t.Errorf("Stats() = %+v, want 3 total, 1 completed, 2 pending", stats)
	}
	if stats.ByTag[components.TagPersonal] != 2 {
		t.Errorf("ByTag[personal] = %d, want 2", stats.ByTag[components.TagPersonal])
	}
}
