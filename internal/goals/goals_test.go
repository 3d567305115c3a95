package goals_test

import (
	"errors"
	"testing"

	"github.com/nextstep-ai/guide-server/internal/goals"
)

func TestMemoryStore_Add(t *testing.T) {
	store := goals.NewMemoryStore()

	g, err := store.Add("user-1", "Prepare for JEE Main", "Software Developer")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if g.ID == "" {
		t.Error("Goal.ID is empty")
	}
	if g.CreatedAt.IsZero() {
		t.Error("Goal.CreatedAt is zero")
	}
	if g.IsCompleted {
		t.Error("new goal should not be completed")
	}
	if g.RelatedTo != "Software Developer" {
		t.Errorf("RelatedTo = %q, want Software Developer", g.RelatedTo)
	}

	if _, err := store.Add("", "text", ""); err == nil {
		t.Error("Add() with empty user should fail")
	}
	if _, err := store.Add("user-1", "", ""); err == nil {
		t.Error("Add() with empty text should fail")
	}
}

func TestMemoryStore_ListByUser(t *testing.T) {
	store := goals.NewMemoryStore()

	for _, text := range []string{"first", "second", "third"} {
		if _, err := store.Add("user-1", text, ""); err != nil {
			t.Fatalf("Add(%s) error = %v", text, err)
		}
	}
	if _, err := store.Add("user-2", "other", ""); err != nil {
		t.Fatalf("Add(other) error = %v", err)
	}

	list, err := store.ListByUser("user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListByUser() returned %d goals, want 3", len(list))
	}
	for _, g := range list {
		if g.UserID != "user-1" {
			t.Errorf("goal %s has UserID %q, want user-1", g.ID, g.UserID)
		}
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Error("ListByUser() not sorted newest first")
		}
	}

	empty, err := store.ListByUser("user-3")
	if err != nil {
		t.Fatalf("ListByUser(user-3) error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ListByUser(user-3) = %v, want empty non-nil slice", empty)
	}
}

func TestMemoryStore_Update(t *testing.T) {
	store := goals.NewMemoryStore()

	g, err := store.Add("user-1", "Prepare for JEE Main", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	g.Text = "Prepare for JEE Advanced"
	g.IsCompleted = true
	updated, err := store.Update(g)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Text != "Prepare for JEE Advanced" {
		t.Errorf("Text = %q, want updated text", updated.Text)
	}
	if !updated.IsCompleted {
		t.Error("IsCompleted = false, want true")
	}
	if !updated.CreatedAt.Equal(g.CreatedAt) {
		t.Error("Update() changed CreatedAt")
	}
}

func TestMemoryStore_Update_OwnerCheck(t *testing.T) {
	store := goals.NewMemoryStore()

	g, err := store.Add("user-1", "mine", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	stolen := g
	stolen.UserID = "user-2"
	stolen.Text = "hijacked"
	if _, err := store.Update(stolen); !errors.Is(err, goals.ErrNotFound) {
		t.Errorf("Update() by non-owner error = %v, want ErrNotFound", err)
	}

	missing := g
	missing.ID = "nonexistent"
	if _, err := store.Update(missing); !errors.Is(err, goals.ErrNotFound) {
		t.Errorf("Update() of missing goal error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := goals.NewMemoryStore()

	g, err := store.Add("user-1", "mine", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := store.Delete("user-2", g.ID); !errors.Is(err, goals.ErrNotFound) {
		t.Errorf("Delete() by non-owner error = %v, want ErrNotFound", err)
	}

	if err := store.Delete("user-1", g.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	list, err := store.ListByUser("user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListByUser() after delete returned %d goals, want 0", len(list))
	}

	if err := store.Delete("user-1", g.ID); !errors.Is(err, goals.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
