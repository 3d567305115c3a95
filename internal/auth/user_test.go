package auth_test

import (
	"errors"
	"testing"

	"github.com/nextstep-ai/guide-server/internal/auth"
)

func TestMemoryUserStore_Create(t *testing.T) {
	store := auth.NewMemoryUserStore()

	u, err := store.Create("9876543210")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == "" {
		t.Error("User.ID is empty")
	}
	if u.CreatedAt.IsZero() {
		t.Error("User.CreatedAt is zero")
	}

	if _, err := store.Create("9876543210"); err == nil {
		t.Error("Create() with duplicate mobile should fail")
	}
	if _, err := store.Create(""); err == nil {
		t.Error("Create() with empty mobile should fail")
	}
}

func TestMemoryUserStore_Lookups(t *testing.T) {
	store := auth.NewMemoryUserStore()

	created, err := store.Create("9876543210")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byMobile, err := store.GetByMobile("9876543210")
	if err != nil {
		t.Fatalf("GetByMobile() error = %v", err)
	}
	if byMobile.ID != created.ID {
		t.Errorf("GetByMobile() ID = %q, want %q", byMobile.ID, created.ID)
	}

	byID, err := store.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Mobile != "9876543210" {
		t.Errorf("GetByID() Mobile = %q, want 9876543210", byID.Mobile)
	}

	if _, err := store.GetByMobile("0000000000"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("GetByMobile(unknown) error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetByID("unknown"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrUserNotFound", err)
	}
}
