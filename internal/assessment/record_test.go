package assessment_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nextstep-ai/guide-server/internal/assessment"
)

func TestMemoryRecordStore_SaveAndGet(t *testing.T) {
	store := assessment.NewMemoryRecordStore()

	rec, err := store.Save(assessment.Record{
		UserID: "user-1",
		Result: assessment.Result{
			Profile:   assessment.ComputeProfile(assessment.Answers{"b5_o1": 5}),
			Narrative: "a curious explorer",
		},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Save() did not assign an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save() did not stamp CreatedAt")
	}

	got, err := store.GetByID(rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Narrative != "a curious explorer" {
		t.Errorf("Narrative = %q, want %q", got.Narrative, "a curious explorer")
	}
}

func TestMemoryRecordStore_SaveRequiresUser(t *testing.T) {
	store := assessment.NewMemoryRecordStore()

	if _, err := store.Save(assessment.Record{}); err == nil {
		t.Error("Save() error = nil, want error without user id")
	}
}

func TestMemoryRecordStore_GetByID_NotFound(t *testing.T) {
	store := assessment.NewMemoryRecordStore()

	_, err := store.GetByID("missing")
	if !errors.Is(err, assessment.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRecordStore_ListByUser_NewestFirst(t *testing.T) {
	store := assessment.NewMemoryRecordStore()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		_, err := store.Save(assessment.Record{
			UserID:         "user-1",
			AssessmentName: string(rune('a' + i)),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	if _, err := store.Save(assessment.Record{UserID: "user-2"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	recs, err := store.ListByUser("user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].CreatedAt.After(recs[i-1].CreatedAt) {
			t.Errorf("records out of order: %v before %v", recs[i-1].CreatedAt, recs[i].CreatedAt)
		}
	}
	if recs[0].AssessmentName != "c" {
		t.Errorf("newest record = %q, want %q", recs[0].AssessmentName, "c")
	}
}

func TestMemoryRecordStore_UniqueIDs(t *testing.T) {
	store := assessment.NewMemoryRecordStore()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		rec, err := store.Save(assessment.Record{UserID: "user-1"})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}
