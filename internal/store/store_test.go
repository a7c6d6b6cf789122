package store

import (
	"testing"
	"time"

	"github.com/hirepipe/hirepipe/internal/domain"
)

func TestLazyGenerationRunsOnce(t *testing.T) {
	s := New(1, 50)
	first := s.All()
	if len(first) != 50 {
		t.Fatalf("generated %d records, want 50", len(first))
	}
	second := s.All()
	if len(second) != 50 {
		t.Fatalf("second read returned %d records, want 50", len(second))
	}
	// Same backing dataset, not a regeneration.
	if first[0] != second[0] {
		t.Fatalf("repeated All() returned different record instances")
	}
}

func TestFindByID(t *testing.T) {
	s := New(1, 10)
	r := s.FindByID("response-3")
	if r == nil || r.ID != "response-3" {
		t.Fatalf("FindByID(response-3) = %+v", r)
	}
	if s.FindByID("response-999") != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestReplaceAllSwapsDatasetAndIndex(t *testing.T) {
	s := New(1, 10)
	s.All()

	next := []*domain.CandidateResponse{
		{ID: "response-1", User: domain.Candidate{ID: "user-1", Name: "Only One", Email: "only@example.com"}},
	}
	s.ReplaceAll(next)

	if got := len(s.All()); got != 1 {
		t.Fatalf("after ReplaceAll len = %d, want 1", got)
	}
	if s.FindByID("response-2") != nil {
		t.Fatalf("index still resolves replaced record")
	}
	if s.FindByID("response-1") == nil {
		t.Fatalf("index missing replacement record")
	}
}

func TestStatusReferenceSet(t *testing.T) {
	s := New(1, 1)
	statuses := s.Statuses()
	if len(statuses) != 6 {
		t.Fatalf("got %d statuses, want 6", len(statuses))
	}
	for i, st := range statuses {
		if st.Position != i+1 {
			t.Fatalf("status %s position = %d, want %d", st.ID, st.Position, i+1)
		}
	}

	st, ok := s.FindStatusByID("rs-2")
	if !ok || st.Name != "Phone Screen" {
		t.Fatalf("FindStatusByID(rs-2) = %+v, %v", st, ok)
	}
	if _, ok := s.FindStatusByID("rs-99"); ok {
		t.Fatalf("resolved nonexistent status")
	}

	// Mutating the returned copy must not leak into the reference set.
	statuses[0].Name = "mutated"
	if st, _ := s.FindStatusByID("rs-1"); st.Name != "New" {
		t.Fatalf("reference set mutated through copy")
	}
}

func TestUserLookupCaseInsensitive(t *testing.T) {
	s := New(1, 1)
	s.AddTenant(&Tenant{ID: "t1", Name: "Acme"})
	s.AddUser(&User{ID: "u1", Email: "Reviewer@Example.com", TenantID: "t1", CreatedAt: time.Now()})

	if u := s.FindUserByEmail("reviewer@example.com"); u == nil || u.ID != "u1" {
		t.Fatalf("case-insensitive lookup failed: %+v", u)
	}
	if s.FindUserByEmail("other@example.com") != nil {
		t.Fatalf("expected nil for unknown user")
	}
}
