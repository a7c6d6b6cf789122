package store

import (
	"errors"
	"testing"

	"github.com/hirepipe/hirepipe/internal/domain"
)

func txFixture() *Store {
	return NewFromRecords([]*domain.CandidateResponse{
		{ID: "response-1", ReviewStatus: &domain.StatusRef{ID: "rs-1", Name: "New", Position: 1}},
		{ID: "response-2", ReviewStatus: nil},
	})
}

func TestTransactionCommitKeepsMutations(t *testing.T) {
	s := txFixture()
	err := s.WithTransaction(func() error {
		s.FindByID("response-1").ReviewStatus = &domain.StatusRef{ID: "rs-5", Name: "Offer Extended", Position: 5}
		s.FindByID("response-2").ReviewStatus = &domain.StatusRef{ID: "rs-2", Name: "Phone Screen", Position: 2}
		return nil
	})
	if err != nil {
		t.Fatalf("commit returned error: %v", err)
	}
	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-5" {
		t.Fatalf("response-1 status = %+v, want rs-5", got)
	}
	if got := s.FindByID("response-2").ReviewStatus; got == nil || got.ID != "rs-2" {
		t.Fatalf("response-2 status = %+v, want rs-2", got)
	}
}

func TestTransactionRollbackRestoresSnapshot(t *testing.T) {
	s := txFixture()
	boom := errors.New("boom")

	err := s.WithTransaction(func() error {
		s.FindByID("response-1").ReviewStatus = nil
		s.FindByID("response-2").ReviewStatus = &domain.StatusRef{ID: "rs-2", Name: "Phone Screen", Position: 2}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("rollback changed the error: %v", err)
	}

	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-1" {
		t.Fatalf("response-1 status after rollback = %+v, want rs-1", got)
	}
	if got := s.FindByID("response-2").ReviewStatus; got != nil {
		t.Fatalf("response-2 status after rollback = %+v, want nil", got)
	}
}

func TestNestedTransactionsCollapseToOutermost(t *testing.T) {
	s := txFixture()
	boom := errors.New("inner failure")

	err := s.WithTransaction(func() error {
		s.FindByID("response-1").ReviewStatus = nil
		// Inner transaction succeeds, but it must not commit independently.
		if err := s.WithTransaction(func() error {
			s.FindByID("response-2").ReviewStatus = &domain.StatusRef{ID: "rs-3", Name: "Technical Interview", Position: 3}
			return nil
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-1" {
		t.Fatalf("outer mutation survived rollback: %+v", got)
	}
	if got := s.FindByID("response-2").ReviewStatus; got != nil {
		t.Fatalf("inner transaction committed independently: %+v", got)
	}
}

func TestNestedTransactionErrorRollsBackAtOutermost(t *testing.T) {
	s := txFixture()
	boom := errors.New("inner")

	err := s.WithTransaction(func() error {
		s.FindByID("response-1").ReviewStatus = nil
		err := s.WithTransaction(func() error {
			s.FindByID("response-2").ReviewStatus = &domain.StatusRef{ID: "rs-3", Name: "Technical Interview", Position: 3}
			return boom
		})
		// Propagate, as a caller composing mutations would.
		return err
	})
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InTransaction() {
		t.Fatalf("transaction still open after unwind")
	}
	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-1" {
		t.Fatalf("rollback incomplete: %+v", got)
	}
	if got := s.FindByID("response-2").ReviewStatus; got != nil {
		t.Fatalf("rollback incomplete: %+v", got)
	}
}

func TestSnapshotDoesNotAliasLiveRecords(t *testing.T) {
	city := "Austin"
	s := NewFromRecords([]*domain.CandidateResponse{
		{ID: "response-1", User: domain.Candidate{City: &city}},
	})

	err := s.WithTransaction(func() error {
		*s.FindByID("response-1").User.City = "Mutated"
		return errors.New("abort")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := *s.FindByID("response-1").User.City; got != "Austin" {
		t.Fatalf("pointer field leaked into snapshot: %q", got)
	}
}

func TestTransactionPanicUnwindsAndRollsBack(t *testing.T) {
	s := txFixture()

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("panic did not propagate")
			}
		}()
		_ = s.WithTransaction(func() error {
			s.FindByID("response-1").ReviewStatus = nil
			panic("boom")
		})
	}()

	if s.InTransaction() {
		t.Fatalf("depth counter left elevated after panic")
	}
	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-1" {
		t.Fatalf("response-1 status after panic = %+v, want rs-1", got)
	}

	// The coordinator keeps working afterwards.
	err := s.WithTransaction(func() error {
		s.FindByID("response-2").ReviewStatus = &domain.StatusRef{ID: "rs-2", Name: "Phone Screen", Position: 2}
		return nil
	})
	if err != nil {
		t.Fatalf("follow-up transaction failed: %v", err)
	}
	if got := s.FindByID("response-2").ReviewStatus; got == nil || got.ID != "rs-2" {
		t.Fatalf("response-2 status = %+v, want rs-2", got)
	}
}

func TestNestedTransactionPanicRollsBackAtOutermost(t *testing.T) {
	s := txFixture()

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("panic did not propagate")
			}
		}()
		_ = s.WithTransaction(func() error {
			s.FindByID("response-1").ReviewStatus = nil
			return s.WithTransaction(func() error {
				panic("inner boom")
			})
		})
	}()

	if s.InTransaction() {
		t.Fatalf("depth counter left elevated after nested panic")
	}
	if got := s.FindByID("response-1").ReviewStatus; got == nil || got.ID != "rs-1" {
		t.Fatalf("rollback incomplete after nested panic: %+v", got)
	}
}
