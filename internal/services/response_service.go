package services

import (
	"fmt"
	"sort"

	"github.com/hirepipe/hirepipe/internal/domain"
	"github.com/hirepipe/hirepipe/internal/query"
)

// ResponseStore abstracts the record store operations the response workflows
// need. *store.Store satisfies it.
type ResponseStore interface {
	All() []*domain.CandidateResponse
	FindByID(id string) *domain.CandidateResponse
	Statuses() []domain.ReviewStatus
	FindStatusByID(id string) (domain.ReviewStatus, bool)
	WithTransaction(fn func() error) error
}

// ResponseService hosts the query and mutation workflows over candidate
// responses.
type ResponseService struct {
	store ResponseStore
}

// NewResponseService binds the service to a record store.
func NewResponseService(store ResponseStore) *ResponseService {
	return &ResponseService{store: store}
}

// List returns one page of responses matching p. Read-only; malformed
// parameters fall back to defaults inside the query engine.
func (s *ResponseService) List(p domain.ListParams) domain.ListResult {
	return query.List(s.store.All(), p)
}

// FindByID returns a single response or a not-found error.
func (s *ResponseService) FindByID(id string) (*domain.CandidateResponse, error) {
	rec := s.store.FindByID(id)
	if rec == nil {
		return nil, NewNotFoundError(fmt.Sprintf("response %s not found", id))
	}
	return rec, nil
}

// Update applies u to the record with the given id and reports rows affected
// (0 when the id is unknown, without error). A set, non-null reviewStatusId
// must resolve against the reference set; validation happens before any
// field is touched, so a failed update leaves the record unchanged.
func (s *ResponseService) Update(id string, u domain.ResponseUpdate) (int, error) {
	rec := s.store.FindByID(id)
	if rec == nil {
		return 0, nil
	}
	if err := s.validate(u, -1); err != nil {
		return 0, err
	}
	s.apply(rec, u)
	return 1, nil
}

// UpdateMany applies u to each id in order. It aborts on the first unknown
// id or invalid review status with an error naming the id and its position;
// updates applied before the failure persist unless the call runs inside a
// transaction. That partial-failure hazard is part of the contract, not a
// bug: callers needing atomicity wrap the call in WithTransaction.
func (s *ResponseService) UpdateMany(ids []string, u domain.ResponseUpdate) (int, error) {
	if len(ids) == 0 {
		return 0, NewInvalidError("ids must be a non-empty array")
	}
	updated := 0
	for i, id := range ids {
		rec := s.store.FindByID(id)
		if rec == nil {
			return updated, NewNotFoundError(fmt.Sprintf("response %s not found (at index %d)", id, i))
		}
		if err := s.validate(u, i); err != nil {
			return updated, err
		}
		s.apply(rec, u)
		updated++
	}
	return updated, nil
}

// BulkSetStatus assigns (or clears, for nil) a review status across ids
// atomically. The status is resolved up front and the whole batch runs in a
// transaction, so a missing id mid-batch rolls everything back.
func (s *ResponseService) BulkSetStatus(ids []string, statusID *string) (int, error) {
	if len(ids) == 0 {
		return 0, NewInvalidError("ids must be a non-empty array")
	}
	if statusID != nil {
		if _, ok := s.store.FindStatusByID(*statusID); !ok {
			return 0, NewInvalidError(fmt.Sprintf("review status %s not found", *statusID))
		}
	}
	u := domain.ResponseUpdate{ReviewStatusID: domain.Field{Set: true, Value: statusID}}
	count := 0
	err := s.store.WithTransaction(func() error {
		n, err := s.UpdateMany(ids, u)
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// WithTransaction exposes the store's transaction boundary to callers that
// compose several mutations.
func (s *ResponseService) WithTransaction(fn func() error) error {
	return s.store.WithTransaction(fn)
}

// validate checks a set, non-null reviewStatusId against the reference set.
// index is -1 for single updates.
func (s *ResponseService) validate(u domain.ResponseUpdate, index int) error {
	if !u.ReviewStatusID.Set || u.ReviewStatusID.Value == nil {
		return nil
	}
	id := *u.ReviewStatusID.Value
	if _, ok := s.store.FindStatusByID(id); !ok {
		if index >= 0 {
			return NewInvalidError(fmt.Sprintf("invalid review status %s (at index %d)", id, index))
		}
		return NewInvalidError(fmt.Sprintf("review status %s not found", id))
	}
	return nil
}

// apply mutates the matched record in place. Callers validate first.
func (s *ResponseService) apply(rec *domain.CandidateResponse, u domain.ResponseUpdate) {
	if u.ReviewStatusID.Set {
		if u.ReviewStatusID.Value == nil {
			rec.ReviewStatus = nil
		} else {
			st, _ := s.store.FindStatusByID(*u.ReviewStatusID.Value)
			rec.ReviewStatus = &domain.StatusRef{ID: st.ID, Name: st.Name, Position: st.Position}
		}
	}
	if u.ArchivedAt.Set {
		// Stored verbatim; null clears the archive flag.
		rec.CandidateTest.ArchivedAt = u.ArchivedAt.Value
	}
}

// Statuses lists the review-status reference set.
func (s *ResponseService) Statuses() []domain.ReviewStatus {
	return s.store.Statuses()
}

// FindStatusByID resolves one review status or returns a not-found error.
func (s *ResponseService) FindStatusByID(id string) (domain.ReviewStatus, error) {
	st, ok := s.store.FindStatusByID(id)
	if !ok {
		return domain.ReviewStatus{}, NewNotFoundError(fmt.Sprintf("review status %s not found", id))
	}
	return st, nil
}

// TestNames returns the unique assessment names in the dataset, sorted.
func (s *ResponseService) TestNames() []string {
	seen := map[string]bool{}
	names := []string{}
	for _, r := range s.store.All() {
		if !seen[r.Test.Name] {
			seen[r.Test.Name] = true
			names = append(names, r.Test.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Stats aggregates dataset counts for the dashboard header.
func (s *ResponseService) Stats() domain.Stats {
	var st domain.Stats
	for _, r := range s.store.All() {
		st.Total++
		if r.Archived() {
			st.Archived++
		} else {
			st.Active++
		}
		switch r.CandidateTest.State {
		case domain.StateCompleted:
			st.ByState.Completed++
		case domain.StateInProgress:
			st.ByState.InProgress++
		case domain.StatePending:
			st.ByState.Pending++
		}
	}
	return st
}
