package store

import (
	"strings"
	"sync"
	"time"

	"github.com/hirepipe/hirepipe/internal/domain"
)

// Store is the single source of truth for candidate responses, the fixed
// review-status reference set, and reviewer accounts. The response dataset
// is generated lazily on first read and lives for the process lifetime; no
// records are created or destroyed afterwards.
type Store struct {
	seed      int64
	seedCount int

	mu       sync.RWMutex
	once     sync.Once
	records  []*domain.CandidateResponse
	byID     map[string]*domain.CandidateResponse
	statuses []domain.ReviewStatus

	tenants      map[string]*Tenant
	usersByEmail map[string]*User

	// Transaction state. Single logical writer assumed: nested transactions
	// collapse onto the outermost snapshot, see WithTransaction.
	txDepth    int
	txSnapshot []*domain.CandidateResponse
}

// Tenant is an employer account owning reviewer users.
type Tenant struct {
	ID   string
	Name string
}

// User is a reviewer login.
type User struct {
	ID        string
	Email     string
	PassHash  []byte
	TenantID  string
	CreatedAt time.Time
}

// New constructs a store that will materialize seedCount records from seed
// on first access.
func New(seed int64, seedCount int) *Store {
	return &Store{
		seed:         seed,
		seedCount:    seedCount,
		statuses:     defaultStatuses(),
		tenants:      map[string]*Tenant{},
		usersByEmail: map[string]*User{},
	}
}

// NewFromRecords constructs a store over a caller-supplied dataset, skipping
// lazy generation. Intended for tests that need known records.
func NewFromRecords(records []*domain.CandidateResponse) *Store {
	s := New(0, 0)
	s.records = records
	s.byID = indexByID(records)
	s.once.Do(func() {}) // dataset supplied directly; disarm generation
	return s
}

// ensureSeeded runs the generation pass exactly once. This is the cold-start
// cost of the first query; repeated calls are cheap.
func (s *Store) ensureSeeded() {
	s.once.Do(func() {
		records := Generate(s.seed, s.seedCount, s.statuses)
		s.mu.Lock()
		s.records = records
		s.byID = indexByID(records)
		s.mu.Unlock()
	})
}

func indexByID(records []*domain.CandidateResponse) map[string]*domain.CandidateResponse {
	idx := make(map[string]*domain.CandidateResponse, len(records))
	for _, r := range records {
		idx[r.ID] = r
	}
	return idx
}

// All returns the live record slice. Callers must treat it as read-only;
// mutation goes through the services layer, which edits matched records in
// place.
func (s *Store) All() []*domain.CandidateResponse {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// FindByID returns the record with the given id, or nil.
func (s *Store) FindByID(id string) *domain.CandidateResponse {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// Len reports the dataset size, seeding if needed.
func (s *Store) Len() int {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ReplaceAll atomically swaps the whole record collection. Reserved for
// transaction rollback; ordinary mutation paths never call it.
func (s *Store) ReplaceAll(next []*domain.CandidateResponse) {
	s.ensureSeeded()
	s.mu.Lock()
	s.records = next
	s.byID = indexByID(next)
	s.mu.Unlock()
}

// Statuses returns a copy of the review-status reference set.
func (s *Store) Statuses() []domain.ReviewStatus {
	out := make([]domain.ReviewStatus, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// FindStatusByID resolves a review status against the reference set.
func (s *Store) FindStatusByID(id string) (domain.ReviewStatus, bool) {
	for _, st := range s.statuses {
		if st.ID == id {
			return st, true
		}
	}
	return domain.ReviewStatus{}, false
}

// AddTenant registers a tenant account.
func (s *Store) AddTenant(t *Tenant) {
	s.mu.Lock()
	s.tenants[t.ID] = t
	s.mu.Unlock()
}

// AddUser registers a reviewer, keyed by lowercased email.
func (s *Store) AddUser(u *User) {
	s.mu.Lock()
	s.usersByEmail[strings.ToLower(u.Email)] = u
	s.mu.Unlock()
}

// FindUserByEmail looks a reviewer up case-insensitively, or returns nil.
func (s *Store) FindUserByEmail(email string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByEmail[strings.ToLower(email)]
}
