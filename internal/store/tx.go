package store

import "github.com/hirepipe/hirepipe/internal/domain"

// WithTransaction runs fn atomically with respect to failure: if fn returns
// an error, every record mutation made since the outermost transaction began
// is rolled back by restoring a deep snapshot, and the original error is
// returned unchanged.
//
// Transactions are reentrant. Only the outermost boundary snapshots and
// only the outermost boundary commits or rolls back; inner transactions
// cannot commit independently. The depth counter is not goroutine-safe:
// the data layer assumes a single logical writer (readers may still observe
// in-flight mutations before a rollback lands, matching the reference
// behavior).
func (s *Store) WithTransaction(fn func() error) (err error) {
	s.ensureSeeded()

	s.txDepth++
	if s.txDepth == 1 {
		s.txSnapshot = s.snapshot()
	}

	// The unwind runs deferred so a panic inside fn cannot leave the depth
	// counter elevated or the snapshot dangling. A panic rolls back at the
	// outermost boundary and then propagates.
	defer func() {
		s.txDepth--
		if r := recover(); r != nil {
			if s.txDepth == 0 {
				s.ReplaceAll(s.txSnapshot)
				s.txSnapshot = nil
			}
			panic(r)
		}
		if s.txDepth > 0 {
			return
		}
		if err != nil {
			s.ReplaceAll(s.txSnapshot)
		}
		s.txSnapshot = nil
	}()

	return fn()
}

// InTransaction reports whether a transaction is currently open.
func (s *Store) InTransaction() bool {
	return s.txDepth > 0
}

// snapshot deep-copies the record set so later in-place mutations cannot
// leak into it.
func (s *Store) snapshot() []*domain.CandidateResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CandidateResponse, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}
