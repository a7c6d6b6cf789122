package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/hirepipe/hirepipe/internal/domain"
)

// seedBase anchors all generated timestamps so that a given seed always
// yields the same dataset, independent of wall-clock time.
var seedBase = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

var seedTestNames = []string{
	"Senior Frontend Engineer Assessment",
	"Backend Developer Technical",
	"Full Stack Take-Home",
	"System Design Interview",
	"React Specialist Assessment",
}

var seedFirstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava",
	"Ethan", "Sophia", "Mason", "Isabella", "Logan",
}

var seedLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
}

var seedCities = []string{
	"San Francisco", "New York", "Austin", "Seattle",
	"Denver", "Boston", "Portland", "Chicago",
}

var seedCityStates = []string{"CA", "NY", "TX", "WA", "CO", "MA", "OR", "IL"}

var seedNotes = []string{
	"Strong technical skills, needs culture fit interview",
	"Excellent problem solving, move to next round",
	"Good candidate, but timeline doesn't match",
	"Great communication, solid technical foundation",
}

// lcg is a 64-bit linear congruential generator (Knuth MMIX constants).
// Deliberately not crypto/rand or math/rand: the call sequence below is part
// of the dataset contract, and the same seed must reproduce the same bytes
// on every platform.
type lcg struct {
	state uint64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: uint64(seed)*2862933555777941757 + 3037000493}
}

func (r *lcg) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// float returns a uniform value in [0, 1).
func (r *lcg) float() float64 {
	return float64(r.next()>>11) / float64(uint64(1)<<53)
}

// intn returns a uniform value in [0, n).
func (r *lcg) intn(n int) int {
	return int(r.float() * float64(n))
}

// Generate produces n synthetic candidate responses. Distribution:
// states 10% pending / 10% in_progress / 80% completed; 70% carry a review
// status uniform over the reference set; 80% of completed records carry an
// aiScore uniform in [60,100]; 30% have notes; 10% are archived. Emails are
// deduplicated with a numeric suffix. IDs are response-1..n.
func Generate(seed int64, n int, statuses []domain.ReviewStatus) []*domain.CandidateResponse {
	rng := newLCG(seed)
	usedEmails := make(map[string]bool, n)
	out := make([]*domain.CandidateResponse, 0, n)

	for i := 0; i < n; i++ {
		first := seedFirstNames[rng.intn(len(seedFirstNames))]
		last := seedLastNames[rng.intn(len(seedLastNames))]
		testIdx := rng.intn(len(seedTestNames))
		cityIdx := rng.intn(len(seedCities))

		completed := seedBase.Add(-time.Duration(rng.float() * 30 * 24 * float64(time.Hour)))
		started := completed.Add(-time.Duration(rng.float() * 2 * float64(time.Hour)))

		state := domain.StateCompleted
		switch roll := rng.float(); {
		case roll < 0.1:
			state = domain.StatePending
		case roll < 0.2:
			state = domain.StateInProgress
		}

		var status *domain.StatusRef
		if rng.float() > 0.3 {
			s := statuses[rng.intn(len(statuses))]
			status = &domain.StatusRef{ID: s.ID, Name: s.Name, Position: s.Position}
		}

		var aiScore *int
		if state == domain.StateCompleted && rng.float() > 0.2 {
			v := 60 + rng.intn(41)
			aiScore = &v
		}

		var notesPreview *string
		notesCount := 0
		if rng.float() > 0.7 {
			notesPreview = &seedNotes[rng.intn(len(seedNotes))]
			notesCount = 1 + rng.intn(3)
		}

		var archivedAt *string
		if rng.float() > 0.9 {
			ts := completed.Format(time.RFC3339)
			archivedAt = &ts
		}

		var startedAt, completedAt *string
		var timeTaken *int
		if state != domain.StatePending {
			ts := started.Format(time.RFC3339)
			startedAt = &ts
		}
		if state == domain.StateCompleted {
			ts := completed.Format(time.RFC3339)
			completedAt = &ts
			secs := int(completed.Sub(started) / time.Second)
			timeTaken = &secs
		}

		var preferred *string
		if rng.float() > 0.7 {
			preferred = &first
		}

		email := uniqueEmail(first, last, usedEmails)

		out = append(out, &domain.CandidateResponse{
			ID: fmt.Sprintf("response-%d", i+1),
			CandidateTest: domain.CandidateTest{
				ID:               fmt.Sprintf("ct-%d", i+1),
				State:            state,
				ArchivedAt:       archivedAt,
				StartedAt:        startedAt,
				CompletedAt:      completedAt,
				TimeTakenSeconds: timeTaken,
			},
			User: domain.Candidate{
				ID:            fmt.Sprintf("user-%d", i+1),
				PreferredName: preferred,
				Name:          first + " " + last,
				Email:         email,
				City:          &seedCities[cityIdx],
				State:         &seedCityStates[cityIdx],
				Country:       strPtr("United States"),
			},
			Test: domain.TestRef{
				ID:   fmt.Sprintf("test-%d", testIdx+1),
				Name: seedTestNames[testIdx],
			},
			ReviewStatus: status,
			AIScore:      aiScore,
			NotesPreview: notesPreview,
			NotesCount:   notesCount,
		})
	}

	return out
}

// uniqueEmail derives first.last@example.com, retrying with a numeric suffix
// until unused.
func uniqueEmail(first, last string, used map[string]bool) string {
	base := strings.ToLower(first) + "." + strings.ToLower(last)
	email := base + "@example.com"
	for n := 2; used[email]; n++ {
		email = fmt.Sprintf("%s%d@example.com", base, n)
	}
	used[email] = true
	return email
}

func strPtr(s string) *string { return &s }
