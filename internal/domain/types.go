package domain

// TestState is the lifecycle state of a candidate's take-home test.
type TestState string

const (
	StatePending    TestState = "pending"
	StateInProgress TestState = "in_progress"
	StateCompleted  TestState = "completed"
)

// ValidState reports whether s is one of the known test states.
func ValidState(s TestState) bool {
	switch s {
	case StatePending, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// StatusType groups review statuses into pipeline phases.
type StatusType string

const (
	StatusScreening    StatusType = "screening"
	StatusInterviewing StatusType = "interviewing"
	StatusOffer        StatusType = "offer"
	StatusRejection    StatusType = "rejection"
)

// ReviewStatus is a fixed pipeline stage label. The reference set is built
// once at store initialization and never mutated.
type ReviewStatus struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position int        `json:"position"`
	Type     StatusType `json:"type"`
}

// StatusRef is the denormalized snapshot of a ReviewStatus carried on a
// response. It is a copy taken at write time, not a live reference.
type StatusRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// CandidateTest embeds the test-taking event. Timestamps are RFC 3339
// strings or null; StartedAt is null only while pending, CompletedAt and
// TimeTakenSeconds are non-null only once completed.
type CandidateTest struct {
	ID               string    `json:"id"`
	State            TestState `json:"state"`
	ArchivedAt       *string   `json:"archivedAt"`
	StartedAt        *string   `json:"startedAt"`
	CompletedAt      *string   `json:"completedAt"`
	TimeTakenSeconds *int      `json:"timeTakenSeconds"`
}

// Candidate is the identity block on a response.
type Candidate struct {
	ID            string  `json:"id"`
	PreferredName *string `json:"preferredName"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Country       *string `json:"country"`
}

// TestRef names the assessment a response belongs to.
type TestRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CandidateResponse is the mutable core entity: one candidate's test-taking
// event plus review metadata. Only ReviewStatus and CandidateTest.ArchivedAt
// change after generation.
type CandidateResponse struct {
	ID            string        `json:"id"`
	CandidateTest CandidateTest `json:"candidateTest"`
	User          Candidate     `json:"user"`
	Test          TestRef       `json:"test"`
	ReviewStatus  *StatusRef    `json:"reviewStatus"`
	AIScore       *int          `json:"aiScore"`
	NotesPreview  *string       `json:"notesPreview"`
	NotesCount    int           `json:"notesCount"`
}

// Clone returns a deep copy of the response. Snapshots taken for rollback
// must not alias pointer fields of live records.
func (r *CandidateResponse) Clone() *CandidateResponse {
	cp := *r
	cp.CandidateTest.ArchivedAt = cloneStr(r.CandidateTest.ArchivedAt)
	cp.CandidateTest.StartedAt = cloneStr(r.CandidateTest.StartedAt)
	cp.CandidateTest.CompletedAt = cloneStr(r.CandidateTest.CompletedAt)
	cp.CandidateTest.TimeTakenSeconds = cloneInt(r.CandidateTest.TimeTakenSeconds)
	cp.User.PreferredName = cloneStr(r.User.PreferredName)
	cp.User.City = cloneStr(r.User.City)
	cp.User.State = cloneStr(r.User.State)
	cp.User.Country = cloneStr(r.User.Country)
	cp.AIScore = cloneInt(r.AIScore)
	cp.NotesPreview = cloneStr(r.NotesPreview)
	if r.ReviewStatus != nil {
		ref := *r.ReviewStatus
		cp.ReviewStatus = &ref
	}
	return &cp
}

// DisplayName is the name used for sorting: preferred name when present.
func (r *CandidateResponse) DisplayName() string {
	if r.User.PreferredName != nil {
		return *r.User.PreferredName
	}
	return r.User.Name
}

// Archived reports whether the response is soft-deleted.
func (r *CandidateResponse) Archived() bool {
	return r.CandidateTest.ArchivedAt != nil
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Stats aggregates dataset counts for the dashboard header.
type Stats struct {
	Total    int        `json:"total"`
	Active   int        `json:"active"`
	Archived int        `json:"archived"`
	ByState  StateStats `json:"byState"`
}

// StateStats breaks the dataset down by test state.
type StateStats struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}
