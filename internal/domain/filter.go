package domain

// SortKey selects the comparator used by the list query.
type SortKey string

const (
	SortStartedAt SortKey = "startedAt"
	SortAIScore   SortKey = "aiScore"
	SortTestName  SortKey = "testName"
	SortName      SortKey = "name"
)

// SortDirection orders ascending or descending. Null sort keys rank last
// either way.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// ArchivedFilter narrows the list to active, archived, or all records.
type ArchivedFilter string

const (
	ArchivedActive ArchivedFilter = "active"
	ArchivedOnly   ArchivedFilter = "archived"
	ArchivedAll    ArchivedFilter = "all"
)

// StatusNameNone is the reserved reviewStatusNames filter value matching
// records with no review status assigned.
const StatusNameNone = "None"

// ListParams contains filtering/sorting/pagination parameters for response
// queries. Zero values fall back to documented defaults instead of erroring,
// to keep the read path resilient.
type ListParams struct {
	Page              int
	PageSize          int
	Sort              SortKey
	Direction         SortDirection
	Search            string
	Archived          ArchivedFilter
	TestNames         []string
	States            []TestState
	ReviewStatusNames []string
}

// ListResult is one page of the filtered, ordered record set.
type ListResult struct {
	Rows        []*CandidateResponse `json:"rows"`
	Total       int                  `json:"total"`
	HasNextPage bool                 `json:"hasNextPage"`
}
