// Package query turns (record set, list parameters) into one page of rows
// plus the total match count. It is a pure transformation: the store is
// never mutated and identical inputs yield identical pages.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hirepipe/hirepipe/internal/domain"
)

const (
	// DefaultPageSize matches the dashboard's list endpoint.
	DefaultPageSize = 25
	// MaxPageSize caps a single page.
	MaxPageSize = 100
	// minSearchLen is the effective search threshold; shorter queries are
	// treated as no filter at all.
	minSearchLen = 2
)

// List filters, sorts, and paginates records according to p. Malformed
// parameter values fall back to documented defaults rather than erroring,
// keeping the read path resilient.
func List(records []*domain.CandidateResponse, p domain.ListParams) domain.ListResult {
	p = normalize(p)

	filtered := make([]*domain.CandidateResponse, 0, len(records))
	for _, r := range records {
		if matches(r, p) {
			filtered = append(filtered, r)
		}
	}

	sortRecords(filtered, p.Sort, p.Direction)

	total := len(filtered)
	// Past-the-end pages yield an empty page with the correct total. Checking
	// the page number before multiplying also keeps absurd values from
	// overflowing the offset.
	offset := total
	if p.Page-1 <= total/p.PageSize {
		offset = (p.Page - 1) * p.PageSize
		if offset > total {
			offset = total
		}
	}
	// Fetch one extra row to detect the next page; equivalent to checking
	// offset+pageSize < total.
	end := offset + p.PageSize + 1
	if end > total {
		end = total
	}
	paged := filtered[offset:end]

	hasNext := len(paged) > p.PageSize
	rows := paged
	if hasNext {
		rows = paged[:p.PageSize]
	}

	return domain.ListResult{Rows: rows, Total: total, HasNextPage: hasNext}
}

func normalize(p domain.ListParams) domain.ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	switch p.Sort {
	case domain.SortStartedAt, domain.SortAIScore, domain.SortTestName, domain.SortName:
	default:
		p.Sort = domain.SortStartedAt
	}
	switch p.Direction {
	case domain.Asc, domain.Desc:
	default:
		p.Direction = domain.Desc
	}
	switch p.Archived {
	case domain.ArchivedActive, domain.ArchivedOnly, domain.ArchivedAll:
	default:
		p.Archived = domain.ArchivedActive
	}
	return p
}

// matches applies the filter pipeline: archived, search, testNames, states,
// reviewStatusNames. The stages are independent predicates, so order only
// matters for short-circuiting.
func matches(r *domain.CandidateResponse, p domain.ListParams) bool {
	switch p.Archived {
	case domain.ArchivedActive:
		if r.Archived() {
			return false
		}
	case domain.ArchivedOnly:
		if !r.Archived() {
			return false
		}
	}

	// The threshold looks at the trimmed length, but the match itself keeps
	// the query's whitespace.
	if len(strings.TrimSpace(p.Search)) >= minSearchLen {
		q := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(r.User.Name), q) &&
			!strings.Contains(strings.ToLower(r.User.Email), q) &&
			!strings.Contains(strings.ToLower(r.Test.Name), q) {
			return false
		}
	}

	if len(p.TestNames) > 0 && !containsString(p.TestNames, r.Test.Name) {
		return false
	}

	if len(p.States) > 0 && !containsState(p.States, r.CandidateTest.State) {
		return false
	}

	if len(p.ReviewStatusNames) > 0 {
		includeNone := containsString(p.ReviewStatusNames, domain.StatusNameNone)
		if r.ReviewStatus == nil {
			return includeNone
		}
		return containsString(p.ReviewStatusNames, r.ReviewStatus.Name)
	}

	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsState(set []domain.TestState, v domain.TestState) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortRecords orders in place. Records with a null sort key rank after all
// non-null records in both directions; the direction sign is applied only to
// non-null comparisons.
func sortRecords(list []*domain.CandidateResponse, key domain.SortKey, dir domain.SortDirection) {
	coll := collate.New(language.English)
	sign := 1
	if dir == domain.Desc {
		sign = -1
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch key {
		case domain.SortAIScore:
			return lessIntPtr(a.AIScore, b.AIScore, sign)
		case domain.SortTestName:
			return coll.CompareString(a.Test.Name, b.Test.Name)*sign < 0
		case domain.SortName:
			return coll.CompareString(a.DisplayName(), b.DisplayName())*sign < 0
		default: // startedAt
			return lessStrPtr(a.CandidateTest.StartedAt, b.CandidateTest.StartedAt, coll, sign)
		}
	})
}

func lessIntPtr(a, b *int, sign int) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	switch {
	case *a < *b:
		return sign > 0
	case *a > *b:
		return sign < 0
	}
	return false
}

func lessStrPtr(a, b *string, coll *collate.Collator, sign int) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	return coll.CompareString(*a, *b)*sign < 0
}
