package store

import "github.com/hirepipe/hirepipe/internal/domain"

// defaultStatuses is the fixed review pipeline. Built once per store and
// treated as immutable afterwards.
func defaultStatuses() []domain.ReviewStatus {
	return []domain.ReviewStatus{
		{ID: "rs-1", Name: "New", Position: 1, Type: domain.StatusScreening},
		{ID: "rs-2", Name: "Phone Screen", Position: 2, Type: domain.StatusScreening},
		{ID: "rs-3", Name: "Technical Interview", Position: 3, Type: domain.StatusInterviewing},
		{ID: "rs-4", Name: "Final Round", Position: 4, Type: domain.StatusInterviewing},
		{ID: "rs-5", Name: "Offer Extended", Position: 5, Type: domain.StatusOffer},
		{ID: "rs-6", Name: "Not a Fit", Position: 6, Type: domain.StatusRejection},
	}
}
