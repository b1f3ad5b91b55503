// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"

	"github.com/taibuivan/wastewise/pkg/pagination"
)

// # Feedback Data Access

// FeedbackRepository defines the data access contract for feedback.
type FeedbackRepository interface {

	// Create persists a new feedback entry.
	Create(context context.Context, feedback *Feedback) error

	/*
		ListByFacility returns one page of a facility's feedback, newest first.

		Returns:
		  - []*Feedback: The page
		  - int: Total feedback for the facility
		  - error: Storage failures
	*/
	ListByFacility(context context.Context, facilityID string, params pagination.Params) ([]*Feedback, int, error)
}

// FacilityChecker reports whether a facility is registered.
type FacilityChecker interface {
	Exists(context context.Context, facilityID string) (bool, error)
}
