// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/validate"
	"github.com/taibuivan/wastewise/pkg/pagination"
	"github.com/taibuivan/wastewise/pkg/uuid"
)

const (
	FieldFacilityID = "facilityId"
	FieldRating     = "rating"
	FieldReview     = "review"
)

// Submission is the caller-supplied part of a feedback entry.
type Submission struct {
	FacilityID string
	Rating     int
	Review     string
}

// # Service Layer

// Service orchestrates feedback submission and listing.
type Service struct {
	entries    FeedbackRepository
	facilities FacilityChecker
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(entries FeedbackRepository, facilities FacilityChecker, logger *slog.Logger) *Service {
	return &Service{
		entries:    entries,
		facilities: facilities,
		logger:     logger,
		now:        time.Now,
	}
}

/*
Submit records userID's rating of a facility.

Returns:
  - *Feedback: The stored entry
  - error: ValidationError, NotFound "Facility does not exist" or storage
    failures
*/
func (service *Service) Submit(context context.Context, userID string, submission Submission) (*Feedback, error) {
	review := strings.TrimSpace(submission.Review)

	validator := &validate.Validator{}
	validator.Range(FieldRating, submission.Rating, MinRating, MaxRating).
		MaxLen(FieldReview, review, MaxReviewLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.requireFacility(context, submission.FacilityID); err != nil {
		return nil, err
	}

	entry := &Feedback{
		ID:         uuid.New(),
		FeedbackID: uuid.Code(FeedbackCodePrefix),
		UserID:     userID,
		FacilityID: submission.FacilityID,
		Rating:     submission.Rating,
		Review:     review,
		CreatedAt:  service.now().UTC(),
	}

	if err := service.entries.Create(context, entry); err != nil {
		return nil, facilityError(err)
	}

	service.logger.InfoContext(context, "feedback_submitted",
		slog.String("feedback_id", entry.FeedbackID),
		slog.String("facility_id", entry.FacilityID),
		slog.Int("rating", entry.Rating),
	)

	return entry, nil
}

// ListForFacility returns a facility's feedback, newest first. An unknown
// facility is reported as not found rather than as an empty page.
func (service *Service) ListForFacility(context context.Context, facilityID string, params pagination.Params) ([]*Feedback, int, error) {
	if err := service.requireFacility(context, facilityID); err != nil {
		return nil, 0, err
	}
	return service.entries.ListByFacility(context, facilityID, params)
}

func (service *Service) requireFacility(context context.Context, facilityID string) error {
	exists, err := service.facilities.Exists(context, facilityID)
	if err != nil {
		return err
	}
	if !exists {
		return facilityError(dberr.ErrNotFound)
	}
	return nil
}

func facilityError(err error) error {
	if dberr.IsNotFound(err) {
		return apperr.NotFound("Facility").WithMessage("Facility does not exist")
	}
	return err
}
