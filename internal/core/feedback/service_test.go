// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wastewise/internal/core/feedback"
	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

// memoryFeedback is an in-memory [feedback.FeedbackRepository].
type memoryFeedback struct {
	mu      sync.Mutex
	entries []*feedback.Feedback
}

func (m *memoryFeedback) Create(_ context.Context, entry *feedback.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *entry
	m.entries = append(m.entries, &clone)
	return nil
}

func (m *memoryFeedback) ListByFacility(_ context.Context, facilityID string, params pagination.Params) ([]*feedback.Feedback, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*feedback.Feedback{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].FacilityID == facilityID {
			matched = append(matched, m.entries[i])
		}
	}
	total := len(matched)
	start := min(params.Offset(), total)
	end := min(start+params.Limit, total)
	return matched[start:end], total, nil
}

// knownFacilities is a set of registered facility IDs.
type knownFacilities map[string]bool

func (k knownFacilities) Exists(_ context.Context, id string) (bool, error) {
	return k[id], nil
}

const (
	facilityID = "0190f3d2-0000-7000-8000-000000000001"
	missingID  = "0190f3d2-0000-7000-8000-0000000000ff"
	userID     = "0190f3d2-0000-7000-8000-0000000000aa"
)

func newFeedbackService(store *memoryFeedback) *feedback.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return feedback.NewService(store, knownFacilities{facilityID: true}, logger)
}

/*
TestService_Submit covers the rating bounds, review trimming and the
facility check.
*/
func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		submission feedback.Submission
		status     int
	}{
		{"rating below range", feedback.Submission{FacilityID: facilityID, Rating: 0}, 400},
		{"rating above range", feedback.Submission{FacilityID: facilityID, Rating: 6}, 400},
		{"review too long", feedback.Submission{FacilityID: facilityID, Rating: 3, Review: strings.Repeat("é", 1001)}, 400},
		{"unknown facility", feedback.Submission{FacilityID: missingID, Rating: 3}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryFeedback{}
			_, err := newFeedbackService(store).Submit(ctx, userID, tt.submission)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
			assert.Empty(t, store.entries)
		})
	}

	t.Run("stores a trimmed review", func(t *testing.T) {
		store := &memoryFeedback{}
		created, err := newFeedbackService(store).Submit(ctx, userID,
			feedback.Submission{FacilityID: facilityID, Rating: 5, Review: "  Great service \n"})

		require.NoError(t, err)
		assert.Equal(t, "Great service", created.Review)
		assert.Regexp(t, `^fbk-[0-9a-f]{12}$`, created.FeedbackID)
		assert.Len(t, store.entries, 1)
	})

	t.Run("a review of exactly the limit is accepted", func(t *testing.T) {
		store := &memoryFeedback{}
		_, err := newFeedbackService(store).Submit(ctx, userID,
			feedback.Submission{FacilityID: facilityID, Rating: 1, Review: strings.Repeat("a", feedback.MaxReviewLen)})
		assert.NoError(t, err)
	})
}

/*
TestService_ListForFacility verifies newest-first listing and the unknown
facility error.
*/
func TestService_ListForFacility(t *testing.T) {
	ctx := context.Background()
	store := &memoryFeedback{}
	service := newFeedbackService(store)

	for _, rating := range []int{2, 4} {
		_, err := service.Submit(ctx, userID, feedback.Submission{FacilityID: facilityID, Rating: rating})
		require.NoError(t, err)
	}

	entries, total, err := service.ListForFacility(ctx, facilityID, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 4, entries[0].Rating)

	_, _, err = service.ListForFacility(ctx, missingID, pagination.Params{Page: 1, Limit: 20})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
