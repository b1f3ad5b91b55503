// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package feedback stores user ratings of facilities and serves them
// publicly per facility.
package feedback

import "time"

// FeedbackCodePrefix prefixes generated feedback references ("fbk-...").
const FeedbackCodePrefix = "fbk"

// Rating bounds and review length.
const (
	MinRating    = 1
	MaxRating    = 5
	MaxReviewLen = 1000
)

// Feedback is one user's rating of a facility.
type Feedback struct {
	ID         string    `json:"_id"`
	FeedbackID string    `json:"feedbackId"`
	UserID     string    `json:"userId"`
	FacilityID string    `json:"facilityId"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	CreatedAt  time.Time `json:"createdAt"`
}
