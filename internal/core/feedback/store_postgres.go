// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/postgres"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

var (
	table           = schema.PickupFeedback
	feedbackColumns = strings.Join(table.Columns(), ", ")
)

// # PostgreSQL Repository

// Repository implements [FeedbackRepository] on PostgreSQL.
type Repository struct {
	db postgres.DB
}

// NewRepository constructs a PostgreSQL backed feedback store.
func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the feedback row.
func (repository *Repository) Create(context context.Context, feedback *Feedback) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)", table.Table, feedbackColumns)

	_, err := repository.db.Exec(context, query,
		feedback.ID,
		feedback.FeedbackID,
		feedback.UserID,
		feedback.FacilityID,
		feedback.Rating,
		feedback.Review,
		feedback.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "postgres_feedback_repo_create_failed")
	}
	return nil
}

// ListByFacility reads one page with the total from a window count.
func (repository *Repository) ListByFacility(context context.Context, facilityID string, params pagination.Params) ([]*Feedback, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER()
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		feedbackColumns, table.Table, table.FacilityID, table.CreatedAt, table.ID)

	rows, err := repository.db.Query(context, query, facilityID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_feedback_repo_list_failed")
	}
	defer rows.Close()

	entries := make([]*Feedback, 0, params.Limit)
	total := 0
	for rows.Next() {
		var entry Feedback
		err := rows.Scan(
			&entry.ID,
			&entry.FeedbackID,
			&entry.UserID,
			&entry.FacilityID,
			&entry.Rating,
			&entry.Review,
			&entry.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_feedback_repo_list_scan_failed")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_feedback_repo_list_failed")
	}

	return entries, total, nil
}

var _ FeedbackRepository = (*Repository)(nil)
