// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pickup

import (
	"context"
	"fmt"

	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/postgres"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

var table = schema.PickupRequest

// # PostgreSQL Repository

// Repository implements [RequestRepository] on PostgreSQL.
type Repository struct {
	db postgres.DB
}

// NewRepository constructs a PostgreSQL backed pickup store.
func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the request. The date is cast server-side from its
// YYYY-MM-DD text form.
func (repository *Repository) Create(context context.Context, request *Request) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9)`,
		table.Table,
		table.ID, table.RequestID, table.UserID, table.FacilityID, table.PickupDate,
		table.PickupTime, table.PickupStatus, table.CreatedAt, table.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		request.ID,
		request.RequestID,
		request.UserID,
		request.FacilityID,
		request.PickupDate,
		request.PickupTime,
		request.PickupStatus,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "postgres_pickup_repo_create_failed")
	}
	return nil
}

/*
List retrieves one page of requests for a user or a facility.

Description: The total is computed with a window function so a single
round-trip serves both the page and its metadata.
*/
func (repository *Repository) List(context context.Context, owner Owner, ownerID string, params pagination.Params) ([]*Request, int, error) {
	ownerColumn := table.UserID
	if owner == OwnerFacility {
		ownerColumn = table.FacilityID
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, to_char(%s, 'YYYY-MM-DD'), %s, %s, %s, %s,
			COUNT(*) OVER()
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		table.ID, table.RequestID, table.UserID, table.FacilityID, table.PickupDate,
		table.PickupTime, table.PickupStatus, table.CreatedAt, table.UpdatedAt,
		table.Table,
		ownerColumn,
		table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(context, query, ownerID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_pickup_repo_list_failed")
	}
	defer rows.Close()

	requests := make([]*Request, 0, params.Limit)
	total := 0
	for rows.Next() {
		var request Request
		err := rows.Scan(
			&request.ID,
			&request.RequestID,
			&request.UserID,
			&request.FacilityID,
			&request.PickupDate,
			&request.PickupTime,
			&request.PickupStatus,
			&request.CreatedAt,
			&request.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_pickup_repo_list_scan_failed")
		}
		requests = append(requests, &request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_pickup_repo_list_failed")
	}

	return requests, total, nil
}

var _ RequestRepository = (*Repository)(nil)
