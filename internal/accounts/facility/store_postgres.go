// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facility

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/postgres"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

var (
	table            = schema.AccountFacility
	facilityColumns  = strings.Join(table.Columns(), ", ")
	selectFacilities = fmt.Sprintf("SELECT %s FROM %s", facilityColumns, table.Table)
)

// # Facility Repository

// Repository implements [account.Store] for facilities on PostgreSQL, plus
// the directory and availability reads.
type Repository struct {
	db postgres.DB
}

// NewRepository creates a facility repository over db.
func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

// scanFacility reads one row in [schema.AccountFacilityTable.Columns] order,
// followed by any extra destinations.
func scanFacility(row pgx.Row, extra ...any) (*Facility, error) {
	found := &Facility{}
	var contact string

	destinations := append([]any{
		&found.ID,
		&found.Email,
		&found.FacilityName,
		&found.State,
		&found.City,
		&found.Pincode,
		&found.AddressLine1,
		&found.AddressLine2,
		&contact,
		&found.PickupAvailability,
		&found.WasteTypes,
		&found.OpeningHours,
		&found.ClosingHours,
		&found.WorkingDays,
		&found.PasswordHash,
		&found.RefreshToken,
		&found.CreatedAt,
		&found.UpdatedAt,
	}, extra...)

	if err := row.Scan(destinations...); err != nil {
		return nil, err
	}

	found.ContactNo = ContactNumber(contact)
	return found, nil
}

/*
Create persists a new facility into accounts.facilities.

Returns:
  - error: dberr.ErrDuplicate when the email or contact number is taken
*/
func (repository *Repository) Create(context context.Context, facility *Facility) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		table.Table, facilityColumns)

	_, err := repository.db.Exec(context, query,
		facility.ID,
		facility.Email,
		facility.FacilityName,
		facility.State,
		facility.City,
		facility.Pincode,
		facility.AddressLine1,
		facility.AddressLine2,
		string(facility.ContactNo),
		facility.PickupAvailability,
		facility.WasteTypes,
		facility.OpeningHours,
		facility.ClosingHours,
		facility.WorkingDays,
		facility.PasswordHash,
		facility.RefreshToken,
		facility.CreatedAt,
		facility.UpdatedAt,
	)
	return dberr.Wrap(err, "postgres_facility_repo_create_failed")
}

// FindOne returns the facility matching any identity in lookup.
func (repository *Repository) FindOne(context context.Context, lookup account.Lookup) (*Facility, error) {
	where, args, err := lookup.Where(table.Identity(), 1)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_facility_repo_find_one_failed")
	}

	query := fmt.Sprintf("%s WHERE (%s) LIMIT 1", selectFacilities, where)
	found, err := scanFacility(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_facility_repo_find_one_failed")
	}
	return found, nil
}

// FindByID returns the facility with the given ID.
func (repository *Repository) FindByID(context context.Context, id string) (*Facility, error) {
	query := fmt.Sprintf("%s WHERE %s = $1", selectFacilities, table.ID)

	found, err := scanFacility(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_facility_repo_find_by_id_failed")
	}
	return found, nil
}

// Update writes the profile and the password hash.
func (repository *Repository) Update(context context.Context, facility *Facility) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14,
			%s = $15, %s = $16
		WHERE %s = $1`,
		table.Table,
		table.Email, table.FacilityName, table.State, table.City, table.Pincode, table.AddressLine1, table.AddressLine2,
		table.ContactNo, table.PickupAvailability, table.WasteTypes, table.OpeningHours, table.ClosingHours, table.WorkingDays,
		table.PasswordHash, table.UpdatedAt,
		table.ID)

	tag, err := repository.db.Exec(context, query,
		facility.ID,
		facility.Email,
		facility.FacilityName,
		facility.State,
		facility.City,
		facility.Pincode,
		facility.AddressLine1,
		facility.AddressLine2,
		string(facility.ContactNo),
		facility.PickupAvailability,
		facility.WasteTypes,
		facility.OpeningHours,
		facility.ClosingHours,
		facility.WorkingDays,
		facility.PasswordHash,
		facility.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "postgres_facility_repo_update_failed")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SetRefreshToken overwrites the stored refresh token; nil clears it.
func (repository *Repository) SetRefreshToken(context context.Context, id string, token *string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $2 WHERE %s = $1", table.Table, table.RefreshToken, table.ID)

	tag, err := repository.db.Exec(context, query, id, token)
	if err != nil {
		return dberr.Wrap(err, "postgres_facility_repo_set_refresh_token_failed")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete removes the facility; its pickup requests and feedback cascade.
func (repository *Repository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "postgres_facility_repo_delete_failed")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Directory Reads

/*
List returns one page of facilities matching filter, newest first.

Returns:
  - []*Facility: The page, with secrets still populated
  - int: The total number of matches across all pages
  - error: Execution failures
*/
func (repository *Repository) List(context context.Context, filter Filter, params pagination.Params) ([]*Facility, int, error) {
	query := fmt.Sprintf(`
		%s, COUNT(*) OVER()
		FROM %s
		WHERE ($1 = '' OR LOWER(%s) = $1)
		  AND (cardinality($2::text[]) = 0 OR %s && $2::text[])
		  AND ($3::boolean IS NULL OR %s = $3)
		ORDER BY %s DESC, %s DESC
		LIMIT $4 OFFSET $5`,
		"SELECT "+facilityColumns, table.Table,
		table.City, table.WasteTypes, table.PickupAvailability,
		table.CreatedAt, table.ID)

	rows, err := repository.db.Query(context, query,
		filter.City, filter.wasteTypes(), filter.Available, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_facility_repo_list_failed")
	}
	defer rows.Close()

	facilities := make([]*Facility, 0, params.Limit)
	total := 0
	for rows.Next() {
		found, err := scanFacility(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_facility_repo_list_scan_failed")
		}
		facilities = append(facilities, found)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_facility_repo_list_failed")
	}

	return facilities, total, nil
}

// PickupAvailability reports whether the facility accepts pickups.
//
// Returns dberr.ErrNotFound if no facility has the ID.
func (repository *Repository) PickupAvailability(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", table.PickupAvailability, table.Table, table.ID)

	var available bool
	if err := repository.db.QueryRow(context, query, id).Scan(&available); err != nil {
		return false, dberr.Wrap(err, "postgres_facility_repo_availability_failed")
	}
	return available, nil
}

// Exists reports whether a facility with the ID is registered.
func (repository *Repository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table.Table, table.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "postgres_facility_repo_exists_failed")
	}
	return exists, nil
}

var _ account.Store[*Facility] = (*Repository)(nil)
