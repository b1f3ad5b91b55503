// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/postgres"
)

var (
	table       = schema.AccountUser
	selectUsers = fmt.Sprintf("SELECT %s FROM %s", strings.Join(table.Columns(), ", "), table.Table)
)

// # User Repository

// Repository implements [account.Store] for users on PostgreSQL.
type Repository struct {
	db postgres.DB
}

// NewRepository creates a user repository over db.
func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	found := &User{}
	err := row.Scan(
		&found.ID,
		&found.Username,
		&found.Email,
		&found.FullName,
		&found.PasswordHash,
		&found.RefreshToken,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return found, nil
}

/*
Create persists a new user into accounts.users.

Returns:
  - error: dberr.ErrDuplicate when the username or email is taken
*/
func (repository *Repository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		table.Table, strings.Join(table.Columns(), ", "))

	_, err := repository.db.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.RefreshToken,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return dberr.Wrap(err, "postgres_user_repo_create_failed")
}

// FindOne returns the user matching any identity in lookup.
func (repository *Repository) FindOne(context context.Context, lookup account.Lookup) (*User, error) {
	where, args, err := lookup.Where(table.Identity(), 1)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_user_repo_find_one_failed")
	}

	query := fmt.Sprintf("%s WHERE (%s) LIMIT 1", selectUsers, where)
	found, err := scanUser(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_user_repo_find_one_failed")
	}
	return found, nil
}

// FindByID returns the user with the given ID.
func (repository *Repository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf("%s WHERE %s = $1", selectUsers, table.ID)

	found, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_user_repo_find_by_id_failed")
	}
	return found, nil
}

// Update writes the profile and the password hash.
func (repository *Repository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		table.Table,
		table.Username, table.Email, table.FullName, table.PasswordHash, table.UpdatedAt,
		table.ID)

	tag, err := repository.db.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "postgres_user_repo_update_failed")
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
		return dberr.Wrap(err, "postgres_user_repo_set_refresh_token_failed")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete removes the user; pickup requests and feedback cascade.
func (repository *Repository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "postgres_user_repo_delete_failed")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

var _ account.Store[*User] = (*Repository)(nil)
