// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when a write hits a unique constraint.
	ErrDuplicate = apperr.Conflict("Resource already exists")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// action names the failed operation and only reaches the server log.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// AppErrors from lower layers are already classified.
	if ae := apperr.As(err); ae != nil {
		return ae
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			dup := *ErrDuplicate
			dup.Cause = fmt.Errorf("%s: %s: %w", action, pgErr.ConstraintName, err)
			return &dup
		case pgerrcode.ForeignKeyViolation:
			missing := *ErrNotFound
			missing.Cause = fmt.Errorf("%s: %s: %w", action, pgErr.ConstraintName, err)
			return &missing
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsNotFound reports whether err is (or wraps) a not-found classification.
func IsNotFound(err error) bool {
	return apperr.HasCode(err, apperr.CodeNotFound)
}

// IsDuplicate reports whether err is (or wraps) a unique-constraint classification.
func IsDuplicate(err error) bool {
	return apperr.HasCode(err, apperr.CodeConflict)
}
