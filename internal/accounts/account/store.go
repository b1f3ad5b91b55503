// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// # Data Access

// Store persists one account kind.
//
// Implementations report a missing row with dberr.ErrNotFound and a unique
// constraint hit with dberr.ErrDuplicate.
type Store[E Entity] interface {

	/*
		Create inserts a new account. ID, timestamps and hash are set.

		Returns:
		  - error: dberr.ErrDuplicate on an identity collision
	*/
	Create(ctx context.Context, account E) error

	/*
		FindOne returns the first account matching any entry of lookup.

		Returns:
		  - E: The full record including secrets
		  - error: dberr.ErrNotFound if nothing matched
	*/
	FindOne(ctx context.Context, lookup Lookup) (E, error)

	// FindByID returns the full record with the given ID.
	FindByID(ctx context.Context, id string) (E, error)

	/*
		Update writes the profile fields and the password hash, and bumps
		updatedAt. The refresh token is left untouched.
	*/
	Update(ctx context.Context, account E) error

	// SetRefreshToken overwrites (or clears, with nil) the stored refresh token.
	SetRefreshToken(ctx context.Context, id string, token *string) error

	// Delete removes the account. Dependent rows cascade.
	Delete(ctx context.Context, id string) error
}

// # Identity Lookup

// Lookup maps identity columns to folded values. A record matches when any
// one entry matches.
type Lookup map[string]string

// Compact drops entries with blank values.
func (lookup Lookup) Compact() Lookup {
	compact := make(Lookup, len(lookup))
	for column, value := range lookup {
		if strings.TrimSpace(value) != "" {
			compact[column] = value
		}
	}
	return compact
}

// Columns returns the lookup columns in sorted order.
func (lookup Lookup) Columns() []string {
	columns := make([]string, 0, len(lookup))
	for column := range lookup {
		columns = append(columns, column)
	}
	slices.Sort(columns)
	return columns
}

/*
Where renders the lookup as an OR'ed SQL predicate.

Column names are checked against allowed because they are spliced into the
statement; values are bound from $startArg on.

Returns:
  - string: e.g. "email = $1 OR username = $2"
  - []any: The bound values, in the same order
  - error: On an empty lookup or a column outside allowed
*/
func (lookup Lookup) Where(allowed []string, startArg int) (string, []any, error) {
	if len(lookup) == 0 {
		return "", nil, fmt.Errorf("account: empty lookup")
	}

	columns := lookup.Columns()
	predicates := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))

	for index, column := range columns {
		if !slices.Contains(allowed, column) {
			return "", nil, fmt.Errorf("account: column %q is not an identity column", column)
		}
		predicates = append(predicates, fmt.Sprintf("%s = $%d", column, startArg+index))
		args = append(args, lookup[column])
	}

	return strings.Join(predicates, " OR "), args, nil
}
