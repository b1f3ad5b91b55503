// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/accounts/facility"
	"github.com/taibuivan/wastewise/internal/accounts/user"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/sec"
)

// memoryStore is an in-memory [account.Store]. Rows are cloned on the way
// in and out so the service can never alias stored state.
type memoryStore[E account.Entity] struct {
	mu                sync.Mutex
	rows              map[string]E
	clone             func(E) E
	failRefreshWrites bool
}

func newMemoryStore[E account.Entity](clone func(E) E) *memoryStore[E] {
	return &memoryStore[E]{rows: map[string]E{}, clone: clone}
}

func (s *memoryStore[E]) collides(candidate E) bool {
	wanted := candidate.Uniques().Compact()
	for id, row := range s.rows {
		if id == candidate.Creds().ID {
			continue
		}
		existing := row.Uniques()
		for column, value := range wanted {
			if existing[column] == value {
				return true
			}
		}
	}
	return false
}

func (s *memoryStore[E]) Create(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collides(entity) {
		return dberr.ErrDuplicate
	}
	s.rows[entity.Creds().ID] = s.clone(entity)
	return nil
}

func (s *memoryStore[E]) FindOne(_ context.Context, lookup account.Lookup) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		existing := row.Uniques()
		for column, value := range lookup {
			if existing[column] == value {
				return s.clone(row), nil
			}
		}
	}
	var zero E
	return zero, dberr.ErrNotFound
}

func (s *memoryStore[E]) FindByID(_ context.Context, id string) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		var zero E
		return zero, dberr.ErrNotFound
	}
	return s.clone(row), nil
}

func (s *memoryStore[E]) Update(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rows[entity.Creds().ID]
	if !ok {
		return dberr.ErrNotFound
	}
	if s.collides(entity) {
		return dberr.ErrDuplicate
	}

	next := s.clone(entity)
	next.Creds().RefreshToken = stored.Creds().RefreshToken
	s.rows[entity.Creds().ID] = next
	return nil
}

func (s *memoryStore[E]) SetRefreshToken(_ context.Context, id string, token *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failRefreshWrites {
		return errors.New("write concern failed")
	}
	row, ok := s.rows[id]
	if !ok {
		return dberr.ErrNotFound
	}
	if token == nil {
		row.Creds().RefreshToken = nil
	} else {
		value := *token
		row.Creds().RefreshToken = &value
	}
	return nil
}

func (s *memoryStore[E]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// stored returns the raw row, secrets included.
func (s *memoryStore[E]) stored(id string) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return row, false
	}
	return s.clone(row), true
}

func (s *memoryStore[E]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func cloneUser(u *user.User) *user.User {
	clone := *u
	return &clone
}

func cloneFacility(f *facility.Facility) *facility.Facility {
	clone := *f
	clone.WasteTypes = slices.Clone(f.WasteTypes)
	clone.WorkingDays = slices.Clone(f.WorkingDays)
	return &clone
}

func testTokenConfig() sec.TokenConfig {
	return sec.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		AccessTTL:     time.Hour,
		RefreshSecret: "refresh-secret-for-tests",
		RefreshTTL:    24 * time.Hour,
		Issuer:        "wastewise.app",
	}
}

func newIssuer(t *testing.T, opts ...sec.IssuerOption) *sec.TokenIssuer {
	t.Helper()
	issuer, err := sec.NewTokenIssuer(testTokenConfig(), opts...)
	require.NoError(t, err)
	return issuer
}

type userFixture struct {
	service *account.Service[*user.User]
	store   *memoryStore[*user.User]
	issuer  *sec.TokenIssuer
	hasher  *sec.Hasher
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	store := newMemoryStore(cloneUser)
	issuer := newIssuer(t)
	hasher := sec.NewHasher(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &userFixture{
		service: account.NewService[*user.User](user.Kind, store, hasher, issuer, logger),
		store:   store,
		issuer:  issuer,
		hasher:  hasher,
	}
}

func newAlice(password string) *user.User {
	alice := &user.User{Username: "alice", Email: "A@x.com", FullName: "Alice A"}
	alice.SetPassword(password)
	return alice
}

// register stores alice and returns her ID.
func (f *userFixture) register(t *testing.T) string {
	t.Helper()
	created, err := f.service.Register(context.Background(), newAlice("Secret1!"))
	require.NoError(t, err)
	return created.ID
}

type facilityFixture struct {
	service *account.Service[*facility.Facility]
	store   *memoryStore[*facility.Facility]
	issuer  *sec.TokenIssuer
}

func newFacilityFixture(t *testing.T) *facilityFixture {
	t.Helper()

	store := newMemoryStore(cloneFacility)
	issuer := newIssuer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &facilityFixture{
		service: account.NewService[*facility.Facility](facility.Kind, store, sec.NewHasher(bcrypt.MinCost), issuer, logger),
		store:   store,
		issuer:  issuer,
	}
}
