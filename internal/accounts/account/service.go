// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/sec"
	"github.com/taibuivan/wastewise/pkg/uuid"
)

// # Collaborators

// PasswordHasher is satisfied by [*sec.Hasher].
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer is satisfied by [*sec.TokenIssuer].
type TokenIssuer interface {
	IssueAccessToken(identity sec.Identity) (string, error)
	IssueRefreshToken(subject string, kind sec.Kind) (string, error)
	VerifyAccessToken(token string, kind sec.Kind) (*sec.AccessClaims, error)
	VerifyRefreshToken(token string, kind sec.Kind) (*sec.RefreshClaims, error)
}

// Session is the result of a login or a token refresh.
type Session[E Entity] struct {
	Account      E
	AccessToken  string
	RefreshToken string
}

// # Service Layer

// Service runs the account lifecycle for one kind.
type Service[E Entity] struct {
	kind      Kind
	store     Store[E]
	hasher    PasswordHasher
	tokens    TokenIssuer
	logger    *slog.Logger
	now       func() time.Time
	listeners []Listener
}

// NewService constructs a [Service] for kind.
func NewService[E Entity](kind Kind, store Store[E], hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) *Service[E] {
	return &Service[E]{
		kind:   kind,
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("kind", kind.Name.String())),
		now:    time.Now,
	}
}

// Kind returns the descriptor the service was built with.
func (service *Service[E]) Kind() Kind { return service.kind }

// OnChange registers a listener for registrations, updates and deletions.
// Listeners must be registered before the service handles requests.
func (service *Service[E]) OnChange(listener Listener) {
	service.listeners = append(service.listeners, listener)
}

func (service *Service[E]) notify(ctx context.Context, event Event, accountID string) {
	for _, listener := range service.listeners {
		listener(ctx, event, accountID)
	}
}

// # Registration

/*
Register creates a new account from a decoded registration.

Description: Normalizes the record, enforces the business rules, rejects an
identity already taken by another account of the same kind, then hashes the
staged password and persists.

Returns:
  - E: The stored account, sanitized
  - error: ValidationError, Conflict or Internal
*/
func (service *Service[E]) Register(ctx context.Context, account E) (E, error) {
	var zero E

	account.Normalize()
	if err := account.Validate(); err != nil {
		return zero, err
	}

	creds := account.Creds()
	if password, ok := creds.PendingPassword(); !ok || password == "" {
		return zero, apperr.ValidationError(service.kind.RequiredMessage)
	}

	// Friendly early rejection; the unique constraints still decide races.
	_, err := service.store.FindOne(ctx, account.Uniques().Compact())
	switch {
	case err == nil:
		return zero, apperr.Conflict(service.kind.ConflictMessage)
	case !dberr.IsNotFound(err):
		return zero, err
	}

	now := service.now().UTC()
	creds.ID = uuid.New()
	creds.CreatedAt = now
	creds.UpdatedAt = now
	creds.RefreshToken = nil

	if err := creds.Seal(service.hasher); err != nil {
		return zero, apperr.Internal(err)
	}

	if err := service.store.Create(ctx, account); err != nil {
		return zero, service.storeError(err)
	}

	service.logger.InfoContext(ctx, "account_registered", slog.String("account_id", creds.ID))
	service.notify(ctx, EventRegistered, creds.ID)

	creds.Sanitize()
	return account, nil
}

// # Sessions

/*
Login authenticates an identity and password and opens a session.

Parameters:
  - lookup: The identity fields supplied by the client, already folded
  - password: The plaintext password

Returns:
  - *Session[E]: The sanitized account and both tokens
  - error: ValidationError, NotFound, Unauthorized or Internal
*/
func (service *Service[E]) Login(ctx context.Context, lookup Lookup, password string) (*Session[E], error) {
	lookup = lookup.Compact()
	if len(lookup) == 0 {
		return nil, apperr.ValidationError(service.kind.IdentityMessage)
	}
	if password == "" {
		return nil, apperr.ValidationError(service.kind.RequiredMessage)
	}

	account, err := service.store.FindOne(ctx, lookup)
	if err != nil {
		return nil, service.storeError(err)
	}

	if !service.hasher.Verify(password, account.Creds().PasswordHash) {
		service.logger.WarnContext(ctx, "login_rejected", slog.String("account_id", account.Creds().ID))
		return nil, apperr.Unauthorized(service.kind.CredentialMessage)
	}

	return service.issue(ctx, account)
}

/*
Refresh exchanges a refresh token for a new pair.

Description: The presented token must verify and must equal the one stored
on the account; a token replaced by a later login, a refresh or cleared by
logout is rejected. The stored token is rotated.
*/
func (service *Service[E]) Refresh(ctx context.Context, refreshToken string) (*Session[E], error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Unauthorized request")
	}

	claims, err := service.tokens.VerifyRefreshToken(refreshToken, service.kind.Name)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	account, err := service.store.FindByID(ctx, claims.Subject)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}

	stored := account.Creds().RefreshToken
	if stored == nil || *stored != refreshToken {
		service.logger.WarnContext(ctx, "stale_refresh_token", slog.String("account_id", claims.Subject))
		return nil, apperr.Unauthorized("Refresh token is either expired or used")
	}

	return service.issue(ctx, account)
}

// issue mints both tokens and persists the refresh token. Nothing is returned
// unless the store accepted the new token.
func (service *Service[E]) issue(ctx context.Context, account E) (*Session[E], error) {
	creds := account.Creds()
	email, displayName := account.Claims()

	accessToken, err := service.tokens.IssueAccessToken(sec.Identity{
		Subject:     creds.ID,
		Kind:        service.kind.Name,
		Email:       email,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, tokenFailure(err)
	}

	refreshToken, err := service.tokens.IssueRefreshToken(creds.ID, service.kind.Name)
	if err != nil {
		return nil, tokenFailure(err)
	}

	if err := service.store.SetRefreshToken(ctx, creds.ID, &refreshToken); err != nil {
		return nil, tokenFailure(err)
	}

	service.logger.InfoContext(ctx, "session_issued", slog.String("account_id", creds.ID))

	creds.Sanitize()
	return &Session[E]{Account: account, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func tokenFailure(cause error) error {
	return apperr.Internal(cause).WithMessage("Something went wrong while generating tokens")
}

// Logout clears the stored refresh token. Calling it again is a no-op.
func (service *Service[E]) Logout(ctx context.Context, accountID string) error {
	if err := service.store.SetRefreshToken(ctx, accountID, nil); err != nil {
		return service.storeError(err)
	}

	service.logger.InfoContext(ctx, "session_closed", slog.String("account_id", accountID))
	return nil
}

/*
ResolveSession verifies an access token of this kind and loads its account.

The verification error text is never returned to the client.

Returns:
  - sec.Principal: The account ID and kind
  - any: The sanitized account (an E)
  - error: Unauthorized, or Internal on store failure
*/
func (service *Service[E]) ResolveSession(ctx context.Context, accessToken string) (sec.Principal, any, error) {
	claims, err := service.tokens.VerifyAccessToken(accessToken, service.kind.Name)
	if err != nil {
		return sec.Principal{}, nil, apperr.Unauthorized("Invalid or expired access token")
	}

	account, err := service.store.FindByID(ctx, claims.Subject)
	if err != nil {
		if dberr.IsNotFound(err) {
			return sec.Principal{}, nil, apperr.Unauthorized("Invalid access token")
		}
		return sec.Principal{}, nil, err
	}

	account.Creds().Sanitize()
	return sec.Principal{Subject: claims.Subject, Kind: service.kind.Name}, account, nil
}

// # Profile

/*
UpdateProfile applies a partial update to the account.

Description: Rejects a patch that carries no field. The merged record goes
through the same normalization and rules as a registration.
*/
func (service *Service[E]) UpdateProfile(ctx context.Context, accountID string, patch Patch[E]) (E, error) {
	var zero E

	if patch == nil || patch.Empty() {
		return zero, apperr.ValidationError("At least one field is required to update")
	}

	account, err := service.store.FindByID(ctx, accountID)
	if err != nil {
		return zero, service.storeError(err)
	}

	patch.Apply(account)
	account.Normalize()
	if err := account.Validate(); err != nil {
		return zero, err
	}

	if err := service.save(ctx, account); err != nil {
		return zero, err
	}

	service.logger.InfoContext(ctx, "account_updated", slog.String("account_id", accountID))
	service.notify(ctx, EventUpdated, accountID)

	account.Creds().Sanitize()
	return account, nil
}

/*
ChangePassword replaces the password after checking the current one.

Returns:
  - error: Unauthorized "Incorrect password", ValidationError "Passwords do
    not match", or a store failure
*/
func (service *Service[E]) ChangePassword(ctx context.Context, accountID, current, next, confirm string) error {
	if current == "" || next == "" {
		return apperr.ValidationError(service.kind.RequiredMessage)
	}

	account, err := service.store.FindByID(ctx, accountID)
	if err != nil {
		return service.storeError(err)
	}

	creds := account.Creds()
	if !service.hasher.Verify(current, creds.PasswordHash) {
		return apperr.Unauthorized("Incorrect password")
	}
	if next != confirm {
		return apperr.ValidationError("Passwords do not match")
	}

	creds.SetPassword(next)
	if err := service.save(ctx, account); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "password_changed", slog.String("account_id", accountID))
	return nil
}

// save seals any staged password and writes the record.
func (service *Service[E]) save(ctx context.Context, account E) error {
	creds := account.Creds()
	if err := creds.Seal(service.hasher); err != nil {
		return apperr.Internal(err)
	}

	creds.UpdatedAt = service.now().UTC()
	if err := service.store.Update(ctx, account); err != nil {
		return service.storeError(err)
	}
	return nil
}

// Delete removes the account and, through the store, its dependent records.
func (service *Service[E]) Delete(ctx context.Context, accountID string) error {
	if err := service.store.Delete(ctx, accountID); err != nil {
		return service.storeError(err)
	}

	service.logger.WarnContext(ctx, "account_deleted", slog.String("account_id", accountID))
	service.notify(ctx, EventDeleted, accountID)
	return nil
}

// storeError rewrites store classifications with this kind's wording.
func (service *Service[E]) storeError(err error) error {
	switch {
	case dberr.IsNotFound(err):
		return apperr.NotFound(service.kind.Label).WithMessage(service.kind.MissingMessage)
	case dberr.IsDuplicate(err):
		return apperr.Conflict(service.kind.ConflictMessage)
	default:
		return err
	}
}
