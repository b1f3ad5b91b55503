// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used for account passwords.
const DefaultHashCost = 10

// Hasher produces and checks bcrypt password hashes with a fixed cost.
//
// The salt is embedded in the output, so only the hash string is stored.
// A Hasher has no mutable state and is safe for concurrent use.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost. Out-of-range costs fall
// back to [DefaultHashCost].
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of a plain-text password.
func (h *Hasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), h.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify reports whether plainTextPassword matches existingHash.
// A mismatch or a malformed hash yields false, never an error.
func (h *Hasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// Cost reports the work factor embedded in a stored hash, or 0 if unparsable.
func Cost(existingHash string) int {
	cost, err := bcrypt.Cost([]byte(existingHash))
	if err != nil {
		return 0
	}
	return cost
}
