// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/wastewise/internal/platform/sec"
)

/*
TestHasher_RoundTrip verifies that a hash only matches its own plaintext.
*/
func TestHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewHasher(bcrypt.MinCost)

	tests := []struct {
		name      string
		password  string
		candidate string
		matches   bool
	}{
		{"same_password", "Secret1!", "Secret1!", true},
		{"different_case", "Secret1!", "secret1!", false},
		{"trailing_space", "Secret1!", "Secret1! ", false},
		{"empty_candidate", "Secret1!", "", false},
		{"unicode", "Mật-khẩu9", "Mật-khẩu9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)

			assert.NotEqual(t, tt.password, hash)
			assert.Equal(t, tt.matches, hasher.Verify(tt.candidate, hash))
		})
	}
}

/*
TestHasher_Salted verifies that the same input produces different hashes.
*/
func TestHasher_Salted(t *testing.T) {
	hasher := sec.NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Secret1!")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("Secret1!", first))
	assert.True(t, hasher.Verify("Secret1!", second))
}

/*
TestHasher_Cost verifies the default work factor and the out-of-range fallback.
*/
func TestHasher_Cost(t *testing.T) {
	hash, err := sec.NewHasher(99).Hash("Secret1!")
	require.NoError(t, err)
	assert.Equal(t, sec.DefaultHashCost, sec.Cost(hash))

	assert.Equal(t, 0, sec.Cost("not-a-hash"))
}

/*
TestHasher_MalformedHash verifies that Verify never errors on garbage input.
*/
func TestHasher_MalformedHash(t *testing.T) {
	hasher := sec.NewHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("Secret1!", "$2a$garbage"))
	assert.False(t, hasher.Verify("Secret1!", ""))
}
