// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/wastewise/pkg/ident"
)

/*
TestFold verifies identity values fold to one stored form.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Mixed case email", "  A@X.com ", "a@x.com"},
		{"Already folded", "alice", "alice"},
		{"Blank", "   ", ""},
		{"Composed and decomposed accents", "José", "josé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ident.Fold(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "Green Earth Recyclers", ident.Text("  Green   Earth\tRecyclers "))
	assert.Equal(t, "", ident.Text(" \n "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919876543210", ident.Digits("+91 98765-43210"))
	assert.Equal(t, "12", ident.Digits("1٣٤５2"))
	assert.Equal(t, "", ident.Digits("call me"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Monday", ident.Title(" monday "))
	assert.Equal(t, "Saturday", ident.Title("SATURDAY"))
}
