// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/studyhub/internal/platform/sec"
)

func TestAuthorize(t *testing.T) {
	admin := &sec.Identity{ID: "a", Role: sec.RoleAdmin}
	user := &sec.Identity{ID: "u", Role: sec.RoleUser}

	tests := []struct {
		name     string
		identity *sec.Identity
		required sec.Role
		want     error
	}{
		{"public admits anonymous", nil, sec.RoleNone, nil},
		{"public admits user", user, sec.RoleNone, nil},
		{"admin on admin route", admin, sec.RoleAdmin, nil},
		{"user on admin route", user, sec.RoleAdmin, sec.ErrForbidden},
		{"user on user route", user, sec.RoleUser, nil},
		{"admin on user route", admin, sec.RoleUser, sec.ErrForbidden},
		{"missing identity fails closed", nil, sec.RoleAdmin, sec.ErrNoIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sec.Authorize(tt.identity, tt.required)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := sec.ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, sec.RoleAdmin, role)

	for _, raw := range []string{"", "Admin", "moderator"} {
		_, ok := sec.ParseRole(raw)
		assert.False(t, ok, raw)
	}
}
