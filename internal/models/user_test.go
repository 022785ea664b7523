// internal/models/user_test.go
package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The same username under two roles is two accounts, so the remote schema
// must enforce uniqueness on the (role, username) pair, never on username
// alone.
func TestUserUniqueIndexSpansRoleAndUsername(t *testing.T) {
	typ := reflect.TypeOf(User{})

	username, ok := typ.FieldByName("Username")
	require.True(t, ok)
	role, ok := typ.FieldByName("Role")
	require.True(t, ok)

	const composite = "index:idx_users_role_username,unique"
	assert.Contains(t, username.Tag.Get("gorm"), composite)
	assert.Contains(t, role.Tag.Get("gorm"), composite)
	assert.NotContains(t, username.Tag.Get("gorm"), "uniqueIndex")
}

func TestUserPasswordHashing(t *testing.T) {
	u := &User{Username: "alice", Role: UserRoleSeller}
	require.NoError(t, u.SetPassword("Password123"))

	assert.NotEqual(t, "Password123", u.PasswordHash)
	assert.NoError(t, u.CheckPassword("Password123"))
	assert.Error(t, u.CheckPassword("password123"))
}
