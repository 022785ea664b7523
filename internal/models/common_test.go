// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerKeyRoundTrip(t *testing.T) {
	key := OwnerKey(UserRoleSeller, "alice")
	assert.Equal(t, "seller:alice", key)

	role, username, ok := ParseOwnerKey(key)
	assert.True(t, ok)
	assert.Equal(t, UserRoleSeller, role)
	assert.Equal(t, "alice", username)
}

func TestParseOwnerKeyRejectsMalformedKeys(t *testing.T) {
	for _, key := range []string{"", "alice", ":alice", "seller:"} {
		_, _, ok := ParseOwnerKey(key)
		assert.False(t, ok, key)
	}
}

func TestParseOwnerKeyKeepsColonsInUsername(t *testing.T) {
	role, username, ok := ParseOwnerKey("buyer:odd:name")
	assert.True(t, ok)
	assert.Equal(t, UserRoleBuyer, role)
	assert.Equal(t, "odd:name", username)
}

func TestIsActiveStatus(t *testing.T) {
	assert.True(t, IsActiveStatus(ProductStatusActive))
	assert.True(t, IsActiveStatus(ProductStatus(" Active ")))
	assert.True(t, IsActiveStatus(ProductStatus("ACTIVE")))
	assert.False(t, IsActiveStatus(ProductStatusInactive))
	assert.False(t, IsActiveStatus(ProductStatus("")))
	assert.False(t, IsActiveStatus(ProductStatus("act ive")))
}

func TestOrderTransitionsAreStrictlyForward(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	assert.True(t, order.CanTransition(OrderStatusProcessing))
	assert.True(t, order.CanTransition(OrderStatusCompleted))
	assert.False(t, order.CanTransition(OrderStatusPending))

	order.Status = OrderStatusProcessing
	assert.True(t, order.CanTransition(OrderStatusCompleted))
	assert.False(t, order.CanTransition(OrderStatusPending))

	order.Status = OrderStatusCompleted
	assert.False(t, order.CanTransition(OrderStatusPending))
	assert.False(t, order.CanTransition(OrderStatusProcessing))
	assert.False(t, order.CanTransition(OrderStatusCompleted))

	order.Status = OrderStatus("garbage")
	assert.False(t, order.CanTransition(OrderStatusCompleted))
}

func TestValidRole(t *testing.T) {
	for _, role := range []UserRole{UserRoleFarmer, UserRoleCompostProcessor, UserRoleSeller, UserRoleBuyer, UserRoleAdmin} {
		assert.True(t, ValidRole(role), role)
	}
	assert.False(t, ValidRole(UserRole("superuser")))
	assert.False(t, ValidRole(UserRole("")))
}
