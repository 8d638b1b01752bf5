package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisteredCustomer(t *testing.T) {
	t.Run("should create customer from valid user id", func(t *testing.T) {
		userID := kernel.NewUUID()

		c, err := order.NewRegisteredCustomer(userID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsRegistered())
		require.NotNil(t, c.UserID())
		assert.True(t, c.UserID().IsEqual(userID))
		assert.Empty(t, c.GuestEmail())
	})

	t.Run("should fail with invalid user id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewRegisteredCustomer(invalidID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestNewGuestCustomer(t *testing.T) {
	t.Run("should create guest customer with contact fields", func(t *testing.T) {
		c, err := order.NewGuestCustomer("Ada Lovelace", "ada@example.com", "+44 20 7946 0000", "12 Analytical St")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.False(t, c.IsRegistered())
		assert.Nil(t, c.UserID())
		assert.Equal(t, "Ada Lovelace", c.GuestName())
		assert.Equal(t, "ada@example.com", c.GuestEmail())
		assert.Equal(t, "+44 20 7946 0000", c.GuestPhone())
		assert.Equal(t, "12 Analytical St", c.GuestAddress())
	})

	t.Run("should accept guest with email only", func(t *testing.T) {
		c, err := order.NewGuestCustomer("", "a@b.com", "", "")

		require.NoError(t, err)
		assert.Equal(t, "a@b.com", c.GuestEmail())
	})

	t.Run("should fail without email", func(t *testing.T) {
		_, err := order.NewGuestCustomer("Ada", "", "+44", "somewhere")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "guest email")
	})

	t.Run("should fail with whitespace-only email", func(t *testing.T) {
		_, err := order.NewGuestCustomer("Ada", "   ", "", "")

		require.Error(t, err)
	})
}

func TestCustomerRef_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var c order.CustomerRef

		err := c.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer must be created")
	})
}
