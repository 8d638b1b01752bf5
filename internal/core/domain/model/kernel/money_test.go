package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(19.99))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should round to two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.005))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money amount")
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse a decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("15.99")

		require.NoError(t, err)
		assert.Equal(t, "15.99", m.String())
	})

	t.Run("should fail on garbage input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("nineteen")

		require.Error(t, err)
	})

	t.Run("should fail on negative input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-5.00")

		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("39.98")
		b, _ := kernel.MoneyFromString("15.99")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "55.97", sum.String())
	})

	t.Run("zero money is the additive identity", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("12.34")

		sum, err := kernel.ZeroMoney().Add(a)

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(a))
	})

	t.Run("should fail when an operand is not constructed", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("1.00")
		var zero kernel.Money

		_, err := a.Add(zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestMoney_MulInt(t *testing.T) {
	t.Run("should multiply without floating rounding", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("19.99")

		subtotal, err := price.MulInt(2)

		require.NoError(t, err)
		assert.Equal(t, "39.98", subtotal.String())
	})

	t.Run("multiplying by zero yields zero", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("19.99")

		subtotal, err := price.MulInt(0)

		require.NoError(t, err)
		assert.True(t, subtotal.IsZero())
	})

	t.Run("should fail on negative factor", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("19.99")

		_, err := price.MulInt(-1)

		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("ZeroMoney is valid", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
		assert.True(t, kernel.ZeroMoney().IsZero())
	})
}
