package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newGuest(t *testing.T) order.CustomerRef {
	t.Helper()
	c, err := order.NewGuestCustomer("Ada", "ada@example.com", "", "1 Main St")
	require.NoError(t, err)
	return c
}

func TestNewOrderLine_WithProductReference(t *testing.T) {
	productID := kernel.NewUUID()
	line, err := commands.NewOrderLine(&productID, "", nil, "", 2)
	require.NoError(t, err)
	require.NotNil(t, line.ProductID())
	assert.True(t, line.ProductID().IsEqual(productID))
	assert.Equal(t, 2, line.Quantity())
	assert.Nil(t, line.UnitPrice())
}

func TestNewOrderLine_Inline(t *testing.T) {
	price := newMoney(t, "9.99")
	line, err := commands.NewOrderLine(nil, "Sticker", &price, "stickers/1.png", 1)
	require.NoError(t, err)
	assert.Nil(t, line.ProductID())
	assert.Equal(t, "Sticker", line.Name())
	assert.Equal(t, "stickers/1.png", line.ImageRef())
	require.NotNil(t, line.UnitPrice())
	assert.True(t, line.UnitPrice().IsEqual(price))
}

func TestNewOrderLine_NoSource(t *testing.T) {
	_, err := commands.NewOrderLine(nil, "Sticker", nil, "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLineHasNoSource)
}

func TestNewOrderLine_InvalidQuantity(t *testing.T) {
	productID := kernel.NewUUID()
	_, err := commands.NewOrderLine(&productID, "", nil, "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	productID := kernel.NewUUID()
	line, err := commands.NewOrderLine(&productID, "", nil, "", 1)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, newGuest(t), []commands.OrderLine{line}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Len(t, cmd.Lines(), 1)
	assert.Nil(t, cmd.Status())
	assert.Nil(t, cmd.PaymentStatus())
}

func TestNewCreateOrderCommand_WithStatusOverrides(t *testing.T) {
	status := order.Confirmed
	paymentStatus := order.Paid

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newGuest(t), nil, &status, &paymentStatus)
	require.NoError(t, err)
	require.NotNil(t, cmd.Status())
	assert.Equal(t, order.Confirmed, *cmd.Status())
	require.NotNil(t, cmd.PaymentStatus())
	assert.Equal(t, order.Paid, *cmd.PaymentStatus())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, newGuest(t), nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_UnconstructedCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.CustomerRef{}, nil, nil, nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidStatusOverride(t *testing.T) {
	status := order.Status(42)
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newGuest(t), nil, &status, nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedLine(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{{}}, nil, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLineIsNotConstructed)
}
