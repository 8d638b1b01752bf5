package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByCustomerID(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByPaymentStatus(_ context.Context, _ order.PaymentStatus) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByCustomerEmail(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductLookup struct{ mock.Mock }

func (m *MockProductLookup) GetByID(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

type MockUserLookup struct{ mock.Mock }

func (m *MockUserLookup) GetByID(ctx context.Context, id kernel.UUID) (catalog.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.User), args.Error(1)
}

func (m *MockUserLookup) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestCreateOrderCommandHandler_Handle_SnapshotsFromCatalog(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	line, err := commands.NewOrderLine(&productID, "", nil, "", 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	products := new(MockProductLookup)
	products.On("GetByID", ctx, productID).Return(catalog.Product{
		ID:       productID,
		Name:     "Keyboard",
		Price:    newMoney(t, "19.99"),
		ImageRef: "products/keyboard.png",
	}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, products, new(MockUserLookup), false)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, created.Lines(), 1)
	assert.Equal(t, "Keyboard", created.Lines()[0].Name())
	assert.Equal(t, "products/keyboard.png", created.Lines()[0].ImageRef())
	assert.Equal(t, "39.98", created.Total().String())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, order.PaymentPending, created.PaymentStatus())
	products.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CallerValuesWin(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	callerPrice := newMoney(t, "15.00")
	line, err := commands.NewOrderLine(&productID, "Discounted Keyboard", &callerPrice, "", 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	// The catalog fills the missing image, but name and price keep the
	// caller's values.
	products := new(MockProductLookup)
	products.On("GetByID", ctx, productID).Return(catalog.Product{
		ID:       productID,
		Name:     "Keyboard",
		Price:    newMoney(t, "19.99"),
		ImageRef: "products/keyboard.png",
	}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, products, new(MockUserLookup), false)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Discounted Keyboard", created.Lines()[0].Name())
	assert.Equal(t, "15.00", created.Lines()[0].UnitPrice().String())
	assert.Equal(t, "products/keyboard.png", created.Lines()[0].ImageRef())
	products.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FullSnapshotStillChecksProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	price := newMoney(t, "12.00")

	// All snapshot fields are caller-supplied, yet the referenced product
	// must still exist.
	line, err := commands.NewOrderLine(&productID, "Keyboard", &price, "products/keyboard.png", 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	products := new(MockProductLookup)
	products.On("GetByID", ctx, productID).
		Return(catalog.Product{}, errs.NewObjectNotFoundError("product", productID.String())).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), products, new(MockUserLookup), false,
	)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrReferenceNotFound)
	products.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InlineLineSkipsCatalog(t *testing.T) {
	ctx := t.Context()
	price := newMoney(t, "5.50")
	line, err := commands.NewOrderLine(nil, "Sticker", &price, "stickers/1.png", 3)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	products := new(MockProductLookup) // no expectations, must not be called
	h := commands.NewCreateOrderCommandHandler(factory, products, new(MockUserLookup), false)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, created.Lines()[0].ProductID())
	assert.Equal(t, "16.50", created.Total().String())
	products.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_StatusOverrides(t *testing.T) {
	ctx := t.Context()
	price := newMoney(t, "1.00")
	line, err := commands.NewOrderLine(nil, "Pin", &price, "", 1)
	require.NoError(t, err)
	status := order.Confirmed
	paymentStatus := order.Paid
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, &status, &paymentStatus,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockProductLookup), new(MockUserLookup), false)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, created.Status())
	assert.Equal(t, order.Paid, created.PaymentStatus())
}

func TestCreateOrderCommandHandler_Handle_EmptyOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newGuest(t), nil, nil, nil)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockProductLookup), new(MockUserLookup), false,
	)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_EmptyOrderAllowed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newGuest(t), nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockProductLookup), new(MockUserLookup), true)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.Total().IsZero())
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	line, err := commands.NewOrderLine(&productID, "", nil, "", 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	products := new(MockProductLookup)
	products.On("GetByID", ctx, productID).
		Return(catalog.Product{}, errs.NewObjectNotFoundError("product", productID.String())).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), products, new(MockUserLookup), false,
	)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrReferenceNotFound)
}

func TestCreateOrderCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	customer, err := order.NewRegisteredCustomer(userID)
	require.NoError(t, err)
	price := newMoney(t, "1.00")
	line, err := commands.NewOrderLine(nil, "Pin", &price, "", 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customer, []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	users := new(MockUserLookup)
	users.On("GetByID", ctx, userID).
		Return(catalog.User{}, errs.NewObjectNotFoundError("user", userID.String())).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockProductLookup), users, false,
	)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrReferenceNotFound)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockProductLookup), new(MockUserLookup), false,
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	price := newMoney(t, "1.00")
	line, err := commands.NewOrderLine(nil, "Pin", &price, "", 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newGuest(t), []commands.OrderLine{line}, nil, nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockProductLookup), new(MockUserLookup), false)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
