package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductMocks() (*MockProductRepository, *MockUoW, *MockProductUoWFactory) {
	repo := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()
	return repo, uow, factory
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	productID, merchantID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, merchantID, "Empanada", kernel.MustMoney("2.50"), 4)
	require.NoError(t, err)

	repo, uow, factory := newProductMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID().IsEqual(productID) && p.Stock() == 4 && p.IsAvailable()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), kernel.NewUUID(), "x", kernel.ZeroMoney, -1)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestChangeProductCommandHandler_HandlePrice(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	p := mustProduct(t, merchantID, "5.00", 3)
	cmd, err := commands.NewChangeProductPriceCommand(p.ID(), merchantID, kernel.MustMoney("6.25"))
	require.NoError(t, err)

	repo, uow, factory := newProductMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		repo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeProductCommandHandler(factory)
	err = handler.HandlePrice(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "6.25", p.UnitPrice().String())
	uow.AssertExpectations(t)
}

func TestChangeProductCommandHandler_HandlePrice_OtherMerchant(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, kernel.NewUUID(), "5.00", 3)
	cmd, err := commands.NewChangeProductPriceCommand(p.ID(), kernel.NewUUID(), kernel.MustMoney("1.00"))
	require.NoError(t, err)

	repo, uow, factory := newProductMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewChangeProductCommandHandler(factory)
	err = handler.HandlePrice(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "5.00", p.UnitPrice().String())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeProductCommandHandler_HandleAvailability(t *testing.T) {
	t.Run("should reject listing a product without stock", func(t *testing.T) {
		ctx := t.Context()
		merchantID := kernel.NewUUID()
		p := mustProduct(t, merchantID, "5.00", 0)
		cmd, err := commands.NewChangeProductAvailabilityCommand(p.ID(), merchantID, true)
		require.NoError(t, err)

		repo, uow, factory := newProductMocks()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewChangeProductCommandHandler(factory)
		err = handler.HandleAvailability(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, p.IsAvailable())
	})

	t.Run("should delist a product", func(t *testing.T) {
		ctx := t.Context()
		merchantID := kernel.NewUUID()
		p := mustProduct(t, merchantID, "5.00", 2)
		cmd, err := commands.NewChangeProductAvailabilityCommand(p.ID(), merchantID, false)
		require.NoError(t, err)

		repo, uow, factory := newProductMocks()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once()
		repo.On("Update", ctx, p).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewChangeProductCommandHandler(factory)
		err = handler.HandleAvailability(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
		uow.AssertExpectations(t)
	})

	t.Run("should report a missing product", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewChangeProductAvailabilityCommand(id, kernel.NewUUID(), false)
		require.NoError(t, err)

		repo, uow, factory := newProductMocks()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, []kernel.UUID{id}).Return([]*product.Product{}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewChangeProductCommandHandler(factory)
		err = handler.HandleAvailability(ctx, cmd)

		assert.True(t, errs.IsObjectNotFound(err, "product"))
	})
}
