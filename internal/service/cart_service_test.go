package service

import (
	"context"
	"errors"
	"testing"

	"compumart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Add(ctx context.Context, line model.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, userID string, productID int64, quantity int) (bool, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID string, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func TestCartService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testItems := []model.CartItem{
		{ProductID: 7, Name: "Laptop", Price: 1200, Brand: "Dell", Quantity: 2},
	}

	t.Run("Success", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("Get", ctx, "u1").Return(testItems, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		items, err := svc.Get(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, testItems, items)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		items, err := svc.Get(ctx, "")

		require.Error(t, err)
		assert.Equal(t, model.ErrMissingUserID, err)
		assert.Nil(t, items)
		mockCartRepo.AssertNotCalled(t, "Get")
	})

	t.Run("Empty cart reports cart empty", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("Get", ctx, "u2").Return([]model.CartItem{}, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		items, err := svc.Get(ctx, "u2")

		require.Error(t, err)
		assert.Equal(t, model.ErrCartEmpty, err)
		assert.Nil(t, items)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("Get", ctx, "u1").Return(nil, errors.New("query failed"))

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		items, err := svc.Get(ctx, "u1")

		require.Error(t, err)
		assert.NotEqual(t, model.ErrCartEmpty, err)
		assert.Nil(t, items)
	})
}

func TestCartService_Add(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("Exists", ctx, int64(7)).Return(true, nil)
		mockCartRepo.On("Add", ctx, model.CartLine{UserID: "u1", ProductID: 7, Quantity: 2}).Return(nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Add(ctx, &model.CartRequest{UserID: "u1", ProductID: 7, Quantity: 2})

		require.NoError(t, err)
		mockCartRepo.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Add(ctx, &model.CartRequest{ProductID: 7, Quantity: 2})

		require.Error(t, err)
		assert.Equal(t, model.ErrMissingUserID, err)
		mockCartRepo.AssertNotCalled(t, "Add")
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Add(ctx, &model.CartRequest{UserID: "u1", ProductID: 7, Quantity: 0})

		require.Error(t, err)
		assert.Equal(t, model.ErrInvalidQuantity, err)
		mockCartRepo.AssertNotCalled(t, "Add")
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("Exists", ctx, int64(99)).Return(false, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Add(ctx, &model.CartRequest{UserID: "u1", ProductID: 99, Quantity: 1})

		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
		mockCartRepo.AssertNotCalled(t, "Add")
	})

	t.Run("Repository error", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("Exists", ctx, int64(7)).Return(true, nil)
		mockCartRepo.On("Add", ctx, mock.AnythingOfType("model.CartLine")).Return(errors.New("insert failed"))

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Add(ctx, &model.CartRequest{UserID: "u1", ProductID: 7, Quantity: 1})

		require.Error(t, err)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("SetQuantity", ctx, "u1", int64(7), 5).Return(true, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.SetQuantity(ctx, &model.CartRequest{UserID: "u1", ProductID: 7, Quantity: 5})

		require.NoError(t, err)
	})

	t.Run("Line not found", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("SetQuantity", ctx, "u1", int64(99), 5).Return(false, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.SetQuantity(ctx, &model.CartRequest{UserID: "u1", ProductID: 99, Quantity: 5})

		require.Error(t, err)
		assert.Equal(t, model.ErrCartItemNotFound, err)
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.SetQuantity(ctx, &model.CartRequest{UserID: "u1", ProductID: 7, Quantity: -1})

		require.Error(t, err)
		assert.Equal(t, model.ErrInvalidQuantity, err)
		mockCartRepo.AssertNotCalled(t, "SetQuantity")
	})
}

func TestCartService_Remove(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("Remove", ctx, "u1", int64(7)).Return(true, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Remove(ctx, "u1", 7)

		require.NoError(t, err)
	})

	t.Run("Line not found", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)
		mockCartRepo.On("Remove", ctx, "u1", int64(99)).Return(false, nil)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Remove(ctx, "u1", 99)

		require.Error(t, err)
		assert.Equal(t, model.ErrCartItemNotFound, err)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockProductRepo := new(MockProductRepository)

		svc := NewCartService(mockCartRepo, mockProductRepo, logger)
		err := svc.Remove(ctx, "", 7)

		require.Error(t, err)
		assert.Equal(t, model.ErrMissingUserID, err)
		mockCartRepo.AssertNotCalled(t, "Remove")
	})
}
