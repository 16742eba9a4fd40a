package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopease/shopease/internal/models"
	service "github.com/shopease/shopease/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func laptop() *models.Product {
	return models.NewProduct(1, "Laptop", 999.99, "Electronics", "High-performance laptop", "", 10)
}

func TestNewCart(t *testing.T) {
	store := &mockCartStore{}

	t.Run("Defaults To Guest", func(t *testing.T) {
		cart := service.NewCart(store, "")
		assert.Equal(t, service.GuestUserID, cart.UserID())
	})

	t.Run("Keeps User ID", func(t *testing.T) {
		cart := service.NewCart(store, "u1")
		assert.Equal(t, "u1", cart.UserID())
	})
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New Item", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()

		// Act
		ok := cart.AddProduct(ctx, laptop())

		// Assert
		assert.True(t, ok)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, 1, cart.Items()[0].Quantity)
		store.AssertExpectations(t)
	})

	t.Run("Success - Duplicate Merges Quantity", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("UpdateCartItem", ctx, "u1", int64(1), 2).Return(nil).Once()

		// Act
		first := cart.AddProduct(ctx, laptop())
		second := cart.AddProduct(ctx, laptop())

		// Assert
		assert.True(t, first)
		assert.True(t, second)
		require.Len(t, cart.Items(), 1, "Adding the same product twice must keep a single line")
		assert.Equal(t, 2, cart.Items()[0].Quantity)
		assert.InDelta(t, 2*999.99, cart.CalculateTotal(), 0.001)
		store.AssertExpectations(t)
	})

	t.Run("Failure - Nil Product", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")

		// Act
		ok := cart.AddProduct(ctx, nil)

		// Assert
		assert.False(t, ok)
		assert.Empty(t, cart.Items())
		store.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Product Leaves Cart Unchanged", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		invalid := models.NewProduct(2, "  ", 9.99, "Electronics", "", "", 5)

		// Act
		ok := cart.AddProduct(ctx, invalid)

		// Assert
		assert.False(t, ok)
		assert.Empty(t, cart.Items())
		store.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(errors.New("connection refused")).Once()

		// Act
		ok := cart.AddProduct(ctx, laptop())

		// Assert
		assert.False(t, ok)
		assert.Empty(t, cart.Items(), "In-memory state must not change when the store write fails")
		store.AssertExpectations(t)
	})
}

func TestRemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("RemoveCartItem", ctx, "u1", int64(1)).Return(nil).Once()
		cart.AddProduct(ctx, laptop())

		// Act
		ok := cart.RemoveProduct(ctx, 1)

		// Assert
		assert.True(t, ok)
		assert.Empty(t, cart.Items())
		store.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")

		// Act
		ok := cart.RemoveProduct(ctx, 42)

		// Assert
		assert.False(t, ok)
		store.AssertNotCalled(t, "RemoveCartItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Absolute Set", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("UpdateCartItem", ctx, "u1", int64(1), 5).Return(nil).Once()
		cart.AddProduct(ctx, laptop())

		// Act
		ok := cart.UpdateQuantity(ctx, 1, 5)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 5, cart.ItemCount())
		store.AssertExpectations(t)
	})

	t.Run("Zero Quantity Removes The Item", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("RemoveCartItem", ctx, "u1", int64(1)).Return(nil).Once()
		cart.AddProduct(ctx, laptop())

		// Act
		ok := cart.UpdateQuantity(ctx, 1, 0)

		// Assert
		assert.True(t, ok)
		assert.Empty(t, cart.Items())
		store.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")

		// Act
		ok := cart.UpdateQuantity(ctx, 42, 3)

		// Assert
		assert.False(t, ok)
		store.AssertNotCalled(t, "UpdateCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartTotals(t *testing.T) {
	// The walkthrough scenario: one user, one product, quantities moving
	// through add, add, set and remove.
	ctx := context.Background()
	store := &mockCartStore{}
	cart := service.NewCart(store, "u1")

	store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
	store.On("UpdateCartItem", ctx, "u1", int64(1), 2).Return(nil).Once()
	store.On("UpdateCartItem", ctx, "u1", int64(1), 5).Return(nil).Once()
	store.On("RemoveCartItem", ctx, "u1", int64(1)).Return(nil).Once()

	require.True(t, cart.AddProduct(ctx, laptop()))
	assert.Equal(t, 1, cart.ItemCount())
	assert.InDelta(t, 999.99, cart.CalculateTotal(), 0.001)

	require.True(t, cart.AddProduct(ctx, laptop()))
	assert.Equal(t, 2, cart.ItemCount())
	assert.InDelta(t, 1999.98, cart.CalculateTotal(), 0.001)

	require.True(t, cart.UpdateQuantity(ctx, 1, 5))
	assert.Equal(t, 5, cart.ItemCount())
	assert.InDelta(t, 4999.95, cart.CalculateTotal(), 0.001)

	require.True(t, cart.RemoveProduct(ctx, 1))
	assert.Equal(t, 0, cart.ItemCount())
	assert.InDelta(t, 0.0, cart.CalculateTotal(), 0.001)

	store.AssertExpectations(t)
}

func TestClearAndLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Clear Then Load Yields Empty Cart", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("ClearCart", ctx, "u1").Return(nil).Once()
		store.On("GetCartItems", ctx, "u1").Return([]models.CartItem{}, nil).Once()
		cart.AddProduct(ctx, laptop())

		// Act
		require.NoError(t, cart.Clear(ctx))
		require.NoError(t, cart.LoadFromStore(ctx))

		// Assert
		assert.Empty(t, cart.Items())
		assert.Equal(t, 0, cart.ItemCount())
		store.AssertExpectations(t)
	})

	t.Run("Load Overwrites In-Memory State", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		stored := []models.CartItem{
			{Product: *laptop(), Quantity: 3},
		}
		store.On("GetCartItems", ctx, "u1").Return(stored, nil).Once()

		// Act
		err := cart.LoadFromStore(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, 3, cart.Items()[0].Quantity)
		store.AssertExpectations(t)
	})

	t.Run("Load Failure Keeps Previous State", func(t *testing.T) {
		// Arrange
		store := &mockCartStore{}
		cart := service.NewCart(store, "u1")
		store.On("AddCartItem", ctx, "u1", int64(1), 1).Return(nil).Once()
		store.On("GetCartItems", ctx, "u1").Return(nil, errors.New("connection refused")).Once()
		cart.AddProduct(ctx, laptop())

		// Act
		err := cart.LoadFromStore(ctx)

		// Assert
		require.Error(t, err)
		assert.Len(t, cart.Items(), 1)
		store.AssertExpectations(t)
	})
}
