package handlers_test

import (
	"context"

	"github.com/shopease/shopease/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) AddCartItem(ctx context.Context, userID string, productID int64, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)

	return args.Error(0)
}

func (m *mockCartStore) UpdateCartItem(ctx context.Context, userID string, productID int64, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)

	return args.Error(0)
}

func (m *mockCartStore) RemoveCartItem(ctx context.Context, userID string, productID int64) error {
	args := m.Called(ctx, userID, productID)

	return args.Error(0)
}

func (m *mockCartStore) GetCartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)

	if items, ok := args.Get(0).([]models.CartItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartStore) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockCatalog) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalog) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)

	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// nullMirror is a no-op snapshot store for handler tests that do not care
// about mirroring.
type nullMirror struct{}

func (nullMirror) Get(ctx context.Context, userID string) ([]models.CartItem, bool, error) {
	return nil, false, nil
}

func (nullMirror) Set(ctx context.Context, userID string, items []models.CartItem) error {
	return nil
}
