package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopease/shopease/internal/models"
	repository "github.com/shopease/shopease/internal/repositories"
)

// GuestUserID tags carts belonging to unauthenticated sessions.
const GuestUserID = "guest"

// Cart owns the in-memory view of one user's cart and writes every mutation
// through to the backing store before updating that view. At most one line
// exists per product ID; adding a product that is already in the cart
// increments its quantity instead.
//
// A mutex serializes mutating calls so the in-memory quantities and the
// stored rows cannot diverge under concurrent UI events. Invalid products
// and missing lines are normal negative results reported as false, not
// errors; store failures are logged and also reported as false.
type Cart struct {
	userID string
	store  repository.CartRepository

	mu    sync.Mutex
	items []models.CartItem
}

func NewCart(store repository.CartRepository, userID string) *Cart {
	if userID == "" {
		userID = GuestUserID
	}

	return &Cart{
		userID: userID,
		store:  store,
	}
}

func (c *Cart) UserID() string {
	return c.userID
}

// Items returns a copy of the current item list.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)

	return items
}

// AddProduct puts one unit of the product into the cart. The cart keeps a
// value snapshot of the product, so later catalog edits do not affect the
// line.
func (c *Cart) AddProduct(ctx context.Context, product *models.Product) bool {

	if product == nil || !product.IsValid() {
		slog.Warn("Invalid product, cannot add to cart", slog.String("userId", c.userID))

		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ProductID == product.ProductID {

			newQuantity := c.items[i].Quantity + 1

			if err := c.store.UpdateCartItem(ctx, c.userID, product.ProductID, newQuantity); err != nil {
				slog.Error("Failed to update cart item in store", slog.String("userId", c.userID), slog.Int64("productId", product.ProductID), slog.String("error", err.Error()))

				return false
			}

			c.items[i].Quantity = newQuantity

			return true
		}
	}

	if err := c.store.AddCartItem(ctx, c.userID, product.ProductID, 1); err != nil {
		slog.Error("Failed to add cart item to store", slog.String("userId", c.userID), slog.Int64("productId", product.ProductID), slog.String("error", err.Error()))

		return false
	}

	c.items = append(c.items, models.CartItem{Product: *product, Quantity: 1})

	return true
}

// RemoveProduct deletes the line for the product ID. Returns false when no
// such line exists.
func (c *Cart) RemoveProduct(ctx context.Context, productID int64) bool {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ProductID == productID {

			if err := c.store.RemoveCartItem(ctx, c.userID, productID); err != nil {
				slog.Error("Failed to remove cart item from store", slog.String("userId", c.userID), slog.Int64("productId", productID), slog.String("error", err.Error()))

				return false
			}

			c.items = append(c.items[:i], c.items[i+1:]...)

			return true
		}
	}

	slog.Info("Product not found in cart", slog.String("userId", c.userID), slog.Int64("productId", productID))

	return false
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// quantity of zero or less removes the line. The product is not re-validated.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, quantity int) bool {

	if quantity <= 0 {
		return c.RemoveProduct(ctx, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ProductID == productID {

			if err := c.store.UpdateCartItem(ctx, c.userID, productID, quantity); err != nil {
				slog.Error("Failed to update cart item in store", slog.String("userId", c.userID), slog.Int64("productId", productID), slog.String("error", err.Error()))

				return false
			}

			c.items[i].Quantity = quantity

			return true
		}
	}

	return false
}

// CalculateTotal sums price times quantity over all lines. No I/O.
func (c *Cart) CalculateTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64

	for i := range c.items {
		total += c.items[i].Subtotal()
	}

	return total
}

// ItemCount sums the quantities of all lines. No I/O.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int

	for i := range c.items {
		count += c.items[i].Quantity
	}

	return count
}

// Clear removes every line for this user from the store and empties the
// in-memory list.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearCart(ctx, c.userID); err != nil {
		slog.Error("Failed to clear cart in store", slog.String("userId", c.userID), slog.String("error", err.Error()))

		return err
	}

	c.items = nil

	return nil
}

// LoadFromStore replaces the in-memory list with whatever the store holds
// for this user. Destructive overwrite, no merge.
func (c *Cart) LoadFromStore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.store.GetCartItems(ctx, c.userID)
	if err != nil {
		return err
	}

	c.items = items

	return nil
}
