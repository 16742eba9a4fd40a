package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopease/shopease/internal/models"
	"github.com/shopease/shopease/internal/utils"
)

// CartRepository persists one row per (user, product) pair. The unique
// constraint on (user_id, product_id) makes AddCartItem a merge-increment
// upsert rather than a duplicate-row insert.
type CartRepository interface {
	AddCartItem(ctx context.Context, userID string, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, userID string, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID string, productID int64) error
	GetCartItems(ctx context.Context, userID string) ([]models.CartItem, error)
	ClearCart(ctx context.Context, userID string) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) AddCartItem(ctx context.Context, userID string, productID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateCartItem(ctx context.Context, userID string, productID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE user_id = $1 AND product_id = $2
	`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) RemoveCartItem(ctx context.Context, userID string, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.quantity, p.product_id, p.name, p.price, p.category, COALESCE(p.description, ''), COALESCE(p.image_url, ''), p.stock_quantity
		FROM cart_items c
		INNER JOIN products p ON c.product_id = p.product_id
		WHERE c.user_id = $1
		ORDER BY c.cart_item_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {
		var item models.CartItem

		err := rows.Scan(&item.Quantity, &item.Product.ProductID, &item.Product.Name, &item.Product.Price, &item.Product.Category, &item.Product.Description, &item.Product.ImageURL, &item.Product.StockQuantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, userID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := r.DB.ExecContext(dbCtx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
