package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopease/shopease/internal/models"
	"github.com/shopease/shopease/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (name, price, category, description, image_url, stock_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING product_id
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Price, product.Category, product.Description, product.ImageURL, product.StockQuantity).Scan(&product.ProductID)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT product_id, name, price, category, COALESCE(description, ''), COALESCE(image_url, ''), stock_quantity
		FROM products
		WHERE product_id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ProductID, &product.Name, &product.Price, &product.Category, &product.Description, &product.ImageURL, &product.StockQuantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT product_id, name, price, category, COALESCE(description, ''), COALESCE(image_url, ''), stock_quantity
		FROM products
		ORDER BY product_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ProductID, &product.Name, &product.Price, &product.Category, &product.Description, &product.ImageURL, &product.StockQuantity)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
