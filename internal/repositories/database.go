package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopease/shopease/internal/config"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB      *sql.DB
	User    UserRepository
	Product ProductRepository
	Cart    CartRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := seedProducts(db); err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}

	return &Repositories{
		DB:      db,
		User:    NewUserRepo(db),
		Product: NewProductRepo(db),
		Cart:    NewCartRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS products (
		product_id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(100) NOT NULL,
		description TEXT,
		image_url VARCHAR(500),
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		cart_item_id SERIAL PRIMARY KEY,
		user_id VARCHAR(100) NOT NULL,
		product_id INTEGER NOT NULL REFERENCES products(product_id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL,
		added_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, product_id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema creation: %w", err)
	}

	return nil
}

// seedProducts inserts the demo catalog when the products table is empty.
func seedProducts(db *sql.DB) error {

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	samples := []struct {
		name        string
		price       float64
		category    string
		description string
		imageURL    string
		stock       int
	}{
		{"Laptop", 999.99, "Electronics", "High-performance laptop", "https://images.unsplash.com/photo-1496181133206-80ce9b88a853", 10},
		{"Smartphone", 699.99, "Electronics", "Latest smartphone model", "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9", 15},
		{"Headphones", 149.99, "Electronics", "Wireless noise-canceling headphones", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e", 20},
		{"Coffee Maker", 79.99, "Home & Kitchen", "Programmable coffee maker", "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6", 12},
		{"Running Shoes", 89.99, "Sports", "Comfortable running shoes", "https://images.unsplash.com/photo-1542291026-7eec264c27ff", 25},
		{"Backpack", 49.99, "Accessories", "Durable travel backpack", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62", 18},
		{"Desk Lamp", 34.99, "Home & Office", "LED desk lamp", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c", 30},
		{"Water Bottle", 19.99, "Sports", "Insulated water bottle", "https://images.unsplash.com/photo-1602143407151-7111542de6e8", 40},
	}

	query := `
		INSERT INTO products (name, price, category, description, image_url, stock_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, s := range samples {
		if _, err := db.Exec(query, s.name, s.price, s.category, s.description, s.imageURL, s.stock); err != nil {
			return err
		}
	}

	return nil
}
