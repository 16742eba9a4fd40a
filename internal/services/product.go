package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/shopease/shopease/internal/errors"
	"github.com/shopease/shopease/internal/models"
	repository "github.com/shopease/shopease/internal/repositories"
)

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := models.NewProduct(0, req.Name, req.Price, req.Category, req.Description, req.ImageURL, req.StockQuantity)

	if !product.IsValid() {
		return nil, errors.ValidationError("Product must have a name, a category and a positive price")
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}
