package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/internal/auth"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// CreateProductInput carries the fields accepted when listing a product
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gt=0"`
}

// ProductService handles the product catalogue
type ProductService struct {
	products repositories.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products repositories.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// List returns every product, newest first
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, WrapInternal("failed to list products", err)
	}
	return products, nil
}

// Create stores a product owned by the calling principal
func (s *ProductService) Create(ctx context.Context, owner *auth.Principal, input CreateProductInput) (*models.Product, error) {
	if owner == nil {
		return nil, ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, validationError(err)
	}

	product := models.NewProduct(input.Name, input.Description, input.Price, owner.UserID)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, WrapInternal("failed to create product", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("user_id", owner.UserID.String()))
	return product, nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, WrapInternal("failed to get product", err)
	}
	return product, nil
}
