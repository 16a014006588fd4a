package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"go.uber.org/zap"
)

const productColumns = `id, name, description, price, user_id, created_at`

// ProductRepository implements the repositories.ProductRepository interface
type ProductRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB, logger *zap.Logger) repositories.ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := r.db.Rebind(`
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)

	executor := GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.UserID,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug("product created",
		zap.String("id", product.ID.String()),
		zap.String("user_id", product.UserID.String()))
	return nil
}

// List retrieves all products, newest first
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.UserID,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := r.db.Rebind(`SELECT ` + productColumns + ` FROM products WHERE id = $1`)

	product := &models.Product{}
	err := GetExecutor(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.UserID,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}
