package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/models"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned (wrapped) when an insert violates a unique constraint
var ErrDuplicate = errors.New("duplicate record")

// TransactionManager manages database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (Transaction, error)

	// InTransaction executes a function within a transaction
	// Automatically commits if function succeeds, rolls back on error
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context
}

// UserRepository is the credential store
type UserRepository interface {
	// Create inserts a new user; a taken email yields ErrDuplicate
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail retrieves a user by exact email match
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether an account with this email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProductRepository handles product data operations
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, product *models.Product) error

	// List retrieves all products, newest first
	List(ctx context.Context) ([]*models.Product, error)

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Users    UserRepository
	Products ProductRepository
}
