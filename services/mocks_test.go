package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs the callback inline. The first configured
// return value simulates a begin failure, the second a commit failure.
type MockTransactionManager struct {
	mock.Mock
	tx MockTransaction
}

func (m *MockTransactionManager) Begin(ctx context.Context) (repositories.Transaction, error) {
	args := m.Called(ctx)
	if tx := args.Get(0); tx != nil {
		return tx.(repositories.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionManager) InTransaction(ctx context.Context, fn func(ctx context.Context, tx repositories.Transaction) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	if err := fn(ctx, &m.tx); err != nil {
		m.tx.rolledback = true
		return err
	}
	if err := args.Error(1); err != nil {
		return err
	}
	m.tx.committed = true
	return nil
}

// MockTransaction records what happened to it
type MockTransaction struct {
	committed  bool
	rolledback bool
}

func (m *MockTransaction) Commit() error {
	m.committed = true
	return nil
}

func (m *MockTransaction) Rollback() error {
	m.rolledback = true
	return nil
}

func (m *MockTransaction) Context() context.Context {
	return context.Background()
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

// plainHasher stores passwords reversibly so tests stay fast; never use outside tests
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "plain:" + plaintext, nil }

func (plainHasher) Verify(plaintext, digest string) bool { return digest == "plain:"+plaintext }
