package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item listed in the shop, owned by the user who created it
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewProduct creates a new Product owned by userID
func NewProduct(name, description string, price float64, userID uuid.UUID) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
}
