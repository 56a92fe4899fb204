// Package sellers provides access to marketplace sellers. A seller that still
// owns products cannot be deleted.
package sellers

import (
	"time"

	"github.com/google/uuid"
)

// Seller is a marketplace account that lists products.
type Seller struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSellerCommand contains the data needed to register a seller.
type CreateSellerCommand struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}
