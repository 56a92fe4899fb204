// Package buyers provides read and create access to marketplace buyers.
package buyers

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is a marketplace account that purchases products.
type Buyer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBuyerCommand contains the data needed to register a buyer.
type CreateBuyerCommand struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}
