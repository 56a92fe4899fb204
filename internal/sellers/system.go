package sellers

import (
	"context"

	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for seller operations.
type System interface {
	// List returns a page of sellers matching the request.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Seller], error)

	// Find returns the seller with id or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*Seller, error)

	// FindMany returns the sellers whose ids are listed, in no particular order.
	// Unknown ids are skipped.
	FindMany(ctx context.Context, ids []uuid.UUID) ([]Seller, error)

	// Create registers a seller. A taken email returns ErrDuplicate.
	Create(ctx context.Context, cmd CreateSellerCommand) (*Seller, error)

	// Delete removes a seller. A seller still referenced by products returns
	// a failure.ConstraintViolation.
	Delete(ctx context.Context, id uuid.UUID) error
}
