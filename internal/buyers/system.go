package buyers

import (
	"context"

	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for buyer operations.
type System interface {
	// List returns a page of buyers matching the request.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Buyer], error)

	// Find returns the buyer with id or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*Buyer, error)

	// FindMany returns the buyers whose ids are listed, in no particular order.
	// Unknown ids are skipped.
	FindMany(ctx context.Context, ids []uuid.UUID) ([]Buyer, error)

	// Create registers a buyer. A taken email returns ErrDuplicate.
	Create(ctx context.Context, cmd CreateBuyerCommand) (*Buyer, error)
}
