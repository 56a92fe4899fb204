package transactions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/market-api/internal/buyers"
	"github.com/JaimeStill/market-api/internal/sellers"
	"github.com/JaimeStill/market-api/pkg/relation"
	"github.com/google/uuid"
)

// System resolves the parties on the other side of a buyer's or seller's
// transactions.
type System interface {
	// SellersOf returns the distinct sellers buyerID has purchased from,
	// ordered by the first transaction with each. An unknown buyer returns
	// buyers.ErrNotFound.
	SellersOf(ctx context.Context, buyerID uuid.UUID) ([]sellers.Seller, error)

	// BuyersOf returns the distinct buyers that purchased a product of
	// sellerID, ordered by the first transaction of each. An unknown seller
	// returns sellers.ErrNotFound.
	BuyersOf(ctx context.Context, sellerID uuid.UUID) ([]buyers.Buyer, error)
}

type system struct {
	links   Links
	buyers  buyers.System
	sellers sellers.System
	logger  *slog.Logger
}

// New creates a System that reads links from links and resolves them
// through the buyer and seller systems.
func New(links Links, buyers buyers.System, sellers sellers.System, logger *slog.Logger) System {
	return &system{
		links:   links,
		buyers:  buyers,
		sellers: sellers,
		logger:  logger.With("system", "transactions"),
	}
}

func (s *system) SellersOf(ctx context.Context, buyerID uuid.UUID) ([]sellers.Seller, error) {
	if _, err := s.buyers.Find(ctx, buyerID); err != nil {
		return nil, err
	}

	links, err := s.links.SellerLinks(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	result, err := resolve(ctx, links, s.sellers.FindMany, func(e sellers.Seller) uuid.UUID { return e.ID })
	if err != nil {
		return nil, fmt.Errorf("resolve sellers: %w", err)
	}

	s.logger.Debug("sellers resolved", "buyer_id", buyerID, "transactions", len(links), "sellers", len(result))
	return result, nil
}

func (s *system) BuyersOf(ctx context.Context, sellerID uuid.UUID) ([]buyers.Buyer, error) {
	if _, err := s.sellers.Find(ctx, sellerID); err != nil {
		return nil, err
	}

	links, err := s.links.BuyerLinks(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	result, err := resolve(ctx, links, s.buyers.FindMany, func(e buyers.Buyer) uuid.UUID { return e.ID })
	if err != nil {
		return nil, fmt.Errorf("resolve buyers: %w", err)
	}

	s.logger.Debug("buyers resolved", "seller_id", sellerID, "transactions", len(links), "buyers", len(result))
	return result, nil
}

// resolve fetches the distinct leaves referenced by links in one call and
// returns them in first-referenced order.
func resolve[E any](
	ctx context.Context,
	links []Link,
	fetch func(context.Context, []uuid.UUID) ([]E, error),
	key func(E) uuid.UUID,
) ([]E, error) {
	ids := relation.Keys(links, leafOf)
	if len(ids) == 0 {
		return []E{}, nil
	}

	leaves, err := fetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	return relation.Resolve(links, leafOf, leaves, key), nil
}
