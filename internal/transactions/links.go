// Package transactions traverses purchase history between buyers and sellers.
// Transactions never reach a seller directly: every path runs through the
// purchased product.
package transactions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/market-api/pkg/repository"
	"github.com/google/uuid"
)

// Link ties one transaction to the entity at the far end of a traversal.
type Link struct {
	TransactionID uuid.UUID
	LeafID        uuid.UUID
}

func leafOf(l Link) uuid.UUID { return l.LeafID }

// Links fetches transaction links ordered by transaction creation.
type Links interface {
	// SellerLinks returns one link per transaction of buyerID, keyed by the
	// seller of the purchased product.
	SellerLinks(ctx context.Context, buyerID uuid.UUID) ([]Link, error)

	// BuyerLinks returns one link per transaction on a product of sellerID,
	// keyed by the purchasing buyer.
	BuyerLinks(ctx context.Context, sellerID uuid.UUID) ([]Link, error)
}

const sellerLinksSQL = `
	SELECT t.id, p.seller_id
	FROM public.transactions t
	JOIN public.products p ON p.id = t.product_id
	WHERE t.buyer_id = $1
	ORDER BY t.created_at, t.id`

const buyerLinksSQL = `
	SELECT t.id, t.buyer_id
	FROM public.transactions t
	JOIN public.products p ON p.id = t.product_id
	WHERE p.seller_id = $1
	ORDER BY t.created_at, t.id`

type linkStore struct {
	db *sql.DB
}

// NewLinks creates a database-backed Links.
func NewLinks(db *sql.DB) Links {
	return &linkStore{db: db}
}

func (s *linkStore) SellerLinks(ctx context.Context, buyerID uuid.UUID) ([]Link, error) {
	links, err := repository.QueryMany(ctx, s.db, sellerLinksSQL, []any{buyerID}, scanLink)
	if err != nil {
		return nil, fmt.Errorf("query seller links: %w", err)
	}
	return links, nil
}

func (s *linkStore) BuyerLinks(ctx context.Context, sellerID uuid.UUID) ([]Link, error) {
	links, err := repository.QueryMany(ctx, s.db, buyerLinksSQL, []any{sellerID}, scanLink)
	if err != nil {
		return nil, fmt.Errorf("query buyer links: %w", err)
	}
	return links, nil
}

func scanLink(s repository.Scanner) (Link, error) {
	var l Link
	err := s.Scan(&l.TransactionID, &l.LeafID)
	return l, err
}
