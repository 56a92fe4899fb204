package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&MarketplaceSeeder{})
}

// MarketplaceSeedData represents the JSON structure for marketplace seed files.
type MarketplaceSeedData struct {
	Buyers []struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	} `json:"buyers"`
	Sellers []struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	} `json:"sellers"`
	Products []struct {
		ID         uuid.UUID `json:"id"`
		SellerID   uuid.UUID `json:"seller_id"`
		Name       string    `json:"name"`
		PriceCents int64     `json:"price_cents"`
	} `json:"products"`
	Transactions []struct {
		ID        uuid.UUID `json:"id"`
		BuyerID   uuid.UUID `json:"buyer_id"`
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"transactions"`
}

// MarketplaceSeeder implements Seeder for buyers, sellers, products, and
// their transactions. Records carry fixed ids so reruns update in place.
type MarketplaceSeeder struct {
	file string
}

// Name returns "marketplace" as the seeder identifier.
func (s *MarketplaceSeeder) Name() string {
	return "marketplace"
}

// Description returns a human-readable description of this seeder.
func (s *MarketplaceSeeder) Description() string {
	return "Seeds sample buyers, sellers, products, and transactions"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *MarketplaceSeeder) SetFile(path string) {
	s.file = path
}

// Seed loads marketplace data and saves it parents first.
func (s *MarketplaceSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, b := range data.Buyers {
		const q = `
			INSERT INTO buyers (id, name, email) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				updated_at = NOW()`
		if _, err := tx.ExecContext(ctx, q, b.ID, b.Name, b.Email); err != nil {
			return fmt.Errorf("save buyer %s: %w", b.Email, err)
		}
	}

	for _, sl := range data.Sellers {
		const q = `
			INSERT INTO sellers (id, name, email) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				updated_at = NOW()`
		if _, err := tx.ExecContext(ctx, q, sl.ID, sl.Name, sl.Email); err != nil {
			return fmt.Errorf("save seller %s: %w", sl.Email, err)
		}
	}

	for _, p := range data.Products {
		const q = `
			INSERT INTO products (id, seller_id, name, price_cents) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				price_cents = EXCLUDED.price_cents,
				updated_at = NOW()`
		if _, err := tx.ExecContext(ctx, q, p.ID, p.SellerID, p.Name, p.PriceCents); err != nil {
			return fmt.Errorf("save product %s: %w", p.Name, err)
		}
	}

	for _, t := range data.Transactions {
		const q = `
			INSERT INTO transactions (id, buyer_id, product_id, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, q, t.ID, t.BuyerID, t.ProductID, t.Quantity, t.CreatedAt); err != nil {
			return fmt.Errorf("save transaction %s: %w", t.ID, err)
		}
	}

	return nil
}

func (s *MarketplaceSeeder) loadSeedData() (*MarketplaceSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/marketplace.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data MarketplaceSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	if err := data.validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

// validate checks that every product and transaction references a record
// defined in the same file.
func (d *MarketplaceSeedData) validate() error {
	known := make(map[uuid.UUID]string)
	for _, b := range d.Buyers {
		known[b.ID] = "buyer"
	}
	for _, s := range d.Sellers {
		known[s.ID] = "seller"
	}
	for _, p := range d.Products {
		if known[p.SellerID] != "seller" {
			return fmt.Errorf("product %s references unknown seller %s", p.Name, p.SellerID)
		}
		known[p.ID] = "product"
	}
	for _, t := range d.Transactions {
		if known[t.BuyerID] != "buyer" {
			return fmt.Errorf("transaction %s references unknown buyer %s", t.ID, t.BuyerID)
		}
		if known[t.ProductID] != "product" {
			return fmt.Errorf("transaction %s references unknown product %s", t.ID, t.ProductID)
		}
	}
	return nil
}
