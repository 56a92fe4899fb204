package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarketplaceSeeder_EmbeddedData(t *testing.T) {
	s := &MarketplaceSeeder{}

	data, err := s.loadSeedData()
	if err != nil {
		t.Fatalf("loadSeedData() error = %v", err)
	}

	if len(data.Buyers) == 0 || len(data.Sellers) == 0 || len(data.Products) == 0 || len(data.Transactions) == 0 {
		t.Errorf("seed data incomplete: %d buyers, %d sellers, %d products, %d transactions",
			len(data.Buyers), len(data.Sellers), len(data.Products), len(data.Transactions))
	}
}

func TestMarketplaceSeeder_ExternalFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "valid",
			content: `{"buyers":[{"id":"0190a7e4-1000-7000-8000-000000000001","name":"A","email":"a@example.com"}]}`,
		},
		{
			name:    "malformed",
			content: `{"buyers":`,
			wantErr: "parse seed data",
		},
		{
			name: "unknown seller",
			content: `{"products":[{"id":"0190a7e4-3000-7000-8000-000000000001",
				"seller_id":"0190a7e4-2000-7000-8000-000000000009","name":"P"}]}`,
			wantErr: "unknown seller",
		},
		{
			name: "unknown product",
			content: `{"buyers":[{"id":"0190a7e4-1000-7000-8000-000000000001","name":"A","email":"a@example.com"}],
				"transactions":[{"id":"0190a7e4-4000-7000-8000-000000000001",
				"buyer_id":"0190a7e4-1000-7000-8000-000000000001",
				"product_id":"0190a7e4-3000-7000-8000-000000000009","quantity":1,
				"created_at":"2024-03-01T09:00:00Z"}]}`,
			wantErr: "unknown product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write seed file: %v", err)
			}

			s := &MarketplaceSeeder{}
			s.SetFile(path)

			_, err := s.loadSeedData()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("loadSeedData() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("loadSeedData() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestListSeeders(t *testing.T) {
	list := listSeeders()
	if len(list) == 0 || list[0].Name() != "marketplace" {
		t.Errorf("listSeeders() = %v, want marketplace registered", list)
	}
}
