// Package main provides the seed command for populating the marketplace
// database with sample data. Seeders run individually or together inside a
// single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/market-api/pkg/repository"
)

// Seeder populates one slice of the marketplace.
type Seeder interface {
	Name() string
	Description() string

	// Seed writes within tx so a failure rolls back every seeder in the run.
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the registry. Seeders self-register from init.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	return runSeeders(ctx, db, seeder)
}

func runAllSeeders(ctx context.Context, db *sql.DB) error {
	return runSeeders(ctx, db, listSeeders()...)
}

func runSeeders(ctx context.Context, db *sql.DB, list ...Seeder) error {
	_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
		for _, s := range list {
			if err := s.Seed(ctx, tx); err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}
		return struct{}{}, nil
	})
	return err
}
