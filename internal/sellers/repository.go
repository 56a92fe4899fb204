package sellers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/JaimeStill/market-api/pkg/query"
	"github.com/JaimeStill/market-api/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a database-backed seller System.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "sellers"),
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Seller], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email").
		OrderBy(Sortable.Field(page.Sort), page.Descending)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count sellers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	sellers, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSeller)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}

	result := pagination.NewPageResult(sellers, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Seller, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	seller, err := repository.QueryOne(ctx, r.db, q, args, scanSeller)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &seller, nil
}

func (r *repo) FindMany(ctx context.Context, ids []uuid.UUID) ([]Seller, error) {
	if len(ids) == 0 {
		return []Seller{}, nil
	}

	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	q, args := query.NewBuilder(projection, defaultSort).
		WhereIn("ID", values).
		Build()

	sellers, err := repository.QueryMany(ctx, r.db, q, args, scanSeller)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	return sellers, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateSellerCommand) (*Seller, error) {
	q := `
		INSERT INTO sellers(name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at, updated_at`

	seller, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Seller, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Email}, scanSeller)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("seller created", "id", seller.ID, "email", seller.Email)
	return &seller, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM sellers WHERE id = $1`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return repository.MapDeleteError(err, ErrNotFound)
	}

	r.logger.Info("seller deleted", "id", id)
	return nil
}
