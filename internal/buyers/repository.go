package buyers

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

// New creates a database-backed buyer System.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "buyers"),
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Buyer], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email").
		OrderBy(Sortable.Field(page.Sort), page.Descending)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count buyers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	buyers, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBuyer)
	if err != nil {
		return nil, fmt.Errorf("query buyers: %w", err)
	}

	result := pagination.NewPageResult(buyers, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Buyer, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	buyer, err := repository.QueryOne(ctx, r.db, q, args, scanBuyer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &buyer, nil
}

func (r *repo) FindMany(ctx context.Context, ids []uuid.UUID) ([]Buyer, error) {
	if len(ids) == 0 {
		return []Buyer{}, nil
	}

	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	q, args := query.NewBuilder(projection, defaultSort).
		WhereIn("ID", values).
		Build()

	buyers, err := repository.QueryMany(ctx, r.db, q, args, scanBuyer)
	if err != nil {
		return nil, fmt.Errorf("query buyers: %w", err)
	}
	return buyers, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateBuyerCommand) (*Buyer, error) {
	q := `
		INSERT INTO buyers(name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at, updated_at`

	buyer, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Buyer, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Email}, scanBuyer)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("buyer created", "id", buyer.ID, "email", buyer.Email)
	return &buyer, nil
}
