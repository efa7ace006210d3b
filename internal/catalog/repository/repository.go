package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FIKE110/inverta/platform/apperr"
)

const itemNotFoundMessage = "catalog item not found"

// Repo implements the catalog repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a catalog item.
func (r *Repo) Create(ctx context.Context, params CreateItemParams) (Item, error) {
	query := `
		INSERT INTO catalog_items (kind, name, unit_price, spec_capacity, spec_unit, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, kind, name, unit_price, spec_capacity, spec_unit, display_order, created_at, updated_at`

	var item Item
	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		params.Kind, params.Name, params.UnitPrice, params.SpecCapacity, params.SpecUnit, params.DisplayOrder,
	).Scan(
		&item.ID, &item.Kind, &item.Name, &item.UnitPrice, &item.SpecCapacity,
		&item.SpecUnit, &item.DisplayOrder, &createdAt, &updatedAt,
	); err != nil {
		return Item{}, fmt.Errorf("create catalog item: %w", err)
	}

	item.CreatedAt = createdAt.Format(time.RFC3339)
	item.UpdatedAt = updatedAt.Format(time.RFC3339)
	return item, nil
}

// Update updates a catalog item. The item kind is immutable; changing a
// panel into an inverter would silently reshape past estimates.
func (r *Repo) Update(ctx context.Context, params UpdateItemParams) (Item, error) {
	query := `
		UPDATE catalog_items
		SET name = COALESCE($2, name),
			unit_price = COALESCE($3, unit_price),
			spec_capacity = COALESCE($4, spec_capacity),
			spec_unit = COALESCE($5, spec_unit),
			display_order = COALESCE($6, display_order),
			updated_at = now()
		WHERE id = $1
		RETURNING id, kind, name, unit_price, spec_capacity, spec_unit, display_order, created_at, updated_at`

	var item Item
	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.UnitPrice, params.SpecCapacity, params.SpecUnit, params.DisplayOrder,
	).Scan(
		&item.ID, &item.Kind, &item.Name, &item.UnitPrice, &item.SpecCapacity,
		&item.SpecUnit, &item.DisplayOrder, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("update catalog item: %w", err)
	}

	item.CreatedAt = createdAt.Format(time.RFC3339)
	item.UpdatedAt = updatedAt.Format(time.RFC3339)
	return item, nil
}

// Delete removes a catalog item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(itemNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a catalog item by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Item, error) {
	query := `
		SELECT id, kind, name, unit_price, spec_capacity, spec_unit, display_order, created_at, updated_at
		FROM catalog_items
		WHERE id = $1`

	var item Item
	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Kind, &item.Name, &item.UnitPrice, &item.SpecCapacity,
		&item.SpecUnit, &item.DisplayOrder, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("get catalog item by id: %w", err)
	}

	item.CreatedAt = createdAt.Format(time.RFC3339)
	item.UpdatedAt = updatedAt.Format(time.RFC3339)
	return item, nil
}

// List retrieves catalog items in display order.
func (r *Repo) List(ctx context.Context, params ListItemsParams) ([]Item, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.Kind != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, params.Kind)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, kind, name, unit_price, spec_capacity, spec_unit, display_order, created_at, updated_at
		FROM catalog_items
		WHERE %s
		ORDER BY display_order ASC, created_at ASC`, strings.Join(whereClauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		var createdAt, updatedAt time.Time
		if err := rows.Scan(
			&item.ID, &item.Kind, &item.Name, &item.UnitPrice, &item.SpecCapacity,
			&item.SpecUnit, &item.DisplayOrder, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		item.UpdatedAt = updatedAt.Format(time.RFC3339)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}

	return items, nil
}

// Count returns the number of catalog items.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count catalog items: %w", err)
	}
	return total, nil
}
