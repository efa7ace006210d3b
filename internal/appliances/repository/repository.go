package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FIKE110/inverta/platform/apperr"
)

const presetNotFoundMessage = "appliance preset not found"

// Repo implements the appliance preset repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new appliance preset repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const presetColumns = "id, name, wattage, icon, display_order, created_at, updated_at"

func scanPreset(row pgx.Row) (Preset, error) {
	var preset Preset
	var createdAt, updatedAt time.Time
	if err := row.Scan(
		&preset.ID, &preset.Name, &preset.Wattage, &preset.Icon,
		&preset.DisplayOrder, &createdAt, &updatedAt,
	); err != nil {
		return Preset{}, err
	}
	preset.CreatedAt = createdAt.Format(time.RFC3339)
	preset.UpdatedAt = updatedAt.Format(time.RFC3339)
	return preset, nil
}

// Create inserts an appliance preset.
func (r *Repo) Create(ctx context.Context, params CreatePresetParams) (Preset, error) {
	query := fmt.Sprintf(`
		INSERT INTO appliance_presets (name, wattage, icon, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, presetColumns)

	preset, err := scanPreset(r.pool.QueryRow(ctx, query,
		params.Name, params.Wattage, params.Icon, params.DisplayOrder,
	))
	if err != nil {
		return Preset{}, fmt.Errorf("create appliance preset: %w", err)
	}
	return preset, nil
}

// Update modifies an appliance preset.
func (r *Repo) Update(ctx context.Context, params UpdatePresetParams) (Preset, error) {
	query := fmt.Sprintf(`
		UPDATE appliance_presets
		SET name = COALESCE($2, name),
			wattage = COALESCE($3, wattage),
			icon = COALESCE($4, icon),
			display_order = COALESCE($5, display_order),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, presetColumns)

	preset, err := scanPreset(r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Wattage, params.Icon, params.DisplayOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preset{}, apperr.NotFound(presetNotFoundMessage)
		}
		return Preset{}, fmt.Errorf("update appliance preset: %w", err)
	}
	return preset, nil
}

// Delete removes an appliance preset.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM appliance_presets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appliance preset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(presetNotFoundMessage)
	}
	return nil
}

// GetByID retrieves an appliance preset by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Preset, error) {
	query := fmt.Sprintf(`SELECT %s FROM appliance_presets WHERE id = $1`, presetColumns)

	preset, err := scanPreset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preset{}, apperr.NotFound(presetNotFoundMessage)
		}
		return Preset{}, fmt.Errorf("get appliance preset: %w", err)
	}
	return preset, nil
}

// List retrieves all presets in display order.
func (r *Repo) List(ctx context.Context) ([]Preset, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM appliance_presets
		ORDER BY display_order ASC, created_at ASC`, presetColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appliance presets: %w", err)
	}
	defer rows.Close()

	presets := make([]Preset, 0)
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appliance preset: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appliance presets: %w", err)
	}

	return presets, nil
}

// Count returns the number of presets.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appliance_presets`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count appliance presets: %w", err)
	}
	return total, nil
}
