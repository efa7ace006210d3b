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

const leadNotFoundMessage = "lead not found"

// Repo implements the leads repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const leadColumns = "id, name, email, phone, daily_energy_kwh, system_size_label, total_cost, status, notes, created_at, updated_at"

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	var createdAt, updatedAt time.Time
	if err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.DailyEnergyKWh,
		&lead.SystemSizeLabel, &lead.TotalCost, &lead.Status, &lead.Notes,
		&createdAt, &updatedAt,
	); err != nil {
		return Lead{}, err
	}
	lead.CreatedAt = createdAt.Format(time.RFC3339)
	lead.UpdatedAt = updatedAt.Format(time.RFC3339)
	return lead, nil
}

// Create inserts a lead with status "New".
func (r *Repo) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	query := fmt.Sprintf(`
		INSERT INTO leads (name, email, phone, daily_energy_kwh, system_size_label, total_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.DailyEnergyKWh,
		params.SystemSizeLabel, params.TotalCost, StatusNew,
	))
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// Update updates a lead's status and notes.
func (r *Repo) Update(ctx context.Context, params UpdateLeadParams) (Lead, error) {
	query := fmt.Sprintf(`
		UPDATE leads
		SET status = COALESCE($2, status),
			notes = COALESCE($3, notes),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, params.ID, params.Status, params.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

// Delete removes a lead.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a lead by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

// List retrieves leads with filters and pagination.
func (r *Repo) List(ctx context.Context, params ListLeadsParams) ([]Lead, int, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if params.Search != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leads WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	sortColumn := "created_at"
	switch params.SortBy {
	case "name":
		sortColumn = "name"
	case "totalCost":
		sortColumn = "total_cost"
	case "status":
		sortColumn = "status"
	case "updatedAt":
		sortColumn = "updated_at"
	}

	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM leads
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`, leadColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}

	return leads, total, nil
}

// Stats summarizes the pipeline: totals per status plus the summed system
// cost of leads not yet closed.
func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return Stats{}, fmt.Errorf("lead stats: %w", err)
	}
	defer rows.Close()

	stats := Stats{ByStatus: make([]StatusCount, 0)}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return Stats{}, fmt.Errorf("scan lead stats: %w", err)
		}
		stats.Total += sc.Count
		stats.ByStatus = append(stats.ByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("lead stats: %w", err)
	}

	if err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cost), 0) FROM leads WHERE status <> $1`, StatusClosed,
	).Scan(&stats.PipelineValue); err != nil {
		return Stats{}, fmt.Errorf("lead pipeline value: %w", err)
	}

	return stats, nil
}
