package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luminadental/clinic/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const serviceCols = `id, name, description, category, price, icon_name, is_active, created_at, updated_at`

func (r *repoPG) scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Price,
		&s.IconName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Service) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO service (id, name, description, category, price, icon_name, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.Name, s.Description, s.Category, s.Price, s.IconName, s.IsActive)
	if err != nil {
		return apperr.Network("creating service: %v", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	s, err := r.scanService(r.pool.QueryRow(ctx, `SELECT `+serviceCols+` FROM service WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("service %s not found", id)
	}
	if err != nil {
		return nil, apperr.Network("fetching service: %v", err)
	}
	return s, nil
}

func (r *repoPG) Update(ctx context.Context, s *Service) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE service SET name=$2, description=$3, category=$4, price=$5,
			icon_name=$6, is_active=$7, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.Name, s.Description, s.Category, s.Price, s.IconName, s.IsActive)
	if err != nil {
		return apperr.Network("updating service: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("service %s not found", s.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM service WHERE id = $1`, id)
	if err != nil {
		return apperr.Network("deleting service: %v", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, activeOnly bool) ([]*Service, error) {
	query := `SELECT ` + serviceCols + ` FROM service`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Network("listing services: %v", err)
	}
	defer rows.Close()

	var items []*Service
	for rows.Next() {
		s, err := r.scanService(rows)
		if err != nil {
			return nil, apperr.Network("scanning service: %v", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Network("listing services: %v", err)
	}
	return items, nil
}
