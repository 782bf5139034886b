package booking

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

const apptCols = `id, first_name, last_name, email, service_id,
	preferred_date, preferred_time, proposed_date, proposed_time,
	message, status, created_at, updated_at`

func (r *repoPG) scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.ServiceID,
		&a.PreferredDate, &a.PreferredTime, &a.ProposedDate, &a.ProposedTime,
		&a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, first_name, last_name, email, service_id,
			preferred_date, preferred_time, proposed_date, proposed_time, message, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.FirstName, a.LastName, a.Email, a.ServiceID,
		a.PreferredDate, a.PreferredTime, a.ProposedDate, a.ProposedTime, a.Message, a.Status)
	if err != nil {
		return apperr.Network("creating appointment: %v", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := r.scanAppt(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("appointment %s not found", id)
	}
	if err != nil {
		return nil, apperr.Network("fetching appointment: %v", err)
	}
	return a, nil
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment SET first_name=$2, last_name=$3, email=$4, service_id=$5,
			preferred_date=$6, preferred_time=$7, proposed_date=$8, proposed_time=$9,
			message=$10, status=$11, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.FirstName, a.LastName, a.Email, a.ServiceID,
		a.PreferredDate, a.PreferredTime, a.ProposedDate, a.ProposedTime,
		a.Message, a.Status)
	if err != nil {
		return apperr.Network("updating appointment: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("appointment %s not found", a.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	if err != nil {
		return apperr.Network("deleting appointment: %v", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, status Status) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointment`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY preferred_date ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Network("listing appointments: %v", err)
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppt(rows)
		if err != nil {
			return nil, apperr.Network("scanning appointment: %v", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Network("listing appointments: %v", err)
	}
	return items, nil
}
