package patient

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

const patientCols = `id, full_name, dob, gender, phone, email, address,
	emergency_contact, medical_history, created_at, updated_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.DOB, &p.Gender, &p.Phone, &p.Email,
		&p.Address, &p.EmergencyContact, &p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, full_name, dob, gender, phone, email, address,
			emergency_contact, medical_history)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.FullName, p.DOB, p.Gender, p.Phone, p.Email,
		p.Address, p.EmergencyContact, p.MedicalHistory)
	if err != nil {
		return apperr.Network("creating patient: %v", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := r.scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("patient %s not found", id)
	}
	if err != nil {
		return nil, apperr.Network("fetching patient: %v", err)
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient SET full_name=$2, dob=$3, gender=$4, phone=$5, email=$6,
			address=$7, emergency_contact=$8, medical_history=$9, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FullName, p.DOB, p.Gender, p.Phone, p.Email,
		p.Address, p.EmergencyContact, p.MedicalHistory)
	if err != nil {
		return apperr.Network("updating patient: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient %s not found", p.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return apperr.Network("deleting patient: %v", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY full_name ASC`)
	if err != nil {
		return nil, apperr.Network("listing patients: %v", err)
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, apperr.Network("scanning patient: %v", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Network("listing patients: %v", err)
	}
	return items, nil
}
