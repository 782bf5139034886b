package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/luminadental/clinic/internal/platform/apperr"
)

type Svc struct {
	repo Repository
}

func NewSvc(repo Repository) *Svc {
	return &Svc{repo: repo}
}

func (s *Svc) Create(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FullName) == "" {
		return apperr.Validation("full_name is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Svc) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Svc) Update(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FullName) == "" {
		return apperr.Validation("full_name is required")
	}
	return s.repo.Update(ctx, p)
}

func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Svc) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
