package catalog

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

func (s *Svc) validate(svc *Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return apperr.Validation("name is required")
	}
	if svc.Price < 0 {
		return apperr.Validation("price must be non-negative")
	}
	return nil
}

func (s *Svc) Create(ctx context.Context, svc *Service) error {
	if err := s.validate(svc); err != nil {
		return err
	}
	return s.repo.Create(ctx, svc)
}

func (s *Svc) Get(ctx context.Context, id uuid.UUID) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Svc) Update(ctx context.Context, svc *Service) error {
	if err := s.validate(svc); err != nil {
		return err
	}
	return s.repo.Update(ctx, svc)
}

func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListPublic returns active services only, for the marketing site.
func (s *Svc) ListPublic(ctx context.Context) ([]*Service, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns every service, for the back office.
func (s *Svc) ListAll(ctx context.Context) ([]*Service, error) {
	return s.repo.List(ctx, false)
}
