package blog

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

func (s *Svc) validate(p *BlogPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return apperr.Validation("title is required")
	}
	if strings.TrimSpace(p.Excerpt) == "" {
		return apperr.Validation("excerpt is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return apperr.Validation("content is required")
	}
	return nil
}

// Create derives the slug from the title when absent.
func (s *Svc) Create(ctx context.Context, p *BlogPost) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Title)
	}
	return s.repo.Create(ctx, p)
}

func (s *Svc) Update(ctx context.Context, p *BlogPost) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Title)
	}
	return s.repo.Update(ctx, p)
}

func (s *Svc) Get(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Svc) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Svc) ListAll(ctx context.Context) ([]*BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *Svc) Paginate(ctx context.Context, page, pageSize int, category string) ([]*BlogPost, int, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.Paginate(ctx, page, pageSize, category)
}

func (s *Svc) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	return s.repo.CategoryCounts(ctx)
}
