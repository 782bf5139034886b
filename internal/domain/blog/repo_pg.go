package blog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luminadental/clinic/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const postCols = `id, title, slug, content, excerpt, category,
	featured_image_url, author_name, seo_title, seo_description, created_at, updated_at`

func (r *repoPG) scanPost(row pgx.Row) (*BlogPost, error) {
	var p BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Category,
		&p.FeaturedImageURL, &p.AuthorName, &p.SEOTitle, &p.SEODescription,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) Create(ctx context.Context, p *BlogPost) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blog_post (id, title, slug, content, excerpt, category,
			featured_image_url, author_name, seo_title, seo_description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Category,
		p.FeaturedImageURL, p.AuthorName, p.SEOTitle, p.SEODescription)
	if isUniqueViolation(err) {
		return apperr.Conflict("slug %q already exists", p.Slug)
	}
	if err != nil {
		return apperr.Network("creating blog post: %v", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	p, err := r.scanPost(r.pool.QueryRow(ctx, `SELECT `+postCols+` FROM blog_post WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("blog post %s not found", id)
	}
	if err != nil {
		return nil, apperr.Network("fetching blog post: %v", err)
	}
	return p, nil
}

func (r *repoPG) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	p, err := r.scanPost(r.pool.QueryRow(ctx, `SELECT `+postCols+` FROM blog_post WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("blog post %q not found", slug)
	}
	if err != nil {
		return nil, apperr.Network("fetching blog post: %v", err)
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *BlogPost) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blog_post SET title=$2, slug=$3, content=$4, excerpt=$5, category=$6,
			featured_image_url=$7, author_name=$8, seo_title=$9, seo_description=$10,
			updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Category,
		p.FeaturedImageURL, p.AuthorName, p.SEOTitle, p.SEODescription)
	if isUniqueViolation(err) {
		return apperr.Conflict("slug %q already exists", p.Slug)
	}
	if err != nil {
		return apperr.Network("updating blog post: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("blog post %s not found", p.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blog_post WHERE id = $1`, id)
	if err != nil {
		return apperr.Network("deleting blog post: %v", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context) ([]*BlogPost, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postCols+` FROM blog_post ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperr.Network("listing blog posts: %v", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) Paginate(ctx context.Context, page, pageSize int, category string) ([]*BlogPost, int, error) {
	countQuery := `SELECT COUNT(*) FROM blog_post`
	query := `SELECT ` + postCols + ` FROM blog_post`
	var args []interface{}

	if category != "" {
		countQuery += ` WHERE category = $1`
		query += ` WHERE category = $1`
		args = append(args, category)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Network("counting blog posts: %v", err)
	}

	offset := (page - 1) * pageSize
	if category != "" {
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.Network("paginating blog posts: %v", err)
	}
	defer rows.Close()

	items, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*) FROM blog_post
		WHERE category IS NOT NULL AND category <> ''
		GROUP BY category ORDER BY category ASC`)
	if err != nil {
		return nil, apperr.Network("counting categories: %v", err)
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, apperr.Network("scanning category count: %v", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Network("counting categories: %v", err)
	}
	return counts, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*BlogPost, error) {
	var items []*BlogPost
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, apperr.Network("scanning blog post: %v", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Network("listing blog posts: %v", err)
	}
	return items, nil
}
