package blog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost maps to the blog_post table.
type BlogPost struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Slug             string    `db:"slug" json:"slug"`
	Content          string    `db:"content" json:"content"`
	Excerpt          string    `db:"excerpt" json:"excerpt"`
	Category         *string   `db:"category" json:"category,omitempty"`
	FeaturedImageURL *string   `db:"featured_image_url" json:"featured_image_url,omitempty"`
	AuthorName       *string   `db:"author_name" json:"author_name,omitempty"`
	SEOTitle         *string   `db:"seo_title" json:"seo_title,omitempty"`
	SEODescription   *string   `db:"seo_description" json:"seo_description,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Slugify lowercases the title and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	inRun := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}
	return b.String()
}
