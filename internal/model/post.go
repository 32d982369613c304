package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Post struct {
	ID        int64              `json:"id"`
	AuthorID  int64              `json:"author_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Image     string             `json:"image,omitempty"`
	Publish   pgtype.Date        `json:"publish"`
	Draft     bool               `json:"draft"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Visibility string

const (
	VisibilityVisible   Visibility = "visible"
	VisibilityScheduled Visibility = "scheduled"
	VisibilityDraft     Visibility = "draft"
)

// VisibilityOn classifies the post for a given day. The draft flag wins over
// the publish date: a draft stays hidden even once its date has passed.
func (p *Post) VisibilityOn(today time.Time) Visibility {
	switch {
	case p.Draft:
		return VisibilityDraft
	case p.Publish.Time.After(today):
		return VisibilityScheduled
	default:
		return VisibilityVisible
	}
}

// HiddenOn reports whether the post is outside public visibility on the given
// day. The publish boundary is inclusive: publish == today is public.
func (p *Post) HiddenOn(today time.Time) bool {
	return p.VisibilityOn(today) != VisibilityVisible
}
