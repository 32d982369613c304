package model

import "github.com/jackc/pgx/v5/pgtype"

// UpdatePostDTO carries replacement values for an edit. AuthorID is absent on
// purpose: authorship never changes after creation.
type UpdatePostDTO struct {
	Title   *string      `json:"title,omitempty"`
	Content *string      `json:"content,omitempty"`
	Image   *string      `json:"image,omitempty"`
	Publish *pgtype.Date `json:"publish,omitempty"`
	Draft   *bool        `json:"draft,omitempty"`
}
