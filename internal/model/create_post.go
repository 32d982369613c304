package model

import "github.com/jackc/pgx/v5/pgtype"

type CreatePostDTO struct {
	AuthorID int64       `json:"author_id"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Image    string      `json:"image,omitempty"`
	Publish  pgtype.Date `json:"publish"`
	Draft    bool        `json:"draft"`
}
