package model

import "inkwell-blog-service/internal/pagination"

// PostPage is one resolved listing page: the visible slice plus the
// navigation metadata and the query that produced it.
type PostPage struct {
	Posts []*PostDetailed `json:"posts"`
	Page  pagination.Page `json:"page"`
	Query string          `json:"query,omitempty"`
}
