package model

import "github.com/jackc/pgx/v5/pgtype"

// PostFilters narrows a listing query. VisibleOn set means public gating:
// only non-draft posts published on or before that date. Nil VisibleOn
// returns everything, including drafts and scheduled posts.
type PostFilters struct {
	VisibleOn *pgtype.Date
	Search    *string
	Limit     *int
	Offset    *int
}
