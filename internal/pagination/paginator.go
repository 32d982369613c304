package pagination

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the fixed listing page size.
const DefaultPageSize = 6

type Page struct {
	Number     int `json:"number"`
	Size       int `json:"size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func (p Page) HasNext() bool { return p.Number < p.TotalPages }

func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) Next() int { return p.Number + 1 }

func (p Page) Prev() int { return p.Number - 1 }

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

func (p Page) Limit() int { return p.Size }

// Resolve turns a raw page token from the query string into a concrete page.
// It never fails: a missing or non-numeric token resolves to page 1, a
// numeric token outside the valid range clamps to the nearest boundary
// (below 1 and above the last page both land on the last page). An empty
// collection still has one, empty, page.
func Resolve(token string, totalItems, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(token))
	switch {
	case err != nil:
		number = 1
	case number < 1:
		number = totalPages
	case number > totalPages:
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
