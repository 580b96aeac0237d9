package schemas

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
)

const maxPageSize = 100

// Pagination carries the optional page/limit query parameters. The zero
// value means "no pagination": list endpoints return everything unless
// the caller asked for a page.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination validates the page and limit query parameters.
// Supplying limit without page implies page 1.
func ParsePagination(c *gin.Context) (Pagination, error) {
	var p Pagination

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return p, apperrors.Validation("Invalid limit parameter",
				apperrors.FieldError{Field: "limit", Rule: "positive integer"})
		}
		if limit > maxPageSize {
			return p, apperrors.Validation("Invalid limit parameter",
				apperrors.FieldError{Field: "limit", Rule: "max 100"})
		}
		p.Limit = limit
		p.Page = 1
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			return p, apperrors.Validation("Invalid page parameter",
				apperrors.FieldError{Field: "page", Rule: "positive integer"})
		}
		if p.Limit == 0 {
			p.Limit = 10
		}
		p.Page = page
	}

	return p, nil
}

// LimitOffset translates the pagination into query bounds; (0, 0) means
// unbounded.
func (p Pagination) LimitOffset() (limit, offset int) {
	if p.Limit == 0 {
		return 0, 0
	}
	return p.Limit, (p.Page - 1) * p.Limit
}
