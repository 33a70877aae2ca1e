package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// Envelope is the pagination metadata returned with list responses.
type Envelope struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// FromContext extracts and clamps pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "20"), DefaultLimit)
	return Normalize(Query{Page: page, Limit: limit})
}

// Normalize clamps page and limit into valid bounds.
func Normalize(q Query) Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Paginate applies limit/offset to a GORM query and returns the envelope.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (Envelope, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Envelope{}, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := db.Offset(offset).Limit(q.Limit).Find(dest).Error; err != nil {
		return Envelope{}, err
	}

	return Build(q, total), nil
}

// Build computes the envelope for a page of a collection of size total.
func Build(q Query, total int64) Envelope {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Envelope{
		Page:        q.Page,
		Limit:       q.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: int64(q.Page)*int64(q.Limit) < total,
		HasPrevPage: q.Page > 1,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
