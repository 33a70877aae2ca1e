package blog

import (
	"time"

	"github.com/portfolio-space/core/internal/models"
)

// CreateBlogDTO is the request body for creating a blog.
type CreateBlogDTO struct {
	Title           string     `json:"title"   binding:"required"`
	Slug            string     `json:"slug"` // auto-generated from title if empty
	Excerpt         *string    `json:"excerpt"`
	Content         string     `json:"content" binding:"required"`
	FeaturedImage   *string    `json:"featuredImage"`
	Language        string     `json:"language"`
	CategoryID      *string    `json:"categoryId"`
	TagIDs          []string   `json:"tags"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	IsPublished     bool       `json:"isPublished"`
	IsFeatured      bool       `json:"isFeatured"`
	Credit          *CreditDTO `json:"credits"`
}

// UpdateBlogDTO is the request body for updating a blog (all fields optional).
type UpdateBlogDTO struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content"`
	FeaturedImage   *string    `json:"featuredImage"`
	Language        *string    `json:"language"`
	CategoryID      *string    `json:"categoryId"` // empty string disconnects the category
	TagIDs          []string   `json:"tags"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	IsPublished     *bool      `json:"isPublished"`
	IsFeatured      *bool      `json:"isFeatured"`
	IsDraft         *bool      `json:"isDraft"`
	Credit          *CreditDTO `json:"credits"`
}

// CreditDTO carries attribution fields for translated or adapted content.
type CreditDTO struct {
	OriginalAuthor string  `json:"originalAuthor"`
	OriginalSource *string `json:"originalSource"`
	SourceURL      *string `json:"sourceUrl"`
	LicenseType    *string `json:"licenseType"`
	CreditText     *string `json:"creditText"`
	TranslatedFrom *string `json:"translatedFrom"`
	AdaptedFrom    *string `json:"adaptedFrom"`
}

// ValidatableFields is the subset of payload fields subject to length rules.
// Nil means the field is absent from the payload and is not checked.
type ValidatableFields struct {
	Title           *string
	Content         *string
	Excerpt         *string
	MetaDescription *string
}

// Validatable exposes the length-checked fields of a create payload.
func (d *CreateBlogDTO) Validatable() ValidatableFields {
	return ValidatableFields{
		Title:           &d.Title,
		Content:         &d.Content,
		Excerpt:         d.Excerpt,
		MetaDescription: d.MetaDescription,
	}
}

// Validatable exposes the length-checked fields of an update payload.
func (d *UpdateBlogDTO) Validatable() ValidatableFields {
	return ValidatableFields{
		Title:           d.Title,
		Content:         d.Content,
		Excerpt:         d.Excerpt,
		MetaDescription: d.MetaDescription,
	}
}

// ListQuery holds filter params for listing blogs.
type ListQuery struct {
	Search    string  `form:"search"`
	Language  string  `form:"language"`
	Published *bool   `form:"published"`
	Featured  *bool   `form:"featured"`
	SortBy    string  `form:"sortBy"`
	SortOrder string  `form:"sortOrder"`
	Category  *string `form:"category"`
}

// Stats is the derived admin statistics snapshot. It is computed on demand
// and never persisted.
type Stats struct {
	TotalBlogs     int64          `json:"totalBlogs"`
	PublishedBlogs int64          `json:"publishedBlogs"`
	DraftBlogs     int64          `json:"draftBlogs"`
	FeaturedBlogs  int64          `json:"featuredBlogs"`
	TotalViews     int64          `json:"totalViews"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"` // "published" | "updated"
	BlogTitle string    `json:"blogTitle"`
	BlogSlug  string    `json:"blogSlug"`
	Timestamp time.Time `json:"timestamp"`
}

func toActivityItem(b *models.BlogModel) ActivityItem {
	action := "updated"
	if b.IsPublished {
		action = "published"
	}
	return ActivityItem{
		ID:        b.ID,
		Action:    action,
		BlogTitle: b.Title,
		BlogSlug:  b.Slug,
		Timestamp: b.UpdatedAt,
	}
}
