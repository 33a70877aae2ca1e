package models

import "time"

// BlogModel is a blog post with SEO metadata and publish/draft state.
type BlogModel struct {
	Base
	Title           string     `json:"title"           gorm:"not null"`
	Slug            string     `json:"slug"            gorm:"uniqueIndex;not null"`
	Excerpt         *string    `json:"excerpt"`
	Content         string     `json:"content"         gorm:"type:longtext"`
	FeaturedImage   *string    `json:"featuredImage"`
	Language        string     `json:"language"        gorm:"default:en;index"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	IsPublished     bool       `json:"isPublished"     gorm:"default:false;index"`
	IsFeatured      bool       `json:"isFeatured"      gorm:"default:false;index"`
	IsDraft         bool       `json:"isDraft"`
	ReadingTime     int        `json:"readingTime"     gorm:"default:1"`
	ReadCount       int        `json:"readCount"       gorm:"column:read_count;default:0"`
	PublishedAt     *time.Time `json:"publishedAt"`

	CategoryID *string            `json:"categoryId" gorm:"index"`
	Category   *BlogCategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags       []BlogTagModel     `json:"tags,omitempty"     gorm:"many2many:blog_tag_relations"`
	Credit     *BlogCreditModel   `json:"credit,omitempty"   gorm:"foreignKey:BlogID"`
}

func (BlogModel) TableName() string { return "blogs" }

// BlogCreditModel holds attribution for translated or adapted content.
// Owned by exactly one blog and removed together with it.
type BlogCreditModel struct {
	Base
	BlogID         string  `json:"blogId"         gorm:"uniqueIndex;not null"`
	OriginalAuthor string  `json:"originalAuthor"`
	OriginalSource *string `json:"originalSource"`
	SourceURL      *string `json:"sourceUrl"`
	LicenseType    *string `json:"licenseType"`
	CreditText     *string `json:"creditText"`
	TranslatedFrom *string `json:"translatedFrom"`
	AdaptedFrom    *string `json:"adaptedFrom"`
}

func (BlogCreditModel) TableName() string { return "blog_credits" }

// BlogCategoryModel represents a blog category.
type BlogCategoryModel struct {
	Base
	Name        string  `json:"name"        gorm:"uniqueIndex;not null"`
	Slug        string  `json:"slug"        gorm:"uniqueIndex;not null"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    bool    `json:"isActive"    gorm:"default:true"`

	Blogs []BlogModel `json:"blogs,omitempty" gorm:"foreignKey:CategoryID"`
}

func (BlogCategoryModel) TableName() string { return "blog_categories" }

// BlogTagModel represents a blog tag.
type BlogTagModel struct {
	Base
	Name  string  `json:"name"  gorm:"uniqueIndex;not null"`
	Slug  string  `json:"slug"  gorm:"uniqueIndex;not null"`
	Color *string `json:"color"`

	Blogs []BlogModel `json:"blogs,omitempty" gorm:"many2many:blog_tag_relations"`
}

func (BlogTagModel) TableName() string { return "blog_tags" }
