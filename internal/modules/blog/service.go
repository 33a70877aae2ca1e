package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/portfolio-space/core/internal/models"
	"github.com/portfolio-space/core/internal/pkg/pagination"
	"github.com/portfolio-space/core/internal/pkg/sanitize"
)

// Service is the blog query layer. All reads and writes against blog rows go
// through here; callers handle authorization and validation.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// recentActivityLimit caps the activity feed in the stats snapshot.
const recentActivityLimit = 10

// sortColumns whitelists sortable fields; anything else falls back to
// updated_at so callers cannot inject arbitrary SQL into ORDER BY.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"publishedAt": "published_at",
	"readCount":   "read_count",
	"title":       "title",
}

// sortClause maps a sort request to a safe ORDER BY expression.
func sortClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "updated_at"
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return column + " " + order
}

// nextPublishedAt decides the published timestamp after a publish-state
// change: newly published rows get stamped now, explicitly unpublished rows
// lose the stamp, already-published rows keep the original.
func nextPublishedAt(current *time.Time, wasPublished, willPublish bool, now time.Time) *time.Time {
	switch {
	case willPublish && !wasPublished:
		return &now
	case !willPublish:
		return nil
	default:
		return current
	}
}

// Stats computes the admin dashboard snapshot. The five aggregates and the
// activity feed are independent queries, so they run concurrently.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		total, published, draft, featured, views int64
		recent                                   []models.BlogModel
	)

	g, gctx := errgroup.WithContext(ctx)
	db := s.db.WithContext(gctx)

	g.Go(func() error {
		return db.Model(&models.BlogModel{}).Count(&total).Error
	})
	g.Go(func() error {
		return db.Model(&models.BlogModel{}).Where("is_published = ?", true).Count(&published).Error
	})
	g.Go(func() error {
		return db.Model(&models.BlogModel{}).Where("is_draft = ?", true).Count(&draft).Error
	})
	g.Go(func() error {
		return db.Model(&models.BlogModel{}).Where("is_featured = ?", true).Count(&featured).Error
	})
	g.Go(func() error {
		return db.Model(&models.BlogModel{}).
			Select("COALESCE(SUM(read_count), 0)").
			Scan(&views).Error
	})
	g.Go(func() error {
		return db.Model(&models.BlogModel{}).
			Order("updated_at DESC").
			Limit(recentActivityLimit).
			Find(&recent).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	activity := make([]ActivityItem, 0, len(recent))
	for i := range recent {
		activity = append(activity, toActivityItem(&recent[i]))
	}

	return &Stats{
		TotalBlogs:     total,
		PublishedBlogs: published,
		DraftBlogs:     draft,
		FeaturedBlogs:  featured,
		TotalViews:     views,
		RecentActivity: activity,
	}, nil
}

// applyListFilters narrows a blog query per the list params.
func applyListFilters(tx *gorm.DB, q ListQuery) *gorm.DB {
	if q.Published != nil {
		tx = tx.Where("is_published = ?", *q.Published)
	}
	if q.Featured != nil {
		tx = tx.Where("is_featured = ?", *q.Featured)
	}
	if q.Language != "" {
		tx = tx.Where("language = ?", q.Language)
	}
	if q.Category != nil && *q.Category != "" {
		tx = tx.Where("category_id = ?", *q.Category)
	}
	if term := sanitize.Input(q.Search); term != "" {
		like := "%" + term + "%"
		tx = tx.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", like, like, like)
	}
	return tx
}

// List returns a page of blogs with relations preloaded.
func (s *Service) List(pq pagination.Query, q ListQuery) ([]models.BlogModel, pagination.Envelope, error) {
	tx := applyListFilters(s.db.Model(&models.BlogModel{}), q).
		Preload("Category").
		Preload("Tags").
		Preload("Credit").
		Order(sortClause(q.SortBy, q.SortOrder))

	var blogs []models.BlogModel
	envelope, err := pagination.Paginate(tx, pagination.Normalize(pq), &blogs)
	if err != nil {
		return nil, pagination.Envelope{}, err
	}
	return blogs, envelope, nil
}

// GetByID returns a blog with relations, or (nil, nil) if it does not exist.
func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	var blog models.BlogModel
	err := s.db.
		Preload("Category").
		Preload("Tags").
		Preload("Credit").
		First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetPublishedBySlug returns a published blog by slug, or (nil, nil) if there
// is no published blog with that slug.
func (s *Service) GetPublishedBySlug(slug string) (*models.BlogModel, error) {
	var blog models.BlogModel
	err := s.db.
		Preload("Category").
		Preload("Tags").
		Preload("Credit").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create inserts a new blog. Text fields are sanitized, the slug is
// auto-generated and uniquified, and reading time is derived from content.
func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogModel, error) {
	title := sanitize.Input(dto.Title)
	content := sanitize.Content(dto.Content)

	base := strings.TrimSpace(dto.Slug)
	if base == "" {
		base = GenerateSlug(title)
	}
	slug, err := s.ensureUniqueSlug(base, "")
	if err != nil {
		return nil, err
	}

	language := dto.Language
	if language == "" {
		language = "en"
	}

	blog := models.BlogModel{
		Title:           title,
		Slug:            slug,
		Excerpt:         sanitizeOptional(dto.Excerpt),
		Content:         content,
		FeaturedImage:   trimOptional(dto.FeaturedImage),
		Language:        language,
		MetaTitle:       sanitizeOptional(dto.MetaTitle),
		MetaDescription: sanitizeOptional(dto.MetaDescription),
		IsPublished:     dto.IsPublished,
		IsFeatured:      dto.IsFeatured,
		IsDraft:         !dto.IsPublished,
		ReadingTime:     CalculateReadingTime(content),
	}
	if dto.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}
	if dto.CategoryID != nil && *dto.CategoryID != "" {
		blog.CategoryID = dto.CategoryID
	}
	if dto.Credit != nil {
		blog.Credit = creditModel(dto.Credit)
	}

	if len(dto.TagIDs) > 0 {
		tags, err := s.tagsByID(dto.TagIDs)
		if err != nil {
			return nil, err
		}
		blog.Tags = tags
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	return s.GetByID(blog.ID)
}

// Update applies a partial update. Returns (nil, nil) if the blog does not
// exist.
func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogModel, error) {
	existing, err := s.GetByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if dto.Title != nil {
		updates["title"] = sanitize.Input(*dto.Title)
	}
	// an empty slug means "not provided", never "erase the slug"
	if trimmed := trimmedSlug(dto.Slug); trimmed != "" && trimmed != existing.Slug {
		slug, err := s.ensureUniqueSlug(trimmed, id)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = sanitize.Input(*dto.Excerpt)
	}
	if dto.Content != nil {
		content := sanitize.Content(*dto.Content)
		updates["content"] = content
		updates["reading_time"] = CalculateReadingTime(content)
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = strings.TrimSpace(*dto.FeaturedImage)
	}
	if dto.Language != nil {
		updates["language"] = *dto.Language
	}
	if dto.MetaTitle != nil {
		updates["meta_title"] = sanitize.Input(*dto.MetaTitle)
	}
	if dto.MetaDescription != nil {
		updates["meta_description"] = sanitize.Input(*dto.MetaDescription)
	}
	if dto.IsFeatured != nil {
		updates["is_featured"] = *dto.IsFeatured
	}
	if dto.IsDraft != nil {
		updates["is_draft"] = *dto.IsDraft
	}
	if dto.CategoryID != nil {
		if *dto.CategoryID == "" {
			updates["category_id"] = nil
		} else {
			updates["category_id"] = *dto.CategoryID
		}
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
		updates["is_draft"] = !*dto.IsPublished
		updates["published_at"] = nextPublishedAt(
			existing.PublishedAt, existing.IsPublished, *dto.IsPublished, time.Now())
	}

	if len(updates) > 0 {
		if err := s.db.Model(existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if dto.TagIDs != nil {
		tags, err := s.tagsByID(dto.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(existing).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
	}

	if dto.Credit != nil {
		credit := creditModel(dto.Credit)
		credit.BlogID = id
		err := s.db.
			Where(models.BlogCreditModel{BlogID: id}).
			Assign(credit).
			FirstOrCreate(&models.BlogCreditModel{}).Error
		if err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete removes a blog, its credit row and its tag links in one
// transaction. Returns false if the blog does not exist.
func (s *Service) Delete(id string) (bool, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(existing).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("blog_id = ?", id).Delete(&models.BlogCreditModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.BlogModel{}, "id = ?", id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrementReadCount bumps the read counter without touching updated_at.
func (s *Service) IncrementReadCount(id string) error {
	return s.db.Model(&models.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("read_count", gorm.Expr("read_count + 1")).Error
}

// Categories lists active categories ordered by name.
func (s *Service) Categories() ([]models.BlogCategoryModel, error) {
	var categories []models.BlogCategoryModel
	err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	return categories, err
}

// Tags lists all tags ordered by name.
func (s *Service) Tags() ([]models.BlogTagModel, error) {
	var tags []models.BlogTagModel
	err := s.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (s *Service) tagsByID(ids []string) ([]models.BlogTagModel, error) {
	if len(ids) == 0 {
		return []models.BlogTagModel{}, nil
	}
	var tags []models.BlogTagModel
	if err := s.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func creditModel(dto *CreditDTO) *models.BlogCreditModel {
	return &models.BlogCreditModel{
		OriginalAuthor: sanitize.Input(dto.OriginalAuthor),
		OriginalSource: sanitizeOptional(dto.OriginalSource),
		SourceURL:      trimOptional(dto.SourceURL),
		LicenseType:    trimOptional(dto.LicenseType),
		CreditText:     sanitizeOptional(dto.CreditText),
		TranslatedFrom: trimOptional(dto.TranslatedFrom),
		AdaptedFrom:    trimOptional(dto.AdaptedFrom),
	}
}

func sanitizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	v := sanitize.Input(*p)
	return &v
}

func trimmedSlug(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func trimOptional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
