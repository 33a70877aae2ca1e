package admin

import (
	"context"

	"github.com/portfolio-space/core/internal/models"
	"github.com/portfolio-space/core/internal/modules/blog"
	"github.com/portfolio-space/core/internal/pkg/apperror"
	"github.com/portfolio-space/core/internal/pkg/pagination"
	"github.com/portfolio-space/core/internal/pkg/sanitize"
)

// Queries is the slice of the blog query layer the admin service depends on.
// *blog.Service satisfies it; tests substitute a stub.
type Queries interface {
	Stats(ctx context.Context) (*blog.Stats, error)
	List(pq pagination.Query, q blog.ListQuery) ([]models.BlogModel, pagination.Envelope, error)
	GetByID(id string) (*models.BlogModel, error)
	Create(dto *blog.CreateBlogDTO) (*models.BlogModel, error)
	Update(id string, dto *blog.UpdateBlogDTO) (*models.BlogModel, error)
	Delete(id string) (bool, error)
	Categories() ([]models.BlogCategoryModel, error)
	Tags() ([]models.BlogTagModel, error)
}

// Service orchestrates admin blog operations: every call validates the
// session and rate budget first, then payload rules, then delegates to the
// query layer. Failures surface as tagged errors so the transport can map
// them to status codes without string matching.
type Service struct {
	queries   Queries
	validator *Validator
}

func NewService(queries Queries, validator *Validator) *Service {
	return &Service{queries: queries, validator: validator}
}

// ListResult bundles a blog page with its pagination metadata.
type ListResult struct {
	Blogs      []models.BlogModel  `json:"blogs"`
	Pagination pagination.Envelope `json:"pagination"`
}

func (s *Service) GetStats(ctx context.Context, ac Context) (*blog.Stats, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	stats, err := s.queries.Stats(ctx)
	if err != nil {
		return nil, persistence("fetch blog statistics", err)
	}
	return stats, nil
}

func (s *Service) ListBlogs(ac Context, pq pagination.Query, q blog.ListQuery) (*ListResult, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	blogs, envelope, err := s.queries.List(pq, q)
	if err != nil {
		return nil, persistence("fetch blogs", err)
	}
	return &ListResult{Blogs: blogs, Pagination: envelope}, nil
}

func (s *Service) GetBlog(ac Context, id string) (*models.BlogModel, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	b, err := s.queries.GetByID(id)
	if err != nil {
		return nil, persistence("fetch blog", err)
	}
	if b == nil {
		return nil, apperror.NotFound("Blog")
	}
	return b, nil
}

func (s *Service) CreateBlog(ac Context, dto *blog.CreateBlogDTO) (*models.BlogModel, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	if details := s.validator.ValidateBlogData(dto.Validatable()); len(details) > 0 {
		return nil, apperror.Validation(details)
	}
	b, err := s.queries.Create(dto)
	if err != nil {
		return nil, persistence("create blog", err)
	}
	return b, nil
}

func (s *Service) UpdateBlog(ac Context, id string, dto *blog.UpdateBlogDTO) (*models.BlogModel, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	if details := s.validator.ValidateBlogData(dto.Validatable()); len(details) > 0 {
		return nil, apperror.Validation(details)
	}
	b, err := s.queries.Update(id, dto)
	if err != nil {
		return nil, persistence("update blog", err)
	}
	if b == nil {
		return nil, apperror.NotFound("Blog")
	}
	return b, nil
}

func (s *Service) DeleteBlog(ac Context, id string) error {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return err
	}
	found, err := s.queries.Delete(id)
	if err != nil {
		return persistence("delete blog", err)
	}
	if !found {
		return apperror.NotFound("Blog")
	}
	return nil
}

func (s *Service) GetCategories(ac Context) ([]models.BlogCategoryModel, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	categories, err := s.queries.Categories()
	if err != nil {
		return nil, persistence("fetch categories", err)
	}
	return categories, nil
}

func (s *Service) GetTags(ac Context) ([]models.BlogTagModel, error) {
	if err := s.validator.ValidateAccess(ac); err != nil {
		return nil, err
	}
	tags, err := s.queries.Tags()
	if err != nil {
		return nil, persistence("fetch tags", err)
	}
	return tags, nil
}

// persistence wraps a storage failure with a caller-safe message; the raw
// error stays on the chain for logging.
func persistence(operation string, err error) error {
	return apperror.Persistence(operation, sanitize.ErrorMessage(err), err)
}
