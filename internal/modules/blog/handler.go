package blog

import (
	"github.com/gin-gonic/gin"

	"github.com/portfolio-space/core/internal/pkg/markdown"
	"github.com/portfolio-space/core/internal/pkg/pagination"
	"github.com/portfolio-space/core/internal/pkg/response"
)

// Handler serves the public blog API. Only published content is reachable
// here; drafts are admin-only.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.list)
		blogs.GET("/categories", h.categories)
		blogs.GET("/tags", h.tags)
		blogs.GET("/:slug", h.getBySlug)
		blogs.POST("/:slug/read", h.markRead)
	}
}

func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	published := true
	q.Published = &published

	blogs, envelope, err := h.svc.List(pagination.FromContext(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"blogs": blogs, "pagination": envelope})
}

func (h *Handler) getBySlug(c *gin.Context) {
	blog, err := h.svc.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if blog == nil {
		response.NotFoundMsg(c, "Blog not found")
		return
	}

	body := gin.H{"blog": blog}
	if c.Query("format") == "html" {
		rendered, err := markdown.Render(blog.Content)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		body["html"] = rendered
	}
	response.OK(c, body)
}

func (h *Handler) markRead(c *gin.Context) {
	blog, err := h.svc.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if blog == nil {
		response.NotFoundMsg(c, "Blog not found")
		return
	}
	if err := h.svc.IncrementReadCount(blog.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) categories(c *gin.Context) {
	categories, err := h.svc.Categories()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"categories": categories})
}

func (h *Handler) tags(c *gin.Context) {
	tags, err := h.svc.Tags()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"tags": tags})
}
