package admin

import (
	"crypto/subtle"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/portfolio-space/core/internal/middleware"
	"github.com/portfolio-space/core/internal/modules/blog"
	"github.com/portfolio-space/core/internal/pkg/apperror"
	"github.com/portfolio-space/core/internal/pkg/jwt"
	"github.com/portfolio-space/core/internal/pkg/pagination"
	"github.com/portfolio-space/core/internal/pkg/response"
)

const sessionTTL = 24 * time.Hour

// Handler exposes the action-based admin blog API. Reads go through
// GET ?action=..., writes through POST {action, blogId, data}.
type Handler struct {
	svc        *Service
	adminToken string
	logger     *zap.Logger
}

func NewHandler(svc *Service, adminToken string, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, adminToken: adminToken, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)

	g := rg.Group("/admin/blog")
	{
		g.GET("", h.handleGet)
		g.POST("", h.handlePost)
	}
}

// requestContext snapshots the request facts the service layer validates on.
func requestContext(c *gin.Context) Context {
	return Context{
		ClientIP:        c.ClientIP(),
		IsAuthenticated: middleware.IsAuthenticated(c),
		UserAgent:       c.Request.UserAgent(),
	}
}

type loginBody struct {
	Token string `json:"token" binding:"required"`
}

// login exchanges the static admin token for a short-lived session JWT bound
// to the caller's IP.
func (h *Handler) login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "token is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(body.Token), []byte(h.adminToken)) != 1 {
		h.logger.Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		response.Unauthorized(c)
		return
	}

	session, err := jwt.Sign(c.ClientIP(), sessionTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"token":     session,
		"expiresIn": int(sessionTTL.Seconds()),
	})
}

func (h *Handler) handleGet(c *gin.Context) {
	ac := requestContext(c)

	switch c.Query("action") {
	case "stats":
		stats, err := h.svc.GetStats(c.Request.Context(), ac)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, stats)

	case "list":
		var q blog.ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			response.BadRequest(c, "invalid query parameters")
			return
		}
		result, err := h.svc.ListBlogs(ac, pagination.FromContext(c), q)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, result)

	case "get":
		id := c.Query("blogId")
		if id == "" {
			response.BadRequest(c, "blogId is required")
			return
		}
		b, err := h.svc.GetBlog(ac, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, b)

	case "categories":
		categories, err := h.svc.GetCategories(ac)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, gin.H{"categories": categories})

	case "tags":
		tags, err := h.svc.GetTags(ac)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, gin.H{"tags": tags})

	default:
		response.BadRequest(c, "unknown action")
	}
}

type writeBody struct {
	Action string          `json:"action" binding:"required"`
	BlogID string          `json:"blogId"`
	Data   json.RawMessage `json:"data"`
}

func (h *Handler) handlePost(c *gin.Context) {
	var body writeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "action is required")
		return
	}
	ac := requestContext(c)

	switch body.Action {
	case "create":
		var dto blog.CreateBlogDTO
		if err := json.Unmarshal(body.Data, &dto); err != nil {
			response.BadRequest(c, "invalid blog payload")
			return
		}
		b, err := h.svc.CreateBlog(ac, &dto)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Created(c, b)

	case "update":
		if body.BlogID == "" {
			response.BadRequest(c, "blogId is required")
			return
		}
		var dto blog.UpdateBlogDTO
		if err := json.Unmarshal(body.Data, &dto); err != nil {
			response.BadRequest(c, "invalid blog payload")
			return
		}
		b, err := h.svc.UpdateBlog(ac, body.BlogID, &dto)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, b)

	case "delete":
		if body.BlogID == "" {
			response.BadRequest(c, "blogId is required")
			return
		}
		if err := h.svc.DeleteBlog(ac, body.BlogID); err != nil {
			h.respondError(c, err)
			return
		}
		response.OKMessage(c, nil, "Blog deleted successfully")

	case "publish", "unpublish", "feature", "unfeature":
		if body.BlogID == "" {
			response.BadRequest(c, "blogId is required")
			return
		}
		b, err := h.svc.UpdateBlog(ac, body.BlogID, togglePatch(body.Action))
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, b)

	default:
		response.BadRequest(c, "unknown action")
	}
}

// togglePatch translates the publish/feature shortcut actions into the
// equivalent partial update.
func togglePatch(action string) *blog.UpdateBlogDTO {
	yes, no := true, false
	switch action {
	case "publish":
		return &blog.UpdateBlogDTO{IsPublished: &yes}
	case "unpublish":
		return &blog.UpdateBlogDTO{IsPublished: &no}
	case "feature":
		return &blog.UpdateBlogDTO{IsFeatured: &yes}
	default:
		return &blog.UpdateBlogDTO{IsFeatured: &no}
	}
}

// respondError maps tagged service errors onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindUnauthorized:
		response.Unauthorized(c)
	case apperror.KindRateLimited:
		response.TooManyRequests(c, "60")
	case apperror.KindValidation:
		response.ValidationFailed(c, apperror.DetailsOf(err))
	case apperror.KindNotFound:
		response.NotFoundMsg(c, err.Error())
	default:
		h.logger.Error("admin operation failed", zap.Error(err))
		response.InternalError(c, err)
	}
}
