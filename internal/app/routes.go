package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-space/core/internal/middleware"
	"github.com/portfolio-space/core/internal/modules/admin"
	"github.com/portfolio-space/core/internal/modules/blog"
	pkgredis "github.com/portfolio-space/core/internal/pkg/redis"
	"github.com/portfolio-space/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	rdb := rc.Raw()

	blogSvc := blog.NewService(a.db)
	adminSvc := admin.NewService(blogSvc, admin.NewDefaultValidator())

	api := a.router.Group("/api/v1")
	api.Use(middleware.OptionalAuth(a.cfg.AdminToken))
	api.Use(middleware.RateLimit(rdb))

	api.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})

	// public blog API, cached for anonymous readers
	public := api.Group("")
	public.Use(middleware.HTTPCache(rdb, 30*time.Second))
	blog.NewHandler(blogSvc).RegisterRoutes(public)

	// admin API, guarded inside the service layer so unauthenticated calls
	// get the uniform tagged-error treatment
	adminGroup := api.Group("")
	adminGroup.Use(middleware.Idempotence(rdb))
	admin.NewHandler(adminSvc, a.cfg.AdminToken, a.logger).RegisterRoutes(adminGroup)

	a.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	a.router.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
}
