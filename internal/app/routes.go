package app

import (
	"github.com/gin-gonic/gin"

	"github.com/minbar-media/admin-core/internal/middleware"
	"github.com/minbar-media/admin-core/internal/modules/admin/activity"
	"github.com/minbar-media/admin-core/internal/modules/admin/user"
	"github.com/minbar-media/admin-core/internal/modules/auth/auth"
	"github.com/minbar-media/admin-core/internal/modules/catalog/artist"
	"github.com/minbar-media/admin-core/internal/modules/catalog/content"
	"github.com/minbar-media/admin-core/internal/pkg/auditlog"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")
	if a.rdb != nil {
		api.Use(middleware.RateLimit(a.rdb))
	}

	authMW := middleware.Auth(db)
	adminMW := middleware.RequireAdmin()

	audit := auditlog.NewService(db, a.logger)
	verifier := auth.NewGoogleVerifier(a.cfg.Google.ClientID, a.cfg.Google.TokenInfoURL)

	auth.NewHandler(auth.NewService(db, verifier)).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db, audit)).RegisterRoutes(api, authMW, adminMW)
	artist.NewHandler(artist.NewService(db, a.store, audit)).RegisterRoutes(api, authMW)
	content.NewHandler(content.NewService(db, a.store, audit)).RegisterRoutes(api, authMW)
	activity.NewHandler(activity.NewService(db)).RegisterRoutes(api, authMW)
}
