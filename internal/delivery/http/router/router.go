// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warta/internal/delivery/http/middleware"
	"warta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	BlogHandler       *handler.BlogHandler
	CMSHandler        *handler.CMSHandler
	PostHandler       *handler.PostHandler
	UploadHandler     *handler.UploadHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	blogHandler       *handler.BlogHandler
	cmsHandler        *handler.CMSHandler
	postHandler       *handler.PostHandler
	uploadHandler     *handler.UploadHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		blogHandler:       params.BlogHandler,
		cmsHandler:        params.CMSHandler,
		postHandler:       params.PostHandler,
		uploadHandler:     params.UploadHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public blog routes
	e.GET("/", r.blogHandler.Home)
	e.GET("/blog/:slug", r.blogHandler.Show)

	// Auth routes
	e.GET("/login", r.authHandler.LoginPage)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)

	// CMS routes guarded by the session cookie; failures bounce to /login
	cmsGroup := e.Group("/cms")
	cmsGroup.Use(r.sessionMiddleware.RequireSession)
	{
		cmsGroup.GET("", r.cmsHandler.Dashboard)
		cmsGroup.GET("/posts", r.cmsHandler.Posts)
		cmsGroup.GET("/posts/:id", r.cmsHandler.EditData)
		cmsGroup.POST("/posts", r.cmsHandler.Create)
		cmsGroup.POST("/posts/:id", r.cmsHandler.Update)
		cmsGroup.POST("/files/:id/delete", r.cmsHandler.DeleteFile)
	}

	// JSON API guarded by the same cookie; failures answer 401
	apiGroup := e.Group("/api")
	apiGroup.Use(r.sessionMiddleware.RequireToken)
	{
		apiGroup.DELETE("/posts/:id", r.postHandler.Delete)
		apiGroup.PATCH("/posts/:id", r.postHandler.Patch)
		apiGroup.POST("/upload", r.uploadHandler.Upload)
	}
}
