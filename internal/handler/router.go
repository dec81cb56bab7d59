package handler

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"linkmark/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Bookmarks     *BookmarkHandler
	JWTSecret     []byte
	AuthRateLimit time.Duration
	CORSOrigins   []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	RegisterRoutes(router.Group(""), deps)
	return router
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	authGroup := api.Group("/auth")
	if deps.AuthRateLimit > 0 {
		authGroup.Use(middleware.RateLimit(deps.AuthRateLimit))
	}
	authGroup.POST("/signup", deps.Auth.Signup)
	authGroup.POST("/signin", deps.Auth.Signin)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(deps.JWTSecret))
	protected.GET("/users/me", deps.Users.Me)
	protected.PATCH("/users", deps.Users.Edit)

	protected.GET("/bookmarks", deps.Bookmarks.List)
	protected.POST("/bookmarks", deps.Bookmarks.Create)
	protected.GET("/bookmarks/:id", deps.Bookmarks.Get)
	protected.PATCH("/bookmarks/:id", deps.Bookmarks.Edit)
	protected.DELETE("/bookmarks/:id", deps.Bookmarks.Delete)
}
