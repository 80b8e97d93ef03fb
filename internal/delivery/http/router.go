package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"blog-service/internal/application/interfaces"
)

// NewRouter builds the echo instance with all routes registered.
// requestsPerSecond caps the whole process; zero disables the throttle.
func NewRouter(h *Handler, auth interfaces.AuthService, requestsPerSecond float64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if requestsPerSecond > 0 {
		e.Use(middleware.RateLimiter(
			middleware.NewRateLimiterMemoryStore(rate.Limit(requestsPerSecond)),
		))
	}

	e.GET("/healthz", h.Health)

	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.Signup)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.Me, RequireAuth(auth))

	postsGroup := e.Group("/posts", RequireAuth(auth))
	postsGroup.POST("/addpost", h.AddPost)
	postsGroup.GET("/getposts", h.GetPosts)
	postsGroup.DELETE("/deletepost/:id", h.DeletePost)

	return e
}
