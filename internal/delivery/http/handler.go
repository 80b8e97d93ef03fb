package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"
)

type Handler struct {
	auth  interfaces.AuthService
	posts interfaces.PostService
}

func NewHandler(auth interfaces.AuthService, posts interfaces.PostService) *Handler {
	return &Handler{
		auth:  auth,
		posts: posts,
	}
}

func (h *Handler) Signup(c echo.Context) error {
	var cmd command.SignupUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if cmd.Email == "" || cmd.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	result, err := h.auth.Signup(c.Request().Context(), &cmd)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cmd.ClientIP = c.RealIP()

	result, err := h.auth.Login(c.Request().Context(), &cmd)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (h *Handler) AddPost(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.posts.CreatePost(c.Request().Context(), currentUser(c).ID, &cmd)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) GetPosts(c echo.Context) error {
	result, err := h.posts.ListPosts(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeletePost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrPostNotFound.Error())
	}

	if err := h.posts.DeletePost(c.Request().Context(), currentUser(c).ID, uint(postID)); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"msg": "Post deleted successfully"})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// mapError translates the domain error taxonomy into HTTP statuses. Any
// error outside the taxonomy is a plain 500 with no detail leaked.
func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTooManyAttempts):
		return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
