// Controller layer translates HTTP <-> service calls.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"userapi/core"
	"userapi/global"
	"userapi/models"
	"userapi/services"

	"github.com/gin-gonic/gin"
)

// UserHandler bundles dependencies needed by user endpoints.
type UserHandler struct {
	svc        services.UserService
	jwtSecret  string
	jwtExpires time.Duration
}

// NewUserHandler constructs a handler for users with its dependencies.
func NewUserHandler(svc services.UserService, jwtSecret string, jwtExp time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp}
}

// httpError maps domain errors to statuses: 404 not found, 409
// conflicts, 401 bad credentials, 500 for anything else.
func httpError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrUsernameTaken), errors.Is(err, core.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, core.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// Version handles GET /version (public).
func (h *UserHandler) Version(c *gin.Context) {
	c.String(http.StatusOK, global.AppVersion)
}

// Register handles POST /register (public).
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Public(*u))
}

// Login handles POST /login (public).
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(req, h.jwtSecret, h.jwtExpires)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: tok})
}

// ListUsers handles GET /user?sort_by=&descending=&page= (protected).
func (h *UserHandler) ListUsers(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}
	// Malformed query values fall back to defaults; listing always
	// succeeds once authenticated.
	var q models.ListUsersQuery
	_ = c.ShouldBindQuery(&q)

	paged, err := h.svc.ListUsers(c.Request.URL.Path, q)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged)
}

// GetUser handles GET /user/:id (protected).
func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}
	id, err := parseUint(c.Param("id"))
	if err != nil {
		// A non-numeric id cannot resolve to a record.
		httpError(c, core.ErrNotFound)
		return
	}
	u, err := h.svc.GetUser(id)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Public(*u))
}

// CreateUser handles POST /user (protected).
func (h *UserHandler) CreateUser(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.CreateUser(req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Public(*u))
}

// UpdateUser handles PUT and PATCH /user/:id (protected). Only fields
// present in the body change.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}
	id, err := parseUint(c.Param("id"))
	if err != nil {
		httpError(c, core.ErrNotFound)
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.UpdateUser(id, req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Public(*u))
}

// DeleteUser handles DELETE /user/:id (protected). Responds with the
// record that was just removed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}
	id, err := parseUint(c.Param("id"))
	if err != nil {
		httpError(c, core.ErrNotFound)
		return
	}
	u, err := h.svc.DeleteUser(id)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Public(*u))
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
