package user

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes wires user management. The whole surface is admin-only;
// sign-in and profile live in the auth module and stay outside this gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/users", authMW, adminMW)

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/ban", h.ban)
	g.POST("/:id/unban", h.unban)
}

// GET /users
func (h *Handler) list(c *gin.Context) {
	users, total, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"total": total, "users": users})
}

// GET /users/:id
func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, u)
}

// POST /users
func (h *Handler) create(c *gin.Context) {
	var dto UserFormDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Create(&dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, u)
}

// PUT /users/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UserFormDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Update(id, &dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, u)
}

// DELETE /users/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "User deleted"})
}

// POST /users/:id/ban
func (h *Handler) ban(c *gin.Context) {
	h.setActive(c, false)
}

// POST /users/:id/unban
func (h *Handler) unban(c *gin.Context) {
	h.setActive(c, true)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.SetActive(id, active)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, u)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errUserNotFound):
		response.NotFoundMsg(c, "user not found")
	case errors.Is(err, errInvalidRole):
		response.BadRequest(c, "role must be admin or editor")
	case errors.Is(err, errDuplicateEmail):
		response.Conflict(c, "email already in use")
	default:
		response.InternalError(c, err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(v), true
}
