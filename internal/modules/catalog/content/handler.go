package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/pkg/pagination"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/contents", authMW)

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/batch-delete", h.batchDelete)
}

// GET /contents?search=&type=&page=&limit=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	rows, total, err := h.svc.List(q, c.Query("search"), c.Query("type"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"total":    total,
		"page":     q.Page,
		"limit":    q.Limit,
		"contents": rows,
	})
}

// GET /contents/:id
func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, errContentNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, row)
}

// POST /contents — multipart: title, type, artist_id, file
func (h *Handler) create(c *gin.Context) {
	var dto ContentFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	item, err := h.svc.Create(&dto, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, item)
}

// PUT /contents/:id — multipart, file optional
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto ContentFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	file, _ := c.FormFile("file")

	item, err := h.svc.Update(id, &dto, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, item)
}

// DELETE /contents/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": fmt.Sprintf("Content %d deleted", id)})
}

// POST /contents/batch-delete — body {ids: number[]}
func (h *Handler) batchDelete(c *gin.Context) {
	var dto BatchDeleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(dto.IDs) == 0 {
		response.BadRequest(c, "ids must be a non-empty array")
		return
	}

	deleted, err := h.svc.BatchDelete(dto.IDs)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": fmt.Sprintf("Deleted %d content(s)", deleted)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errContentNotFound):
		response.NotFound(c)
	case errors.Is(err, errInvalidType):
		response.BadRequest(c, "type must be one of: "+strings.Join(models.ContentTypes, ", "))
	case errors.Is(err, errArtistMissing):
		response.BadRequest(c, "artist_id does not reference an existing artist")
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
