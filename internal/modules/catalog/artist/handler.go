package artist

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/pkg/pagination"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/artists", authMW)

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/batch-delete", h.batchDelete)
}

// GET /artists?search=&genre=&page=&limit=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, total, err := h.svc.List(q, c.Query("search"), c.Query("genre"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"total":   total,
		"page":    q.Page,
		"limit":   q.Limit,
		"artists": items,
	})
}

// POST /artists — multipart: name, genre, bio, optional image
func (h *Handler) create(c *gin.Context) {
	var dto ArtistFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	image, _ := c.FormFile("image")

	a, err := h.svc.Create(&dto, image)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, a)
}

// PUT /artists/:id — multipart, image optional
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto ArtistFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	image, _ := c.FormFile("image")

	a, err := h.svc.Update(id, &dto, image)
	if err != nil {
		if errors.Is(err, errArtistNotFound) {
			response.NotFoundMsg(c, fmt.Sprintf("artist with id %d not found", id))
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, a)
}

// DELETE /artists/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, errArtistNotFound) {
			response.NotFoundMsg(c, "artist not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": fmt.Sprintf("Artist %d deleted", id)})
}

// POST /artists/batch-delete — body {ids: number[]}
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
	response.OK(c, gin.H{"message": fmt.Sprintf("Deleted %d artist(s)", deleted)})
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(v), true
}
