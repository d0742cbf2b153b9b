package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/logs", authMW, h.list)
}

// GET /logs
func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	logs, err := h.svc.Recent(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, logs)
}
