// Package directory exposes the public practice listing for patients.
package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/handler"
	directoryService "github.com/practiceos/console/internal/service/directory"
)

type Handler struct {
	service directoryService.Servicer
}

func NewHandler(service directoryService.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	practices := r.Group("/practices")
	{
		practices.GET("", h.List)
		practices.GET("/:uuid", h.Get)
		practices.POST("/refresh", h.Refresh)
	}
}

func (h *Handler) List(c *gin.Context) {
	practices, err := h.service.ListPractices(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(practices))
}

func (h *Handler) Refresh(c *gin.Context) {
	practices, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(practices))
}

func (h *Handler) Get(c *gin.Context) {
	record, err := h.service.GetPractice(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}
