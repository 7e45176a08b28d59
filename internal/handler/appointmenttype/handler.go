// Package appointmenttype exposes consultation type configuration.
package appointmenttype

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/handler"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/model"
	appointmentTypeService "github.com/practiceos/console/internal/service/appointmenttype"
)

type Handler struct {
	service appointmentTypeService.Servicer
}

func NewHandler(service appointmentTypeService.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	types := r.Group("/appointment-types")
	{
		types.GET("", h.List)
		types.POST("", h.Create)
	}
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	types, err := h.service.List(c.Request.Context(), sess.UserToken)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(types))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess := middleware.SessionFrom(c)
	if err := h.service.Create(c.Request.Context(), sess.UserToken, &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(nil))
}
