// Package member exposes practice staff management.
package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/handler"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/model"
	memberService "github.com/practiceos/console/internal/service/member"
)

type Handler struct {
	service memberService.Servicer
}

func NewHandler(service memberService.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.List)
		members.POST("", h.Add)
		members.PUT("/:email", h.Edit)
	}
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	members, err := h.service.List(c.Request.Context(), sess.UserToken)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(members))
}

func (h *Handler) Add(c *gin.Context) {
	var req model.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if req.Role == "" {
		req.Role = model.RoleStaff
	}

	sess := middleware.SessionFrom(c)
	if err := h.service.Add(c.Request.Context(), sess.UserToken, &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(nil))
}

func (h *Handler) Edit(c *gin.Context) {
	var req model.EditMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess := middleware.SessionFrom(c)
	if err := h.service.Edit(c.Request.Context(), sess.UserToken, c.Param("email"), &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
