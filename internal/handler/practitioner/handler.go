// Package practitioner exposes the practitioner list and the per-practitioner
// setup screens, including the weekly availability editor.
package practitioner

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/handler"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/model"
	practitionerService "github.com/practiceos/console/internal/service/practitioner"
	"github.com/practiceos/console/internal/session"
	"github.com/practiceos/console/internal/setup"
	"github.com/practiceos/console/internal/store"
	apperrors "github.com/practiceos/console/pkg/errors"
)

type Handler struct {
	service practitionerService.Servicer
	api     apiclient.PractitionerAPI
	cache   store.Store
	ttl     time.Duration
}

func NewHandler(service practitionerService.Servicer, api apiclient.PractitionerAPI, cache store.Store, ttl time.Duration) *Handler {
	return &Handler{service: service, api: api, cache: cache, ttl: ttl}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	practitioners := r.Group("/practitioners")
	{
		practitioners.GET("", h.List)
	}
	setupGroup := r.Group("/practitioner/setup")
	{
		setupGroup.POST("", h.Start)
		setupGroup.GET("", h.State)
		setupGroup.POST("/edits", h.Edit)
		setupGroup.POST("/availability", h.AddSlot)
		setupGroup.DELETE("/availability/:slotID", h.RemoveSlot)
		setupGroup.POST("/availability/:slotID/toggle", h.ToggleSlot)
		setupGroup.POST("/save", h.Save)
		setupGroup.POST("/cancel", h.Cancel)
	}
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	practitioners, err := h.service.List(c.Request.Context(), sess.UserToken)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(practitioners))
}

type startRequest struct {
	PractitionerUUID string `json:"practitioner_uuid"`
}

type editRequest struct {
	Op    string `json:"op" binding:"required,oneof=set_display_name set_profession set_qualifications set_education set_languages_spoken set_gender set_link_to_best_practice set_professional_statement set_area_of_interest"`
	Value string `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
	On    *bool  `json:"on,omitempty"`
}

type addSlotRequest struct {
	Day   model.Day `json:"day_of_week"`
	Start string    `json:"start_time" binding:"required"`
	End   string    `json:"end_time" binding:"required"`
}

type stateResponse struct {
	Mode             string                             `json:"mode"`
	PractitionerUUID string                             `json:"practitioner_uuid,omitempty"`
	BasicInfo        model.PractitionerBasicInfo        `json:"basic_info"`
	ProfessionalInfo model.PractitionerProfessionalInfo `json:"professional_info"`
	Availability     []model.AvailabilitySlot           `json:"availability"`
	Dirty            bool                               `json:"dirty"`
	SaveError        string                             `json:"save_error,omitempty"`
}

// Start creates the setup orchestrator for this session. An empty
// practitioner_uuid starts a create flow.
func (h *Handler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := setup.NewPractitionerSetup(h.api, h.cache, h.ttl, req.PractitionerUUID)
	if req.PractitionerUUID != "" {
		if err := ps.Load(c.Request.Context(), sess.UserToken); err != nil {
			handler.Error(c, err)
			return
		}
	}
	sess.SetPractitionerSetup(req.PractitionerUUID, ps)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(stateOf(ps)))
}

func (h *Handler) State(c *gin.Context) {
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		return http.StatusOK, stateOf(ps), nil
	})
}

func (h *Handler) Edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		if err := applyEdit(ps, &req); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, stateOf(ps), nil
	})
}

// AddSlot adds an availability slot to the draft. Overlapping or inverted
// ranges are rejected before anything reaches the upstream.
func (h *Handler) AddSlot(c *gin.Context) {
	var req addSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		slot, err := ps.Availability().AddSlot(req.Day, req.Start, req.End)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, slot, nil
	})
}

func (h *Handler) RemoveSlot(c *gin.Context) {
	localID, err := uuid.Parse(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid slot id"))
		return
	}
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		if !ps.Availability().RemoveSlot(localID) {
			return 0, nil, apperrors.NewNotFound("slot", nil)
		}
		return http.StatusOK, ps.Availability().Slots(), nil
	})
}

func (h *Handler) ToggleSlot(c *gin.Context) {
	localID, err := uuid.Parse(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid slot id"))
		return
	}
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		if !ps.Availability().ToggleActive(localID) {
			return 0, nil, apperrors.NewNotFound("slot", nil)
		}
		return http.StatusOK, ps.Availability().Slots(), nil
	})
}

func (h *Handler) Save(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := h.currentSetup(c, sess)
	if ps == nil {
		return
	}
	before := ps.PractitionerUUID()
	if err := ps.Save(c.Request.Context(), sess.UserToken); err != nil {
		handler.Error(c, err)
		return
	}
	// A create flow gains its uuid on save; rekey so the session finds it.
	if before == "" && ps.PractitionerUUID() != "" {
		sess.SetPractitionerSetup(ps.PractitionerUUID(), ps)
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stateOf(ps)))
}

func (h *Handler) Cancel(c *gin.Context) {
	h.withSetup(c, func(ps *setup.PractitionerSetup) (int, interface{}, error) {
		ps.Cancel()
		return http.StatusOK, stateOf(ps), nil
	})
}

// withSetup runs fn against the session's orchestrator for the uuid in the
// practitioner_uuid query parameter, holding the session lock.
func (h *Handler) withSetup(c *gin.Context, fn func(*setup.PractitionerSetup) (int, interface{}, error)) {
	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := h.currentSetup(c, sess)
	if ps == nil {
		return
	}
	status, data, err := fn(ps)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(status, handler.NewSuccessResponse(data))
}

func (h *Handler) currentSetup(c *gin.Context, sess *session.Session) *setup.PractitionerSetup {
	ps := sess.PractitionerSetup(c.Query("practitioner_uuid"))
	if ps == nil {
		handler.Error(c, apperrors.NewValidation("practitioner setup not started"))
	}
	return ps
}

func applyEdit(ps *setup.PractitionerSetup, req *editRequest) error {
	switch req.Op {
	case "set_display_name":
		ps.SetDisplayName(req.Value)
	case "set_profession":
		ps.SetProfession(req.Value)
	case "set_qualifications":
		ps.SetQualifications(req.Value)
	case "set_education":
		ps.SetEducation(req.Value)
	case "set_languages_spoken":
		ps.SetLanguagesSpoken(req.Value)
	case "set_gender":
		ps.SetGender(req.Value)
	case "set_link_to_best_practice":
		ps.SetLinkToBestPractice(req.Value)
	case "set_professional_statement":
		ps.SetProfessionalStatement(req.Value)
	case "set_area_of_interest":
		if req.Name == "" || req.On == nil {
			return apperrors.NewValidation("name and on are required")
		}
		ps.SetAreaOfInterest(req.Name, *req.On)
	}
	return nil
}

func stateOf(ps *setup.PractitionerSetup) stateResponse {
	mode := "edit"
	if ps.Mode() == setup.ModeCreate {
		mode = "create"
	}
	resp := stateResponse{
		Mode:             mode,
		PractitionerUUID: ps.PractitionerUUID(),
		BasicInfo:        ps.BasicInfo(),
		ProfessionalInfo: ps.ProfessionalInfo(),
		Availability:     ps.Availability().Slots(),
		Dirty:            ps.Dirty(),
	}
	if err := ps.SaveError(); err != nil {
		resp.SaveError = err.Error()
	}
	return resp
}
