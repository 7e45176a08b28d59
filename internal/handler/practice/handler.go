// Package practice exposes the practice setup screens: the profile and
// timings draft lives server-side in the session and is edited through named
// operations.
package practice

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/handler"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/setup"
	"github.com/practiceos/console/internal/store"
	apperrors "github.com/practiceos/console/pkg/errors"
)

type Handler struct {
	api   apiclient.PracticeAPI
	cache store.Store
	ttl   time.Duration
}

func NewHandler(api apiclient.PracticeAPI, cache store.Store, ttl time.Duration) *Handler {
	return &Handler{api: api, cache: cache, ttl: ttl}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	practice := r.Group("/practice/setup")
	{
		practice.POST("", h.Start)
		practice.GET("", h.State)
		practice.POST("/edits", h.Edit)
		practice.POST("/save", h.Save)
		practice.POST("/cancel", h.Cancel)
	}
}

type startRequest struct {
	Mode string `json:"mode" binding:"required,oneof=create edit"`
}

type editRequest struct {
	Op      string        `json:"op" binding:"required,oneof=set_practice_name set_phone_number set_website set_accreditation set_facebook_url set_twitter_url set_about_practice set_wheelchair_access add_facility remove_facility toggle_day add_time_slot remove_time_slot update_time_slot add_exception remove_exception update_exception set_alert_message"`
	Value   string        `json:"value,omitempty"`
	Enabled *bool         `json:"enabled,omitempty"`
	Day     model.Weekday `json:"day,omitempty"`
	Index   *int          `json:"index,omitempty"`
	Start   string        `json:"start,omitempty"`
	End     string        `json:"end,omitempty"`
	Date    string        `json:"date,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

type stateResponse struct {
	Mode        string                 `json:"mode"`
	Profile     model.PracticeProfile  `json:"profile"`
	Timings     model.PracticeTimings  `json:"timings"`
	Dirty       bool                   `json:"dirty"`
	DirtyFields []string               `json:"dirty_fields,omitempty"`
	SaveError   string                 `json:"save_error,omitempty"`
}

// Start creates the orchestrator for this session, replacing any previous
// one. Edit mode loads the canonical record before the first edit.
func (h *Handler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	mode := setup.ModeEdit
	if req.Mode == "create" {
		mode = setup.ModeCreate
	}
	ps := setup.NewPracticeSetup(h.api, h.cache, h.ttl, mode)
	if mode == setup.ModeEdit {
		if err := ps.Load(c.Request.Context(), sess.UserToken); err != nil {
			handler.Error(c, err)
			return
		}
	}
	sess.PracticeSetup = ps
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(stateOf(ps)))
}

// State returns the current draft.
func (h *Handler) State(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := sess.PracticeSetup
	if ps == nil {
		handler.Error(c, apperrors.NewValidation("practice setup not started"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stateOf(ps)))
}

// Edit applies one named operation to the draft.
func (h *Handler) Edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := sess.PracticeSetup
	if ps == nil {
		handler.Error(c, apperrors.NewValidation("practice setup not started"))
		return
	}
	if err := applyEdit(ps, &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stateOf(ps)))
}

// Save persists the draft upstream and re-seeds from the refetched record.
func (h *Handler) Save(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := sess.PracticeSetup
	if ps == nil {
		handler.Error(c, apperrors.NewValidation("practice setup not started"))
		return
	}
	if err := ps.Save(c.Request.Context(), sess.UserToken); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stateOf(ps)))
}

// Cancel discards the draft, restoring the canonical record.
func (h *Handler) Cancel(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	sess.Lock()
	defer sess.Unlock()

	ps := sess.PracticeSetup
	if ps == nil {
		handler.Error(c, apperrors.NewValidation("practice setup not started"))
		return
	}
	ps.Cancel()
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stateOf(ps)))
}

func applyEdit(ps *setup.PracticeSetup, req *editRequest) error {
	switch req.Op {
	case "set_practice_name":
		ps.SetPracticeName(req.Value)
	case "set_phone_number":
		ps.SetPhoneNumber(req.Value)
	case "set_website":
		ps.SetWebsite(req.Value)
	case "set_accreditation":
		ps.SetAccreditation(req.Value)
	case "set_facebook_url":
		ps.SetFacebookURL(req.Value)
	case "set_twitter_url":
		ps.SetTwitterURL(req.Value)
	case "set_about_practice":
		ps.SetAboutPractice(req.Value)
	case "set_wheelchair_access":
		if req.Enabled == nil {
			return apperrors.NewValidation("enabled is required")
		}
		ps.SetWheelchairAccess(*req.Enabled)
	case "add_facility":
		if req.Value == "" {
			return apperrors.NewValidation("facility name is required")
		}
		ps.AddFacility(req.Value)
	case "remove_facility":
		if req.Index == nil {
			return apperrors.NewValidation("index is required")
		}
		ps.RemoveFacility(*req.Index)
	case "toggle_day":
		if !req.Day.Valid() {
			return apperrors.NewValidation("invalid day")
		}
		ps.ToggleDay(req.Day)
	case "add_time_slot":
		if !req.Day.Valid() {
			return apperrors.NewValidation("invalid day")
		}
		ps.AddTimeSlot(req.Day)
	case "remove_time_slot":
		if !req.Day.Valid() || req.Index == nil {
			return apperrors.NewValidation("day and index are required")
		}
		ps.RemoveTimeSlot(req.Day, *req.Index)
	case "update_time_slot":
		if !req.Day.Valid() || req.Index == nil {
			return apperrors.NewValidation("day and index are required")
		}
		ps.UpdateTimeSlot(req.Day, *req.Index, req.Start, req.End)
	case "add_exception":
		ps.AddException()
	case "remove_exception":
		if req.Index == nil {
			return apperrors.NewValidation("index is required")
		}
		ps.RemoveException(*req.Index)
	case "update_exception":
		if req.Index == nil {
			return apperrors.NewValidation("index is required")
		}
		ps.UpdateException(*req.Index, req.Date, req.Reason)
	case "set_alert_message":
		ps.SetAlertMessage(req.Value)
	}
	return nil
}

func stateOf(ps *setup.PracticeSetup) stateResponse {
	mode := "edit"
	if ps.Mode() == setup.ModeCreate {
		mode = "create"
	}
	resp := stateResponse{
		Mode:        mode,
		Profile:     ps.Profile(),
		Timings:     ps.Timings(),
		Dirty:       ps.Dirty(),
		DirtyFields: ps.DirtyFields(),
	}
	if err := ps.SaveError(); err != nil {
		resp.SaveError = err.Error()
	}
	return resp
}
