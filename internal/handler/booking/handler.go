// Package booking exposes the patient booking wizard. The wizard lives in the
// session, so each step is a small state transition rather than a stateless
// call.
package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/handler"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/session"
	"github.com/practiceos/console/internal/wizard"
	apperrors "github.com/practiceos/console/pkg/errors"
	"github.com/practiceos/console/pkg/metrics"
)

type Handler struct {
	api     apiclient.BookingAPI
	metrics *metrics.Metrics
}

func NewHandler(api apiclient.BookingAPI, m *metrics.Metrics) *Handler {
	return &Handler{api: api, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	booking := r.Group("/booking")
	{
		booking.GET("/doctors", h.Doctors)
		booking.GET("/state", h.State)
		booking.POST("/select-doctor", h.SelectDoctor)
		booking.POST("/select-slot", h.SelectSlot)
		booking.POST("/details", h.Details)
		booking.POST("/submit", h.Submit)
		booking.POST("/back", h.Back)
		booking.POST("/reset", h.Reset)
	}
}

type selectDoctorRequest struct {
	DoctorID int `json:"doctor_id" binding:"required"`
}

type selectSlotRequest struct {
	SlotID int `json:"slot_id" binding:"required"`
}

type stateResponse struct {
	Step         string               `json:"step"`
	Doctors      []*model.Doctor      `json:"doctors,omitempty"`
	Slots        []*model.BookingSlot `json:"slots,omitempty"`
	Confirmation *model.Booking       `json:"confirmation,omitempty"`
}

// Doctors loads the bookable doctors into the wizard and returns them.
func (h *Handler) Doctors(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		doctors, err := w.LoadDoctors(c.Request.Context())
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, doctors, nil
	})
}

func (h *Handler) State(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		return http.StatusOK, stateOf(w), nil
	})
}

// SelectDoctor picks a doctor and returns that doctor's freshly fetched
// slots.
func (h *Handler) SelectDoctor(c *gin.Context) {
	var req selectDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		slots, err := w.SelectDoctor(c.Request.Context(), req.DoctorID)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, slots, nil
	})
}

func (h *Handler) SelectSlot(c *gin.Context) {
	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		if err := w.SelectSlot(req.SlotID); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, stateOf(w), nil
	})
}

func (h *Handler) Details(c *gin.Context) {
	var details model.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		if err := w.SetDetails(details); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, stateOf(w), nil
	})
}

// Submit posts the booking. The selected slot is not held, so the upstream
// may still reject it if another patient got there first.
func (h *Handler) Submit(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		booking, err := w.Submit(c.Request.Context())
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, booking, nil
	})
}

func (h *Handler) Back(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		if err := w.Back(); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, stateOf(w), nil
	})
}

func (h *Handler) Reset(c *gin.Context) {
	h.withWizard(c, func(w *wizard.Wizard) (int, interface{}, error) {
		w.Reset()
		return http.StatusOK, stateOf(w), nil
	})
}

// withWizard runs fn against the session's wizard, creating it on first use,
// holding the session lock.
func (h *Handler) withWizard(c *gin.Context, fn func(*wizard.Wizard) (int, interface{}, error)) {
	sess := middleware.SessionFrom(c)
	if sess.Kind != session.KindPatient {
		handler.Error(c, apperrors.NewValidation("booking requires a patient session"))
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if sess.Wizard == nil {
		sess.Wizard = wizard.New(h.api, h.metrics)
	}
	status, data, err := fn(sess.Wizard)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(status, handler.NewSuccessResponse(data))
}

func stateOf(w *wizard.Wizard) stateResponse {
	return stateResponse{
		Step:         w.Step().String(),
		Doctors:      w.Doctors(),
		Slots:        w.Slots(),
		Confirmation: w.Confirmation(),
	}
}
