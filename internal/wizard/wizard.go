// Package wizard implements the patient booking flow as a small state
// machine: pick a doctor, pick a slot, enter details, confirm.
package wizard

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
	"github.com/practiceos/console/pkg/metrics"
)

// Step is one stage of the booking flow.
type Step int

const (
	StepSelectDoctor Step = iota + 1
	StepSelectSlot
	StepEnterDetails
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepSelectDoctor:
		return "select_doctor"
	case StepSelectSlot:
		return "select_slot"
	case StepEnterDetails:
		return "enter_details"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Wizard drives one patient's booking session. Slots are fetched fresh per
// doctor selection and never reused across doctors, so a switch always shows
// the upstream's current view.
type Wizard struct {
	api      apiclient.BookingAPI
	metrics  *metrics.Metrics
	validate *validator.Validate

	step    Step
	doctors []*model.Doctor

	selectedDoctor *model.Doctor
	slots          []*model.BookingSlot
	selectedSlot   *model.BookingSlot
	details        model.BookingDetails
	confirmation   *model.Booking
}

// New creates a wizard at the doctor selection step.
func New(api apiclient.BookingAPI, m *metrics.Metrics) *Wizard {
	return &Wizard{
		api:      api,
		metrics:  m,
		validate: validator.New(),
		step:     StepSelectDoctor,
	}
}

// Step reports the current stage.
func (w *Wizard) Step() Step {
	return w.step
}

// LoadDoctors fetches the bookable doctors. Allowed at any step so the list
// can be refreshed without resetting progress.
func (w *Wizard) LoadDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := w.api.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctors: %w", err)
	}
	w.doctors = doctors
	return doctors, nil
}

// Doctors returns the last loaded doctor list.
func (w *Wizard) Doctors() []*model.Doctor {
	return w.doctors
}

// SelectDoctor picks a doctor and fetches that doctor's open slots, then
// advances to slot selection. Selecting a different doctor mid-flow discards
// the previous doctor's slots and any chosen slot.
func (w *Wizard) SelectDoctor(ctx context.Context, doctorID int) ([]*model.BookingSlot, error) {
	if w.step == StepConfirmed {
		return nil, errors.NewValidation("booking already confirmed, reset to start again")
	}
	doctor := w.findDoctor(doctorID)
	if doctor == nil {
		return nil, errors.NewValidation("unknown doctor")
	}

	slots, err := w.api.ListDoctorAvailability(ctx, doctorID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability for doctor %d: %w", doctorID, err)
	}

	w.transition(StepSelectSlot)
	w.selectedDoctor = doctor
	w.slots = slots
	w.selectedSlot = nil
	return slots, nil
}

// Slots returns the slots fetched for the currently selected doctor.
func (w *Wizard) Slots() []*model.BookingSlot {
	return w.slots
}

// SelectSlot picks one of the current doctor's slots and advances to the
// details step. An already booked slot is rejected here, though the upstream
// remains the authority at submit time.
func (w *Wizard) SelectSlot(slotID int) error {
	if w.step != StepSelectSlot {
		return errors.NewValidation("no doctor selected")
	}
	for _, slot := range w.slots {
		if slot.ID != slotID {
			continue
		}
		if slot.IsBooked {
			return errors.NewValidation("slot is already booked")
		}
		w.selectedSlot = slot
		w.transition(StepEnterDetails)
		return nil
	}
	return errors.NewValidation("unknown slot")
}

// SetDetails stores the patient's contact details for the final submit.
func (w *Wizard) SetDetails(details model.BookingDetails) error {
	if w.step != StepEnterDetails {
		return errors.NewValidation("select a doctor and slot first")
	}
	w.details = details
	return nil
}

// Submit validates the details and posts the booking. There is no slot hold:
// two patients can race on the same slot and the upstream decides who wins.
// Only a successful create moves the wizard to the confirmed step.
func (w *Wizard) Submit(ctx context.Context) (*model.Booking, error) {
	if w.step != StepEnterDetails {
		return nil, errors.NewValidation("booking details not ready")
	}
	if err := w.validate.Struct(w.details); err != nil {
		return nil, errors.NewValidation(fmt.Sprintf("invalid booking details: %v", err))
	}

	req := &model.BookingRequest{
		ConsultationType: w.details.ConsultationType,
		Name:             w.details.Name,
		Email:            w.details.Email,
		PhoneNumber:      w.details.PhoneNumber,
		Message:          w.details.Message,
		DoctorID:         w.selectedDoctor.ID,
	}
	if w.selectedSlot != nil {
		slotID := w.selectedSlot.ID
		req.SlotID = &slotID
	}

	booking, err := w.api.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	w.confirmation = booking
	w.transition(StepConfirmed)
	return booking, nil
}

// Confirmation returns the created booking once confirmed.
func (w *Wizard) Confirmation() *model.Booking {
	return w.confirmation
}

// Back steps from slot selection or details entry to the previous stage.
// Going back past slot selection clears the doctor's slots so a re-entry
// refetches them.
func (w *Wizard) Back() error {
	switch w.step {
	case StepSelectSlot:
		w.transition(StepSelectDoctor)
		w.selectedDoctor = nil
		w.slots = nil
		w.selectedSlot = nil
		return nil
	case StepEnterDetails:
		w.transition(StepSelectSlot)
		w.selectedSlot = nil
		return nil
	default:
		return errors.NewValidation("cannot go back from this step")
	}
}

// Reset returns the wizard to the start, dropping everything but the loaded
// doctor list.
func (w *Wizard) Reset() {
	w.transition(StepSelectDoctor)
	w.selectedDoctor = nil
	w.slots = nil
	w.selectedSlot = nil
	w.details = model.BookingDetails{}
	w.confirmation = nil
}

func (w *Wizard) findDoctor(doctorID int) *model.Doctor {
	for _, doctor := range w.doctors {
		if doctor.ID == doctorID {
			return doctor
		}
	}
	return nil
}

func (w *Wizard) transition(to Step) {
	if w.metrics != nil {
		w.metrics.WizardTransitions.WithLabelValues(w.step.String(), to.String()).Inc()
	}
	w.step = to
}
