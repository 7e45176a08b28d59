package model

// Doctor is a bookable practitioner in the patient-facing directory.
type Doctor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Specialty   string `json:"specialty,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// BookingSlot is a concrete bookable interval on a date. Distinct from
// AvailabilitySlot: the upstream expands weekly availability into dated slots
// for patients.
type BookingSlot struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

// BookingDetails is what the patient fills in on the final wizard step.
type BookingDetails struct {
	ConsultationType string `json:"consultation_type" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Message          string `json:"message,omitempty"`
}

// BookingRequest is the payload submitted upstream once the wizard completes.
type BookingRequest struct {
	ConsultationType string `json:"consultation_type"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Message          string `json:"message,omitempty"`
	DoctorID         int    `json:"doctor_id"`
	SlotID           *int   `json:"slot_id,omitempty"`
}

// Booking is the upstream's confirmation of a created booking.
type Booking struct {
	ID               int          `json:"id"`
	ConsultationType string       `json:"consultation_type"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	PhoneNumber      string       `json:"phone_number"`
	Message          string       `json:"message,omitempty"`
	Doctor           *Doctor      `json:"doctor,omitempty"`
	Slot             *BookingSlot `json:"slot,omitempty"`
}
