package model

// AppointmentType mirrors the upstream appointment-type record.
type AppointmentType struct {
	ID                         int    `json:"id,omitempty"`
	AppointmentUUID            string `json:"appointment_uuid,omitempty"`
	IsAppointmentEnabled       bool   `json:"is_appointment_enabled"`
	TypeOfConsultation         string `json:"type_of_consultation"`
	AppointmentPatientType     string `json:"appointment_patient_type"`
	AppointmentPatientDuration string `json:"appointment_patient_duration"`
	AppointmentDescription     string `json:"appointment_description,omitempty"`
}

// CreateAppointmentTypeRequest creates a new appointment type. Duration is
// carried as a string of minutes to match the upstream schema; the console
// validates it parses as a positive integer before submission.
type CreateAppointmentTypeRequest struct {
	TypeOfConsultation         string `json:"type_of_consultation" binding:"required"`
	AppointmentPatientType     string `json:"appointment_patient_type" binding:"required"`
	AppointmentPatientDuration string `json:"appointment_patient_duration" binding:"required"`
	AppointmentDescription     string `json:"appointment_description,omitempty"`
	IsEnabled                  bool   `json:"is_enabled,omitempty"`
}
