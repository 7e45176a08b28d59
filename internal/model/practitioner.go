package model

import "github.com/google/uuid"

// Day enumerates the upstream day_of_week values for availability slots.
type Day string

const (
	DayMonday    Day = "MONDAY"
	DayTuesday   Day = "TUESDAY"
	DayWednesday Day = "WEDNESDAY"
	DayThursday  Day = "THURSDAY"
	DayFriday    Day = "FRIDAY"
	DaySaturday  Day = "SATURDAY"
	DaySunday    Day = "SUNDAY"
)

// DaysOfWeek lists availability days in display order.
var DaysOfWeek = []Day{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

var dayNames = map[Day]string{
	DayMonday:    "Monday",
	DayTuesday:   "Tuesday",
	DayWednesday: "Wednesday",
	DayThursday:  "Thursday",
	DayFriday:    "Friday",
	DaySaturday:  "Saturday",
	DaySunday:    "Sunday",
}

// Name returns the human-readable day label, or "" for an unknown day.
func (d Day) Name() string {
	return dayNames[d]
}

// Valid reports whether d is one of the seven known days.
func (d Day) Valid() bool {
	_, ok := dayNames[d]
	return ok
}

// Practitioner is the upstream practitioner record.
type Practitioner struct {
	PractitionerUUID            string          `json:"practitioner_uuid,omitempty"`
	DisplayName                 string          `json:"display_name,omitempty"`
	Profession                  string          `json:"profession,omitempty"`
	Qualifications              string          `json:"qualifications,omitempty"`
	Education                   string          `json:"education,omitempty"`
	LanguagesSpoken             string          `json:"languages_spoken,omitempty"`
	Gender                      string          `json:"gender,omitempty"`
	LinkToBestPractice          string          `json:"link_to_best_practice,omitempty"`
	ProfessionalStatement       string          `json:"professional_statement,omitempty"`
	ProfessionalAreasOfInterest map[string]bool `json:"professional_areas_of_interest,omitempty"`
	IsActive                    bool            `json:"is_active"`
}

// PractitionerBasicInfo is the console-side shape of the basic-info section.
type PractitionerBasicInfo struct {
	DisplayName     string `json:"display_name,omitempty"`
	Profession      string `json:"profession,omitempty"`
	Qualifications  string `json:"qualifications,omitempty"`
	Education       string `json:"education,omitempty"`
	LanguagesSpoken string `json:"languages_spoken,omitempty"`
	Gender          string `json:"gender,omitempty"`
}

// PractitionerProfessionalInfo is the console-side shape of the
// professional-info section. Only true entries in the areas-of-interest map
// are meaningful.
type PractitionerProfessionalInfo struct {
	LinkToBestPractice    string          `json:"link_to_best_practice,omitempty"`
	ProfessionalStatement string          `json:"professional_statement,omitempty"`
	AreasOfInterest       map[string]bool `json:"professional_areas_of_interest,omitempty"`
}

// AvailabilitySlot is one weekly recurring availability interval. LocalID is
// assigned by the console at creation time and is stable across edits;
// AvailabilityUUID is set only once the slot has been persisted upstream.
type AvailabilitySlot struct {
	LocalID          uuid.UUID `json:"local_id"`
	AvailabilityUUID string    `json:"availability_uuid,omitempty"`
	DayOfWeek        Day       `json:"day_of_week"`
	DayName          string    `json:"day_name,omitempty"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	IsActive         bool      `json:"is_active"`
}
