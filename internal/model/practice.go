package model

// Weekday keys match the upstream opening_hours JSON document.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the week in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether w names a weekday.
func (w Weekday) Valid() bool {
	for _, day := range Weekdays {
		if w == day {
			return true
		}
	}
	return false
}

// TimeSlot is a single opening interval, times as "HH:MM".
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DaySchedule holds one weekday's opening state. A disabled day must carry an
// empty slot list.
type DaySchedule struct {
	Enabled bool       `json:"enabled"`
	Slots   []TimeSlot `json:"slots"`
}

// OpeningHours maps weekday to its schedule.
type OpeningHours map[Weekday]DaySchedule

// Exception is a one-off closure shown to patients.
type Exception struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// PracticeProfile is the console-side shape of the practice profile section.
type PracticeProfile struct {
	PracticeName     string   `json:"practice_name,omitempty"`
	PhoneNumber      string   `json:"phone_number,omitempty"`
	Website          string   `json:"website,omitempty"`
	Accreditation    string   `json:"accreditation,omitempty"`
	FacebookURL      string   `json:"facebook_url,omitempty"`
	TwitterURL       string   `json:"twitter_url,omitempty"`
	Facilities       []string `json:"facilities,omitempty"`
	AboutPractice    string   `json:"about_practice,omitempty"`
	WheelchairAccess bool     `json:"wheelchair_access"`
}

// PracticeTimings is the console-side shape of the timings section.
type PracticeTimings struct {
	OpeningHours OpeningHours `json:"opening_hours,omitempty"`
	Exceptions   []Exception  `json:"exceptions,omitempty"`
	AlertMessage string       `json:"alert_message,omitempty"`
}

// PracticeRecord is the practice as the upstream stores it. Field names follow
// the upstream schema, including its misspelling of accreditation.
type PracticeRecord struct {
	PracticeUUID         string            `json:"practice_uuid,omitempty"`
	PracticeName         string            `json:"practice_name,omitempty"`
	PhoneNumber          string            `json:"phone_number,omitempty"`
	PracticeWebsite      string            `json:"practice_website,omitempty"`
	PracticeAccrediation string            `json:"practice_accrediation,omitempty"`
	SocialMediaLinks     map[string]string `json:"social_media_links,omitempty"`
	AboutPractice        string            `json:"about_practice,omitempty"`
	Facilities           []string          `json:"facilities,omitempty"`
	WheelChairAccess     *bool             `json:"wheel_chair_access,omitempty"`
	OpeningHours         OpeningHours      `json:"opening_hours,omitempty"`
	Exceptions           []Exception       `json:"exceptions,omitempty"`
	AlertMessage         string            `json:"alert_message,omitempty"`
}

// DefaultOpeningHours mirrors the seed week the admin panel starts from:
// weekdays open 08:00-17:00, weekend closed.
func DefaultOpeningHours() OpeningHours {
	hours := OpeningHours{}
	for _, day := range Weekdays {
		switch day {
		case Saturday, Sunday:
			hours[day] = DaySchedule{Enabled: false, Slots: []TimeSlot{}}
		default:
			hours[day] = DaySchedule{
				Enabled: true,
				Slots:   []TimeSlot{{StartTime: "08:00", EndTime: "17:00"}},
			}
		}
	}
	return hours
}
