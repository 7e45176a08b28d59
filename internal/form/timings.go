package form

import (
	"github.com/practiceos/console/internal/model"
)

// TimingsSection edits opening hours, exception closures and the alert
// message.
type TimingsSection struct {
	*Section[model.PracticeTimings]
}

// NewTimingsSection creates the timings section. An empty seed starts from
// the default week.
func NewTimingsSection(onChange func(model.PracticeTimings)) *TimingsSection {
	return &TimingsSection{Section: NewSection(onChange)}
}

// SeedOrDefault seeds from initial, filling an absent opening-hours document
// with the default week.
func (s *TimingsSection) SeedOrDefault(initial model.PracticeTimings) bool {
	if initial.OpeningHours == nil {
		initial.OpeningHours = model.DefaultOpeningHours()
	}
	return s.Seed(initial)
}

// ToggleDay flips a day's enabled flag. Disabling a day clears its slots so
// the disabled-day invariant holds.
func (s *TimingsSection) ToggleDay(day model.Weekday) {
	s.Apply(func(t *model.PracticeTimings) {
		if t.OpeningHours == nil {
			t.OpeningHours = model.DefaultOpeningHours()
		}
		schedule := t.OpeningHours[day]
		schedule.Enabled = !schedule.Enabled
		if !schedule.Enabled {
			schedule.Slots = []model.TimeSlot{}
		}
		t.OpeningHours[day] = schedule
	})
}

// AddTimeSlot appends the default 08:00-17:00 interval to a day.
func (s *TimingsSection) AddTimeSlot(day model.Weekday) {
	s.Apply(func(t *model.PracticeTimings) {
		if t.OpeningHours == nil {
			t.OpeningHours = model.DefaultOpeningHours()
		}
		schedule := t.OpeningHours[day]
		schedule.Slots = append(schedule.Slots, model.TimeSlot{StartTime: "08:00", EndTime: "17:00"})
		t.OpeningHours[day] = schedule
	})
}

// RemoveTimeSlot deletes one of a day's intervals by index.
func (s *TimingsSection) RemoveTimeSlot(day model.Weekday, index int) {
	s.Apply(func(t *model.PracticeTimings) {
		schedule := t.OpeningHours[day]
		if index < 0 || index >= len(schedule.Slots) {
			return
		}
		schedule.Slots = append(schedule.Slots[:index], schedule.Slots[index+1:]...)
		t.OpeningHours[day] = schedule
	})
}

// UpdateTimeSlot replaces one of a day's intervals by index.
func (s *TimingsSection) UpdateTimeSlot(day model.Weekday, index int, start, end string) {
	s.Apply(func(t *model.PracticeTimings) {
		schedule := t.OpeningHours[day]
		if index < 0 || index >= len(schedule.Slots) {
			return
		}
		schedule.Slots[index] = model.TimeSlot{StartTime: start, EndTime: end}
		t.OpeningHours[day] = schedule
	})
}

// AddException appends a closure row with the Holiday default reason.
func (s *TimingsSection) AddException() {
	s.Apply(func(t *model.PracticeTimings) {
		t.Exceptions = append(t.Exceptions, model.Exception{Reason: "Holiday"})
	})
}

// RemoveException deletes a closure row by index.
func (s *TimingsSection) RemoveException(index int) {
	s.Apply(func(t *model.PracticeTimings) {
		if index < 0 || index >= len(t.Exceptions) {
			return
		}
		t.Exceptions = append(t.Exceptions[:index], t.Exceptions[index+1:]...)
	})
}

// UpdateException replaces a closure row by index.
func (s *TimingsSection) UpdateException(index int, date, reason string) {
	s.Apply(func(t *model.PracticeTimings) {
		if index < 0 || index >= len(t.Exceptions) {
			return
		}
		t.Exceptions[index] = model.Exception{Date: date, Reason: reason}
	})
}

func (s *TimingsSection) SetAlertMessage(message string) {
	s.Apply(func(t *model.PracticeTimings) { t.AlertMessage = message })
}
