package form

import (
	"github.com/practiceos/console/internal/model"
)

// ProfileSection edits the practice profile slice.
type ProfileSection struct {
	*Section[model.PracticeProfile]
}

// NewProfileSection creates the profile section.
func NewProfileSection(onChange func(model.PracticeProfile)) *ProfileSection {
	return &ProfileSection{Section: NewSection(onChange)}
}

func (s *ProfileSection) SetPracticeName(name string) {
	s.Apply(func(p *model.PracticeProfile) { p.PracticeName = name })
}

func (s *ProfileSection) SetPhoneNumber(phone string) {
	s.Apply(func(p *model.PracticeProfile) { p.PhoneNumber = phone })
}

func (s *ProfileSection) SetWebsite(website string) {
	s.Apply(func(p *model.PracticeProfile) { p.Website = website })
}

func (s *ProfileSection) SetAccreditation(body string) {
	s.Apply(func(p *model.PracticeProfile) { p.Accreditation = body })
}

func (s *ProfileSection) SetFacebookURL(u string) {
	s.Apply(func(p *model.PracticeProfile) { p.FacebookURL = u })
}

func (s *ProfileSection) SetTwitterURL(u string) {
	s.Apply(func(p *model.PracticeProfile) { p.TwitterURL = u })
}

func (s *ProfileSection) SetAboutPractice(text string) {
	s.Apply(func(p *model.PracticeProfile) { p.AboutPractice = text })
}

func (s *ProfileSection) SetWheelchairAccess(enabled bool) {
	s.Apply(func(p *model.PracticeProfile) { p.WheelchairAccess = enabled })
}

// AddFacility appends a facility chip. Duplicates are allowed.
func (s *ProfileSection) AddFacility(facility string) {
	s.Apply(func(p *model.PracticeProfile) {
		p.Facilities = append(p.Facilities, facility)
	})
}

// RemoveFacility removes the facility chip at index; out-of-range indexes are
// ignored.
func (s *ProfileSection) RemoveFacility(index int) {
	s.Apply(func(p *model.PracticeProfile) {
		if index < 0 || index >= len(p.Facilities) {
			return
		}
		p.Facilities = append(p.Facilities[:index], p.Facilities[index+1:]...)
	})
}
