package form

import (
	"github.com/practiceos/console/internal/model"
)

// BasicInfoSection edits a practitioner's basic details.
type BasicInfoSection struct {
	*Section[model.PractitionerBasicInfo]
}

func NewBasicInfoSection(onChange func(model.PractitionerBasicInfo)) *BasicInfoSection {
	return &BasicInfoSection{Section: NewSection(onChange)}
}

func (s *BasicInfoSection) SetDisplayName(name string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.DisplayName = name })
}

func (s *BasicInfoSection) SetProfession(profession string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.Profession = profession })
}

func (s *BasicInfoSection) SetQualifications(q string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.Qualifications = q })
}

func (s *BasicInfoSection) SetEducation(education string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.Education = education })
}

func (s *BasicInfoSection) SetLanguagesSpoken(languages string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.LanguagesSpoken = languages })
}

func (s *BasicInfoSection) SetGender(gender string) {
	s.Apply(func(b *model.PractitionerBasicInfo) { b.Gender = gender })
}

// ProfessionalInfoSection edits a practitioner's professional details.
type ProfessionalInfoSection struct {
	*Section[model.PractitionerProfessionalInfo]
}

func NewProfessionalInfoSection(onChange func(model.PractitionerProfessionalInfo)) *ProfessionalInfoSection {
	return &ProfessionalInfoSection{Section: NewSection(onChange)}
}

func (s *ProfessionalInfoSection) SetLinkToBestPractice(link string) {
	s.Apply(func(p *model.PractitionerProfessionalInfo) { p.LinkToBestPractice = link })
}

func (s *ProfessionalInfoSection) SetProfessionalStatement(statement string) {
	s.Apply(func(p *model.PractitionerProfessionalInfo) { p.ProfessionalStatement = statement })
}

// SetAreaOfInterest toggles one specialty flag. Only true entries are kept in
// the map; turning a flag off removes the key.
func (s *ProfessionalInfoSection) SetAreaOfInterest(name string, interested bool) {
	s.Apply(func(p *model.PractitionerProfessionalInfo) {
		if p.AreasOfInterest == nil {
			p.AreasOfInterest = map[string]bool{}
		}
		if interested {
			p.AreasOfInterest[name] = true
		} else {
			delete(p.AreasOfInterest, name)
		}
	})
}
