package mapping

import (
	"github.com/practiceos/console/internal/model"
)

// PractitionerToUpstream maps the two practitioner sections to a sparse
// upstream record.
func PractitionerToUpstream(basic model.PractitionerBasicInfo, professional model.PractitionerProfessionalInfo, dirty FieldSet) *model.Practitioner {
	record := &model.Practitioner{}

	if include(dirty, FieldDisplayName, basic.DisplayName != "") {
		record.DisplayName = basic.DisplayName
	}
	if include(dirty, FieldProfession, basic.Profession != "") {
		record.Profession = basic.Profession
	}
	if include(dirty, FieldQualifications, basic.Qualifications != "") {
		record.Qualifications = basic.Qualifications
	}
	if include(dirty, FieldEducation, basic.Education != "") {
		record.Education = basic.Education
	}
	if include(dirty, FieldLanguagesSpoken, basic.LanguagesSpoken != "") {
		record.LanguagesSpoken = basic.LanguagesSpoken
	}
	if include(dirty, FieldGender, basic.Gender != "") {
		record.Gender = basic.Gender
	}
	if include(dirty, FieldLinkToBestPractice, professional.LinkToBestPractice != "") {
		record.LinkToBestPractice = professional.LinkToBestPractice
	}
	if include(dirty, FieldProfessionalStatement, professional.ProfessionalStatement != "") {
		record.ProfessionalStatement = professional.ProfessionalStatement
	}
	if include(dirty, FieldAreasOfInterest, len(professional.AreasOfInterest) > 0) {
		record.ProfessionalAreasOfInterest = professional.AreasOfInterest
	}

	return record
}

// PractitionerFromUpstream maps an upstream practitioner to the console's
// section shapes.
func PractitionerFromUpstream(record *model.Practitioner) (model.PractitionerBasicInfo, model.PractitionerProfessionalInfo) {
	if record == nil {
		return model.PractitionerBasicInfo{}, model.PractitionerProfessionalInfo{}
	}

	basic := model.PractitionerBasicInfo{
		DisplayName:     record.DisplayName,
		Profession:      record.Profession,
		Qualifications:  record.Qualifications,
		Education:       record.Education,
		LanguagesSpoken: record.LanguagesSpoken,
		Gender:          record.Gender,
	}
	professional := model.PractitionerProfessionalInfo{
		LinkToBestPractice:    record.LinkToBestPractice,
		ProfessionalStatement: record.ProfessionalStatement,
		AreasOfInterest:       record.ProfessionalAreasOfInterest,
	}
	return basic, professional
}
