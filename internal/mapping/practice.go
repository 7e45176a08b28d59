package mapping

import (
	"github.com/practiceos/console/internal/model"
)

// PracticeToUpstream maps a console draft to the upstream record shape. With
// dirty == nil every value-bearing field is included; otherwise exactly the
// marked fields are, so omitted fields are not cleared server-side.
func PracticeToUpstream(profile model.PracticeProfile, timings model.PracticeTimings, dirty FieldSet) *model.PracticeRecord {
	record := &model.PracticeRecord{}

	if include(dirty, FieldPracticeName, profile.PracticeName != "") {
		record.PracticeName = profile.PracticeName
	}
	if include(dirty, FieldPhoneNumber, profile.PhoneNumber != "") {
		record.PhoneNumber = profile.PhoneNumber
	}
	if include(dirty, FieldWebsite, profile.Website != "") {
		record.PracticeWebsite = profile.Website
	}
	if include(dirty, FieldAccreditation, profile.Accreditation != "") {
		record.PracticeAccrediation = profile.Accreditation
	}
	if include(dirty, FieldAboutPractice, profile.AboutPractice != "") {
		record.AboutPractice = profile.AboutPractice
	}
	if include(dirty, FieldFacilities, len(profile.Facilities) > 0) {
		record.Facilities = profile.Facilities
	}
	if include(dirty, FieldWheelchairAccess, profile.WheelchairAccess) {
		access := profile.WheelchairAccess
		record.WheelChairAccess = &access
	}

	// Social URLs travel as one JSON document upstream.
	socialTouched := include(dirty, FieldFacebookURL, profile.FacebookURL != "") ||
		include(dirty, FieldTwitterURL, profile.TwitterURL != "")
	if socialTouched {
		record.SocialMediaLinks = map[string]string{
			"facebook": profile.FacebookURL,
			"twitter":  profile.TwitterURL,
		}
	}

	if include(dirty, FieldOpeningHours, timings.OpeningHours != nil) {
		record.OpeningHours = timings.OpeningHours
	}
	if include(dirty, FieldExceptions, len(timings.Exceptions) > 0) {
		record.Exceptions = timings.Exceptions
	}
	if include(dirty, FieldAlertMessage, timings.AlertMessage != "") {
		record.AlertMessage = timings.AlertMessage
	}

	return record
}

// PracticeFromUpstream maps an upstream record to the console's per-section
// shapes.
func PracticeFromUpstream(record *model.PracticeRecord) (model.PracticeProfile, model.PracticeTimings) {
	if record == nil {
		return model.PracticeProfile{}, model.PracticeTimings{}
	}

	profile := model.PracticeProfile{
		PracticeName:  record.PracticeName,
		PhoneNumber:   record.PhoneNumber,
		Website:       record.PracticeWebsite,
		Accreditation: record.PracticeAccrediation,
		AboutPractice: record.AboutPractice,
		Facilities:    record.Facilities,
	}
	if record.WheelChairAccess != nil {
		profile.WheelchairAccess = *record.WheelChairAccess
	}
	if links := record.SocialMediaLinks; links != nil {
		profile.FacebookURL = links["facebook"]
		profile.TwitterURL = links["twitter"]
	}

	timings := model.PracticeTimings{
		OpeningHours: record.OpeningHours,
		Exceptions:   record.Exceptions,
		AlertMessage: record.AlertMessage,
	}
	return profile, timings
}
