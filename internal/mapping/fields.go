// Package mapping translates between the console's field names and the
// upstream schema's, in both directions. The upstream names are preserved
// exactly as stored, misspellings included.
package mapping

// Console-side field names for the practice sections.
const (
	FieldPracticeName     = "practice_name"
	FieldPhoneNumber      = "phone_number"
	FieldWebsite          = "website"
	FieldAccreditation    = "accreditation"
	FieldFacebookURL      = "facebook_url"
	FieldTwitterURL       = "twitter_url"
	FieldFacilities       = "facilities"
	FieldAboutPractice    = "about_practice"
	FieldWheelchairAccess = "wheelchair_access"
	FieldOpeningHours     = "opening_hours"
	FieldExceptions       = "exceptions"
	FieldAlertMessage     = "alert_message"
)

// Console-side field names for the practitioner sections.
const (
	FieldDisplayName           = "display_name"
	FieldProfession            = "profession"
	FieldQualifications        = "qualifications"
	FieldEducation             = "education"
	FieldLanguagesSpoken       = "languages_spoken"
	FieldGender                = "gender"
	FieldLinkToBestPractice    = "link_to_best_practice"
	FieldProfessionalStatement = "professional_statement"
	FieldAreasOfInterest       = "professional_areas_of_interest"
)

// FieldSet tracks which console-side fields the user has actually touched.
// A marked field is included in the sparse upstream payload even when it has
// been cleared to its zero value, which is what distinguishes "cleared" from
// "never touched".
type FieldSet map[string]bool

// NewFieldSet creates an empty set.
func NewFieldSet() FieldSet {
	return FieldSet{}
}

// Mark records fields as touched.
func (f FieldSet) Mark(names ...string) {
	for _, name := range names {
		f[name] = true
	}
}

// Has reports whether a field was touched.
func (f FieldSet) Has(name string) bool {
	return f[name]
}

// Empty reports whether nothing was touched.
func (f FieldSet) Empty() bool {
	return len(f) == 0
}

// Clear resets the set.
func (f FieldSet) Clear() {
	for name := range f {
		delete(f, name)
	}
}

// include decides whether a field belongs in a sparse payload: with a dirty
// set, exactly the marked fields; without one, any value-bearing field.
func include(dirty FieldSet, name string, nonZero bool) bool {
	if dirty == nil {
		return nonZero
	}
	return dirty.Has(name)
}
