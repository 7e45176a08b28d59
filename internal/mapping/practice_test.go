package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/model"
)

func TestPracticeMappingRoundTrip(t *testing.T) {
	profile := model.PracticeProfile{
		Accreditation:    "AGPAL",
		WheelchairAccess: true,
	}

	record := PracticeToUpstream(profile, model.PracticeTimings{}, nil)
	require.Equal(t, "AGPAL", record.PracticeAccrediation)
	require.NotNil(t, record.WheelChairAccess)
	require.True(t, *record.WheelChairAccess)

	back, _ := PracticeFromUpstream(record)
	assert.Equal(t, profile.Accreditation, back.Accreditation)
	assert.Equal(t, profile.WheelchairAccess, back.WheelchairAccess)
}

func TestPracticeToUpstreamRenamesFields(t *testing.T) {
	profile := model.PracticeProfile{
		Website:     "https://northside.example",
		FacebookURL: "https://facebook.com/northside",
		TwitterURL:  "https://twitter.com/northside",
	}

	record := PracticeToUpstream(profile, model.PracticeTimings{}, nil)

	assert.Equal(t, "https://northside.example", record.PracticeWebsite)
	require.NotNil(t, record.SocialMediaLinks)
	assert.Equal(t, "https://facebook.com/northside", record.SocialMediaLinks["facebook"])
	assert.Equal(t, "https://twitter.com/northside", record.SocialMediaLinks["twitter"])
}

func TestPracticeToUpstreamSparseWithDirtySet(t *testing.T) {
	profile := model.PracticeProfile{
		PracticeName: "Northside Medical",
		PhoneNumber:  "0123",
		Website:      "https://northside.example",
	}
	dirty := NewFieldSet()
	dirty.Mark(FieldPhoneNumber)

	record := PracticeToUpstream(profile, model.PracticeTimings{}, dirty)

	assert.Equal(t, "0123", record.PhoneNumber)
	assert.Empty(t, record.PracticeName, "untouched fields stay out of the payload")
	assert.Empty(t, record.PracticeWebsite)
}

func TestPracticeToUpstreamDirtyClearedFieldIncluded(t *testing.T) {
	dirty := NewFieldSet()
	dirty.Mark(FieldWheelchairAccess)

	record := PracticeToUpstream(model.PracticeProfile{}, model.PracticeTimings{}, dirty)

	require.NotNil(t, record.WheelChairAccess, "a touched field travels even at its zero value")
	assert.False(t, *record.WheelChairAccess)
}

func TestPracticeFromUpstreamNilSafe(t *testing.T) {
	profile, timings := PracticeFromUpstream(nil)
	assert.Zero(t, profile)
	assert.Zero(t, timings)
}

func TestPractitionerMappingRoundTrip(t *testing.T) {
	basic := model.PractitionerBasicInfo{
		DisplayName: "Dr. Amara Osei",
		Profession:  "General Practitioner",
	}
	professional := model.PractitionerProfessionalInfo{
		ProfessionalStatement: "20 years in family medicine.",
		AreasOfInterest:       map[string]bool{"Dermatology": true},
	}

	record := PractitionerToUpstream(basic, professional, nil)
	gotBasic, gotProfessional := PractitionerFromUpstream(record)

	assert.Equal(t, basic, gotBasic)
	assert.Equal(t, professional, gotProfessional)
}

func TestPractitionerToUpstreamSparse(t *testing.T) {
	basic := model.PractitionerBasicInfo{
		DisplayName: "Dr. Amara Osei",
		Profession:  "General Practitioner",
	}
	dirty := NewFieldSet()
	dirty.Mark(FieldProfession)

	record := PractitionerToUpstream(basic, model.PractitionerProfessionalInfo{}, dirty)

	assert.Equal(t, "General Practitioner", record.Profession)
	assert.Empty(t, record.DisplayName)
}
