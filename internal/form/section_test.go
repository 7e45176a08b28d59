package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/model"
)

func TestSectionSeedIdenticalIsNoOp(t *testing.T) {
	var changes []model.PracticeProfile
	section := NewSection(func(p model.PracticeProfile) { changes = append(changes, p) })

	seed := model.PracticeProfile{PracticeName: "Northside Medical", Accreditation: "AGPAL"}
	require.True(t, section.Seed(seed))
	first := section.Suppressions()

	// Seeding the deep-equal value again must not reset or notify.
	require.False(t, section.Seed(seed))
	require.False(t, section.Seed(seed))

	assert.Equal(t, first, section.Suppressions())
	assert.LessOrEqual(t, section.Suppressions(), 1)
	assert.Empty(t, changes)
	assert.Equal(t, Ready, section.Phase())
}

func TestSectionNewSeedResetsState(t *testing.T) {
	section := NewSection[model.PracticeProfile](nil)
	section.Seed(model.PracticeProfile{PracticeName: "Old Name"})
	section.Apply(func(p *model.PracticeProfile) { p.PhoneNumber = "0123" })

	section.Seed(model.PracticeProfile{PracticeName: "New Name"})

	got := section.Value()
	assert.Equal(t, "New Name", got.PracticeName)
	assert.Empty(t, got.PhoneNumber, "local edits must not survive a new seed")
}

func TestSectionApplyNotifiesWithFullRecord(t *testing.T) {
	var changes []model.PracticeProfile
	section := NewSection(func(p model.PracticeProfile) { changes = append(changes, p) })
	section.Seed(model.PracticeProfile{PracticeName: "Northside Medical"})

	section.Apply(func(p *model.PracticeProfile) { p.PhoneNumber = "0123" })

	require.Len(t, changes, 1)
	assert.Equal(t, "Northside Medical", changes[0].PracticeName)
	assert.Equal(t, "0123", changes[0].PhoneNumber)
}

func TestSectionValueIsACopy(t *testing.T) {
	section := NewSection[model.PracticeProfile](nil)
	section.Seed(model.PracticeProfile{Facilities: []string{"Parking"}})

	got := section.Value()
	got.Facilities[0] = "mutated"

	assert.Equal(t, []string{"Parking"}, section.Value().Facilities)
}

func TestTimingsToggleDayClearsSlots(t *testing.T) {
	section := NewTimingsSection(nil)
	section.SeedOrDefault(model.PracticeTimings{})

	require.True(t, section.Value().OpeningHours[model.Monday].Enabled)
	require.NotEmpty(t, section.Value().OpeningHours[model.Monday].Slots)

	section.ToggleDay(model.Monday)

	monday := section.Value().OpeningHours[model.Monday]
	assert.False(t, monday.Enabled)
	assert.Empty(t, monday.Slots)
}

func TestTimingsSeedOrDefaultFillsWeek(t *testing.T) {
	section := NewTimingsSection(nil)
	section.SeedOrDefault(model.PracticeTimings{AlertMessage: "closed for holidays"})

	got := section.Value()
	assert.Equal(t, "closed for holidays", got.AlertMessage)
	assert.Len(t, got.OpeningHours, 7)
	assert.False(t, got.OpeningHours[model.Saturday].Enabled)
}

func TestProfessionalInfoAreaOfInterestToggle(t *testing.T) {
	section := NewProfessionalInfoSection(nil)
	section.Seed(model.PractitionerProfessionalInfo{})

	section.SetAreaOfInterest("Dermatology", true)
	section.SetAreaOfInterest("Pediatrics", true)
	section.SetAreaOfInterest("Dermatology", false)

	got := section.Value().AreasOfInterest
	assert.Equal(t, map[string]bool{"Pediatrics": true}, got)
}
