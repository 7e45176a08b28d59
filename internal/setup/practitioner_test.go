package setup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
)

type fakePractitionerAPI struct {
	practitioners []*model.Practitioner
	slots         []*model.AvailabilitySlot
	listCalls     int
	created       []*model.Practitioner
	updated       []*model.Practitioner
	slotCreates   []apiclient.CreateAvailabilityRequest
}

func (f *fakePractitionerAPI) ListPractitioners(context.Context, string) ([]*model.Practitioner, error) {
	f.listCalls++
	return f.practitioners, nil
}

func (f *fakePractitionerAPI) CreatePractitioner(_ context.Context, _ string, r *model.Practitioner) (*model.Practitioner, error) {
	created := *r
	created.PractitionerUUID = "pr-new"
	f.created = append(f.created, &created)
	f.practitioners = append(f.practitioners, &created)
	return &created, nil
}

func (f *fakePractitionerAPI) UpdatePractitioner(_ context.Context, _, practitionerUUID string, r *model.Practitioner) (*model.Practitioner, error) {
	updated := *r
	updated.PractitionerUUID = practitionerUUID
	f.updated = append(f.updated, &updated)
	return &updated, nil
}

func (f *fakePractitionerAPI) ListAvailability(context.Context, string, string) ([]*model.AvailabilitySlot, error) {
	return f.slots, nil
}

func (f *fakePractitionerAPI) CreateAvailability(_ context.Context, _, _ string, req apiclient.CreateAvailabilityRequest) error {
	f.slotCreates = append(f.slotCreates, req)
	return nil
}

func existing() *model.Practitioner {
	return &model.Practitioner{
		PractitionerUUID:      "pr-1",
		DisplayName:           "Dr. Amara Osei",
		Profession:            "General Practitioner",
		ProfessionalStatement: "20 years in family medicine.",
	}
}

func TestPractitionerSetupLoadSeedsSections(t *testing.T) {
	api := &fakePractitionerAPI{practitioners: []*model.Practitioner{existing()}}
	s := NewPractitionerSetup(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute, "pr-1")

	require.NoError(t, s.Load(context.Background(), "tok"))

	assert.Equal(t, "Dr. Amara Osei", s.BasicInfo().DisplayName)
	assert.Equal(t, "20 years in family medicine.", s.ProfessionalInfo().ProfessionalStatement)
	assert.Equal(t, ModeEdit, s.Mode())
	assert.False(t, s.Dirty())
}

func TestPractitionerSetupLoadUnknownUUID(t *testing.T) {
	api := &fakePractitionerAPI{}
	s := NewPractitionerSetup(api, nil, time.Minute, "missing")
	assert.Error(t, s.Load(context.Background(), "tok"))
}

func TestPractitionerSetupEditAndSparseSave(t *testing.T) {
	api := &fakePractitionerAPI{practitioners: []*model.Practitioner{existing()}}
	s := NewPractitionerSetup(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute, "pr-1")
	require.NoError(t, s.Load(context.Background(), "tok"))

	s.SetProfession("Dermatologist")
	require.True(t, s.Dirty())
	require.NoError(t, s.Save(context.Background(), "tok"))

	require.Len(t, api.updated, 1)
	assert.Equal(t, "Dermatologist", api.updated[0].Profession)
	assert.Empty(t, api.updated[0].DisplayName, "untouched fields stay out of the update")
}

func TestPractitionerSetupCreateFlowBindsAvailability(t *testing.T) {
	api := &fakePractitionerAPI{}
	s := NewPractitionerSetup(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute, "")
	require.Equal(t, ModeCreate, s.Mode())

	s.SetDisplayName("Dr. New Hire")
	_, err := s.Availability().AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "tok"))

	require.Len(t, api.created, 1)
	assert.Equal(t, "pr-new", s.PractitionerUUID())
	assert.Equal(t, ModeEdit, s.Mode())
	require.Len(t, api.slotCreates, 1, "drafted slots save against the new uuid")
	assert.Equal(t, model.DayMonday, api.slotCreates[0].DayOfWeek)
}

func TestPractitionerSetupCreateRequiresDisplayName(t *testing.T) {
	s := NewPractitionerSetup(&fakePractitionerAPI{}, nil, time.Minute, "")
	assert.Error(t, s.Save(context.Background(), "tok"))
}

func TestPractitionerSetupCancel(t *testing.T) {
	api := &fakePractitionerAPI{practitioners: []*model.Practitioner{existing()}}
	s := NewPractitionerSetup(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute, "pr-1")
	require.NoError(t, s.Load(context.Background(), "tok"))

	s.SetProfession("Changed")
	s.Cancel()

	assert.Equal(t, "General Practitioner", s.BasicInfo().Profession)
	assert.False(t, s.Dirty())
}
