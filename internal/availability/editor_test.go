package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
)

// fakePractitionerAPI records availability calls and serves a canned slot
// list.
type fakePractitionerAPI struct {
	created   []apiclient.CreateAvailabilityRequest
	persisted []*model.AvailabilitySlot
	listCalls int
	createErr error
}

func (f *fakePractitionerAPI) ListPractitioners(context.Context, string) ([]*model.Practitioner, error) {
	return nil, nil
}

func (f *fakePractitionerAPI) CreatePractitioner(_ context.Context, _ string, r *model.Practitioner) (*model.Practitioner, error) {
	return r, nil
}

func (f *fakePractitionerAPI) UpdatePractitioner(_ context.Context, _, _ string, r *model.Practitioner) (*model.Practitioner, error) {
	return r, nil
}

func (f *fakePractitionerAPI) ListAvailability(context.Context, string, string) ([]*model.AvailabilitySlot, error) {
	f.listCalls++
	return f.persisted, nil
}

func (f *fakePractitionerAPI) CreateAvailability(_ context.Context, _, _ string, req apiclient.CreateAvailabilityRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func TestAddSlotRejectsOverlap(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")

	_, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)

	_, err = editor.AddSlot(model.DayMonday, "11:00", "13:00")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Len(t, editor.Slots(), 1, "rejected slot must not be added")
}

func TestAddSlotRejectsInvertedRange(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")

	_, err := editor.AddSlot(model.DayMonday, "12:00", "09:00")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	_, err = editor.AddSlot(model.DayMonday, "09:00", "09:00")
	require.Error(t, err)
	assert.Empty(t, editor.Slots())
}

func TestAddSlotAcceptsTouchingBoundaries(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")

	_, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)

	// Half-open intervals: 12:00 end touches 12:00 start without overlap.
	_, err = editor.AddSlot(model.DayMonday, "12:00", "15:00")
	require.NoError(t, err)
	assert.Len(t, editor.Slots(), 2)
}

func TestAddSlotIgnoresInactiveWhenCheckingOverlap(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")

	first, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)
	require.True(t, editor.ToggleActive(first.LocalID))

	_, err = editor.AddSlot(model.DayMonday, "09:00", "12:00")
	assert.NoError(t, err, "an inactive slot must not block the same range")
}

func TestAddSlotAllowsSameRangeOnDifferentDays(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")

	_, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)
	_, err = editor.AddSlot(model.DayTuesday, "09:00", "12:00")
	assert.NoError(t, err)
}

func TestRemoveSlotByLocalID(t *testing.T) {
	editor := NewEditor(&fakePractitionerAPI{}, "pr-1")
	slot, err := editor.AddSlot(model.DayFriday, "08:00", "10:00")
	require.NoError(t, err)

	assert.True(t, editor.RemoveSlot(slot.LocalID))
	assert.Empty(t, editor.Slots())
	assert.False(t, editor.RemoveSlot(slot.LocalID))
}

func TestSavePostsOnlyActiveUnpersistedSlots(t *testing.T) {
	api := &fakePractitionerAPI{}
	editor := NewEditor(api, "pr-1")

	_, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)
	inactive, err := editor.AddSlot(model.DayTuesday, "09:00", "12:00")
	require.NoError(t, err)
	require.True(t, editor.ToggleActive(inactive.LocalID))

	require.NoError(t, editor.Save(context.Background(), "token"))

	require.Len(t, api.created, 1)
	assert.Equal(t, model.DayMonday, api.created[0].DayOfWeek)
	assert.Equal(t, 1, api.listCalls, "save reloads the persisted list")
}

func TestSaveAbortsOnFirstFailure(t *testing.T) {
	api := &fakePractitionerAPI{createErr: errors.NewUpstream("slot conflict", nil)}
	editor := NewEditor(api, "pr-1")
	_, err := editor.AddSlot(model.DayMonday, "09:00", "12:00")
	require.NoError(t, err)

	err = editor.Save(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot conflict")
	assert.Zero(t, api.listCalls, "a failed batch must not reload")
}

func TestLoadAssignsLocalIDs(t *testing.T) {
	api := &fakePractitionerAPI{
		persisted: []*model.AvailabilitySlot{
			{AvailabilityUUID: "av-1", DayOfWeek: model.DayMonday, StartTime: "09:00", EndTime: "12:00", IsActive: true},
			{AvailabilityUUID: "av-2", DayOfWeek: model.DayTuesday, StartTime: "13:00", EndTime: "17:00", IsActive: true},
		},
	}
	editor := NewEditor(api, "pr-1")

	require.NoError(t, editor.Load(context.Background(), "token"))

	slots := editor.Slots()
	require.Len(t, slots, 2)
	assert.NotEqual(t, slots[0].LocalID, slots[1].LocalID)
	assert.Equal(t, "Monday", slots[0].DayName)

	grouped := editor.SlotsByDay()
	assert.Len(t, grouped[model.DayMonday], 1)
	assert.Len(t, grouped[model.DayTuesday], 1)
}
