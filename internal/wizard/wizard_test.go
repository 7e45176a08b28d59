package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
)

// fakeBookingAPI serves canned doctors and per-doctor slots and counts
// availability fetches.
type fakeBookingAPI struct {
	doctors           []*model.Doctor
	slotsByDoctor     map[int][]*model.BookingSlot
	availabilityCalls map[int]int
	bookings          []*model.BookingRequest
	bookErr           error
}

func newFakeBookingAPI() *fakeBookingAPI {
	return &fakeBookingAPI{
		doctors: []*model.Doctor{
			{ID: 1, Name: "Dr. Amara Osei"},
			{ID: 2, Name: "Dr. Lena Fischer"},
		},
		slotsByDoctor: map[int][]*model.BookingSlot{
			1: {{ID: 10, Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
			2: {{ID: 20, Date: "2026-09-02", StartTime: "14:00", EndTime: "14:30"}},
		},
		availabilityCalls: map[int]int{},
	}
}

func (f *fakeBookingAPI) ListDoctors(context.Context) ([]*model.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeBookingAPI) ListDoctorAvailability(_ context.Context, doctorID int, _ bool) ([]*model.BookingSlot, error) {
	f.availabilityCalls[doctorID]++
	return f.slotsByDoctor[doctorID], nil
}

func (f *fakeBookingAPI) CreateBooking(_ context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.bookings = append(f.bookings, req)
	return &model.Booking{ID: 100, Name: req.Name, Email: req.Email}, nil
}

func validDetails() model.BookingDetails {
	return model.BookingDetails{
		ConsultationType: "General",
		Name:             "Pat Example",
		Email:            "pat@example.com",
		PhoneNumber:      "0123456789",
	}
}

func TestWizardHappyPath(t *testing.T) {
	api := newFakeBookingAPI()
	w := New(api, nil)

	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepSelectDoctor, w.Step())

	slots, err := w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, StepSelectSlot, w.Step())

	require.NoError(t, w.SelectSlot(10))
	assert.Equal(t, StepEnterDetails, w.Step())

	require.NoError(t, w.SetDetails(validDetails()))
	booking, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepConfirmed, w.Step())
	assert.Equal(t, booking, w.Confirmation())

	require.Len(t, api.bookings, 1)
	assert.Equal(t, 1, api.bookings[0].DoctorID)
	require.NotNil(t, api.bookings[0].SlotID)
	assert.Equal(t, 10, *api.bookings[0].SlotID)
}

func TestWizardDoctorSwitchRefetchesSlots(t *testing.T) {
	api := newFakeBookingAPI()
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)

	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 2)
	require.NoError(t, err)

	// Switching back must refetch, never reuse the earlier list.
	slots, err := w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, api.availabilityCalls[1])
	assert.Equal(t, 1, api.availabilityCalls[2])
	assert.Equal(t, 10, slots[0].ID)
}

func TestWizardRejectsBookedSlot(t *testing.T) {
	api := newFakeBookingAPI()
	api.slotsByDoctor[1][0].IsBooked = true
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)

	err = w.SelectSlot(10)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, StepSelectSlot, w.Step())
}

func TestWizardSubmitValidatesDetails(t *testing.T) {
	api := newFakeBookingAPI()
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, w.SelectSlot(10))

	details := validDetails()
	details.Email = "not-an-email"
	require.NoError(t, w.SetDetails(details))

	_, err = w.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, api.bookings)
	assert.Equal(t, StepEnterDetails, w.Step(), "a failed submit must not confirm")
}

func TestWizardSubmitFailureStaysUnconfirmed(t *testing.T) {
	api := newFakeBookingAPI()
	api.bookErr = errors.NewUpstream("slot already taken", nil)
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, w.SelectSlot(10))
	require.NoError(t, w.SetDetails(validDetails()))

	_, err = w.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot already taken")
	assert.Equal(t, StepEnterDetails, w.Step())
	assert.Nil(t, w.Confirmation())
}

func TestWizardBackNavigation(t *testing.T) {
	api := newFakeBookingAPI()
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, w.SelectSlot(10))

	require.NoError(t, w.Back())
	assert.Equal(t, StepSelectSlot, w.Step())

	require.NoError(t, w.Back())
	assert.Equal(t, StepSelectDoctor, w.Step())
	assert.Nil(t, w.Slots(), "leaving slot selection discards the slot list")

	assert.Error(t, w.Back())
}

func TestWizardReset(t *testing.T) {
	api := newFakeBookingAPI()
	w := New(api, nil)
	_, err := w.LoadDoctors(context.Background())
	require.NoError(t, err)
	_, err = w.SelectDoctor(context.Background(), 1)
	require.NoError(t, err)

	w.Reset()

	assert.Equal(t, StepSelectDoctor, w.Step())
	assert.Nil(t, w.Slots())
	assert.NotEmpty(t, w.Doctors(), "the doctor list survives a reset")
}

func TestWizardSelectSlotRequiresDoctor(t *testing.T) {
	w := New(newFakeBookingAPI(), nil)
	err := w.SelectSlot(10)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
