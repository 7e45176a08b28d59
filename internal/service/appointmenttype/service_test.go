package appointmenttype

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

type fakeTypesAPI struct {
	types     []*model.AppointmentType
	listCalls int
	created   []*model.CreateAppointmentTypeRequest
}

func (f *fakeTypesAPI) ListAppointmentTypes(context.Context, string) ([]*model.AppointmentType, error) {
	f.listCalls++
	return f.types, nil
}

func (f *fakeTypesAPI) CreateAppointmentType(_ context.Context, _ string, req *model.CreateAppointmentTypeRequest) error {
	f.created = append(f.created, req)
	return nil
}

func validRequest() *model.CreateAppointmentTypeRequest {
	return &model.CreateAppointmentTypeRequest{
		TypeOfConsultation:         "In person",
		AppointmentPatientType:     "New patient",
		AppointmentPatientDuration: "30",
	}
}

func TestCreateValidatesDuration(t *testing.T) {
	svc := NewService(&fakeTypesAPI{}, nil, time.Minute)
	ctx := context.Background()

	for _, duration := range []string{"", "0", "-15", "abc", "15.5"} {
		req := validRequest()
		req.AppointmentPatientDuration = duration
		err := svc.Create(ctx, "tok", req)
		require.Error(t, err, "duration %q must be rejected", duration)
		assert.True(t, errors.IsValidation(err))
	}
}

func TestCreateAcceptsPositiveDuration(t *testing.T) {
	api := &fakeTypesAPI{}
	svc := NewService(api, nil, time.Minute)

	require.NoError(t, svc.Create(context.Background(), "tok", validRequest()))
	require.Len(t, api.created, 1)
}

func TestCreateInvalidatesList(t *testing.T) {
	api := &fakeTypesAPI{}
	svc := NewService(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute)
	ctx := context.Background()

	_, err := svc.List(ctx, "tok")
	require.NoError(t, err)
	_, err = svc.List(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	require.NoError(t, svc.Create(ctx, "tok", validRequest()))
	_, err = svc.List(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}
