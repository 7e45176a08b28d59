package directory

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

type fakeDirectoryAPI struct {
	practices []*model.PracticeListing
	listCalls int
	getCalls  int
}

func (f *fakeDirectoryAPI) ListPractices(context.Context) ([]*model.PracticeListing, error) {
	f.listCalls++
	return f.practices, nil
}

func (f *fakeDirectoryAPI) GetPractice(_ context.Context, practiceUUID string) (*model.PracticeRecord, error) {
	f.getCalls++
	return &model.PracticeRecord{PracticeUUID: practiceUUID}, nil
}

func newService(api *fakeDirectoryAPI) *Service {
	return NewService(api, store.NewMemoryStore(time.Minute, time.Minute, nil), time.Minute)
}

func TestListPracticesServesFromCache(t *testing.T) {
	api := &fakeDirectoryAPI{practices: []*model.PracticeListing{{PracticeName: "Riverside Clinic"}}}
	svc := newService(api)
	ctx := context.Background()

	_, err := svc.ListPractices(ctx)
	require.NoError(t, err)
	_, err = svc.ListPractices(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, api.listCalls)
}

func TestRefreshBypassesCache(t *testing.T) {
	api := &fakeDirectoryAPI{practices: []*model.PracticeListing{{PracticeName: "Riverside Clinic"}}}
	svc := newService(api)
	ctx := context.Background()

	_, err := svc.ListPractices(ctx)
	require.NoError(t, err)
	api.practices = append(api.practices, &model.PracticeListing{PracticeName: "Hillside Clinic"})

	practices, err := svc.Refresh(ctx)
	require.NoError(t, err)

	assert.Len(t, practices, 2)
	assert.Equal(t, 2, api.listCalls)
}

func TestGetPracticeCachesByUUID(t *testing.T) {
	api := &fakeDirectoryAPI{}
	svc := newService(api)
	ctx := context.Background()

	first, err := svc.GetPractice(ctx, "pc-1")
	require.NoError(t, err)
	second, err := svc.GetPractice(ctx, "pc-1")
	require.NoError(t, err)

	assert.Equal(t, first.PracticeUUID, second.PracticeUUID)
	assert.Equal(t, 1, api.getCalls)
}

func TestGetPracticeRequiresUUID(t *testing.T) {
	svc := newService(&fakeDirectoryAPI{})
	_, err := svc.GetPractice(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
