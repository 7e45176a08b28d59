package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, nil), &calls
}

func TestAuthedCallWithoutTokenFailsBeforeNetworkIO(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.GetCurrentPractice(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.IsMissingAuth(err))
	assert.Zero(t, atomic.LoadInt64(calls), "no request may leave the process without a token")
}

func TestAuthedCallAttachesUserTokenQuery(t *testing.T) {
	var gotToken string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("user_token")
		_ = json.NewEncoder(w).Encode(&model.PracticeRecord{PracticeName: "Northside Medical"})
	})

	record, err := client.GetCurrentPractice(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", gotToken)
	assert.Equal(t, "Northside Medical", record.PracticeName)
}

func TestUpstreamDetailErrorPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"practice already exists"}`))
	})

	_, err := client.CreatePractice(context.Background(), "tok", &model.PracticeRecord{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "practice already exists")
}

func TestUpstreamMessageErrorPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"member already invited"}`))
	})

	err := client.AddMember(context.Background(), "tok", &model.AddMemberRequest{Email: "a@b.c"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "member already invited")
}

func TestUpstreamErrorWithoutBodyGetsFallbackText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListDoctors(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestEditPractitionerSendsUUIDQuery(t *testing.T) {
	var gotUUID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUUID = r.URL.Query().Get("practitioner_uuid")
		_ = json.NewEncoder(w).Encode(&model.Practitioner{PractitionerUUID: gotUUID})
	})

	_, err := client.UpdatePractitioner(context.Background(), "tok", "pr-9", &model.Practitioner{})

	require.NoError(t, err)
	assert.Equal(t, "pr-9", gotUUID)
}

func TestListPractitionersUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"practitioners":[{"display_name":"Dr. Amara Osei"}]}`))
	})

	practitioners, err := client.ListPractitioners(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, practitioners, 1)
	assert.Equal(t, "Dr. Amara Osei", practitioners[0].DisplayName)
}

func TestPatientLoginRejectsFailureEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failure","message":"invalid credentials"}`))
	})

	_, err := client.PatientLogin(context.Background(), &model.LoginRequest{Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestBookingIncludeBookedQuery(t *testing.T) {
	var gotInclude string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotInclude = r.URL.Query().Get("include_booked")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListDoctorAvailability(context.Background(), 3, true)

	require.NoError(t, err)
	assert.Equal(t, "true", gotInclude)
}
