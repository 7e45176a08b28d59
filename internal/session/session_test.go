package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practiceos/console/pkg/errors"
)

func TestManagerCreateAndResolve(t *testing.T) {
	m := NewManager("test-secret", time.Minute, nil)

	sess, token, err := m.Create(KindPractice, "upstream-tok", "Dana", "dana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := m.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
	assert.Equal(t, KindPractice, resolved.Kind)
	assert.Equal(t, "upstream-tok", resolved.UserToken)
}

func TestManagerRejectsEmptyToken(t *testing.T) {
	m := NewManager("test-secret", time.Minute, nil)
	_, err := m.Resolve("")
	require.Error(t, err)
	assert.True(t, errors.IsMissingAuth(err))
}

func TestManagerRejectsGarbageToken(t *testing.T) {
	m := NewManager("test-secret", time.Minute, nil)
	_, err := m.Resolve("not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.IsMissingAuth(err))
}

func TestManagerRejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Minute, nil)
	_, token, err := issuer.Create(KindPatient, "", "", "")
	require.NoError(t, err)

	verifier := NewManager("secret-b", time.Minute, nil)
	_, err = verifier.Resolve(token)
	require.Error(t, err)
	assert.True(t, errors.IsMissingAuth(err))
}

func TestManagerDestroy(t *testing.T) {
	m := NewManager("test-secret", time.Minute, nil)
	_, token, err := m.Create(KindPatient, "", "", "")
	require.NoError(t, err)

	m.Destroy(token)

	_, err = m.Resolve(token)
	require.Error(t, err)
}

func TestSessionPractitionerSetupRegistry(t *testing.T) {
	sess := &Session{}
	assert.Nil(t, sess.PractitionerSetup("pr-1"))

	sess.SetPractitionerSetup("pr-1", nil)
	sess.SetPractitionerSetup("", nil)
	assert.Len(t, sess.PractitionerSetups, 2)
}
