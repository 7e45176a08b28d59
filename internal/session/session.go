// Package session keeps per-user workflow state server-side: the upstream
// token plus the setup orchestrators and the booking wizard bound to one
// signed-in user. Sessions are identified by a signed JWT handed to the
// client; all state stays in the console.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/practiceos/console/internal/setup"
	"github.com/practiceos/console/internal/wizard"
	"github.com/practiceos/console/pkg/errors"
	"github.com/practiceos/console/pkg/metrics"
)

// Kind distinguishes practice staff sessions from patient sessions.
type Kind string

const (
	KindPractice Kind = "practice"
	KindPatient  Kind = "patient"
)

// Session is one user's server-side state. Handlers serialize access through
// the mutex; the workflow state inside is single-writer by construction.
type Session struct {
	mu sync.Mutex

	ID        string
	Kind      Kind
	UserToken string
	Name      string
	Email     string
	CreatedAt time.Time

	PracticeSetup      *setup.PracticeSetup
	PractitionerSetups map[string]*setup.PractitionerSetup
	Wizard             *wizard.Wizard
}

// Lock serializes handler access to the session's workflow state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// PractitionerSetup returns the orchestrator keyed by practitioner uuid, or
// nil. The empty key holds the create-mode orchestrator.
func (s *Session) PractitionerSetup(practitionerUUID string) *setup.PractitionerSetup {
	if s.PractitionerSetups == nil {
		return nil
	}
	return s.PractitionerSetups[practitionerUUID]
}

// SetPractitionerSetup stores an orchestrator under a practitioner uuid.
func (s *Session) SetPractitionerSetup(practitionerUUID string, ps *setup.PractitionerSetup) {
	if s.PractitionerSetups == nil {
		s.PractitionerSetups = make(map[string]*setup.PractitionerSetup)
	}
	s.PractitionerSetups[practitionerUUID] = ps
}

type claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// Manager issues, resolves and expires sessions.
type Manager struct {
	sessions *gocache.Cache
	secret   []byte
	ttl      time.Duration
	metrics  *metrics.Metrics
}

// NewManager creates a session manager. Sessions expire after ttl of
// inactivity; metrics may be nil.
func NewManager(secret string, ttl time.Duration, m *metrics.Metrics) *Manager {
	cache := gocache.New(ttl, 2*ttl)
	mgr := &Manager{
		sessions: cache,
		secret:   []byte(secret),
		ttl:      ttl,
		metrics:  m,
	}
	cache.OnEvicted(func(string, interface{}) {
		if mgr.metrics != nil {
			mgr.metrics.SessionsActive.Dec()
		}
	})
	return mgr
}

// Create registers a session and returns it with its signed token. userToken
// may be empty for anonymous patient sessions; authed upstream calls made
// from such a session fail before any network I/O.
func (m *Manager) Create(kind Kind, userToken, name, email string) (*Session, string, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserToken: userToken,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	m.sessions.Set(sess.ID, sess, m.ttl)
	if m.metrics != nil {
		m.metrics.SessionsActive.Inc()
	}
	return sess, signed, nil
}

// Resolve parses a session token and returns the live session. Each resolve
// slides the expiry window.
func (m *Manager) Resolve(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, errors.NewMissingAuth()
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewMissingAuth()
	}

	raw, found := m.sessions.Get(c.Subject)
	if !found {
		return nil, errors.NewMissingAuth()
	}
	sess := raw.(*Session)
	m.sessions.Set(sess.ID, sess, m.ttl)
	return sess, nil
}

// Destroy drops a session by its token. Unknown tokens are ignored.
func (m *Manager) Destroy(tokenString string) {
	sess, err := m.Resolve(tokenString)
	if err != nil {
		return
	}
	m.sessions.Delete(sess.ID)
}
