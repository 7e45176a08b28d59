// Package auth proxies login and registration to the upstream and exchanges
// the upstream token for a console session.
package auth

import (
	"context"
	"fmt"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/session"
	"github.com/practiceos/console/pkg/errors"
)

// Result is what a successful login or registration hands back to the client:
// the console session token plus the upstream's profile fields. The upstream
// token itself never leaves the console.
type Result struct {
	SessionToken string `json:"session_token"`
	Kind         string `json:"kind"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Servicer defines the authentication operations.
type Servicer interface {
	PracticeLogin(ctx context.Context, req *model.LoginRequest) (*Result, error)
	PracticeRegister(ctx context.Context, req *model.RegisterRequest) (*Result, error)
	PatientLogin(ctx context.Context, req *model.LoginRequest) (*Result, error)
	PatientRegister(ctx context.Context, req *model.RegisterRequest) (*Result, error)
	GuestSession() (*Result, error)
	Logout(sessionToken string)
}

// Service implements Servicer over the upstream client and session manager.
type Service struct {
	api      apiclient.AuthAPI
	sessions *session.Manager
}

// NewService creates an auth service.
func NewService(api apiclient.AuthAPI, sessions *session.Manager) *Service {
	return &Service{api: api, sessions: sessions}
}

func (s *Service) PracticeLogin(ctx context.Context, req *model.LoginRequest) (*Result, error) {
	auth, err := s.api.PracticeLogin(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("practice login failed: %w", err)
	}
	return s.open(session.KindPractice, auth)
}

func (s *Service) PracticeRegister(ctx context.Context, req *model.RegisterRequest) (*Result, error) {
	auth, err := s.api.PracticeRegister(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("practice registration failed: %w", err)
	}
	return s.open(session.KindPractice, auth)
}

func (s *Service) PatientLogin(ctx context.Context, req *model.LoginRequest) (*Result, error) {
	auth, err := s.api.PatientLogin(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("patient login failed: %w", err)
	}
	return s.open(session.KindPatient, auth)
}

func (s *Service) PatientRegister(ctx context.Context, req *model.RegisterRequest) (*Result, error) {
	auth, err := s.api.PatientRegister(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("patient registration failed: %w", err)
	}
	return s.open(session.KindPatient, auth)
}

// GuestSession opens an anonymous patient session for browsing and booking.
func (s *Service) GuestSession() (*Result, error) {
	_, token, err := s.sessions.Create(session.KindPatient, "", "", "")
	if err != nil {
		return nil, err
	}
	return &Result{SessionToken: token, Kind: string(session.KindPatient)}, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *Service) Logout(sessionToken string) {
	s.sessions.Destroy(sessionToken)
}

func (s *Service) open(kind session.Kind, auth *model.AuthResult) (*Result, error) {
	if auth == nil || auth.Token == "" {
		return nil, errors.NewUpstream("login response missing token", nil)
	}
	name := auth.Name
	if name == "" {
		name = auth.FirstName
	}
	_, token, err := s.sessions.Create(kind, auth.Token, name, auth.Email)
	if err != nil {
		return nil, err
	}
	return &Result{
		SessionToken: token,
		Kind:         string(kind),
		Name:         name,
		Email:        auth.Email,
	}, nil
}
