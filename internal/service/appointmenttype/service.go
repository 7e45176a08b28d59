// Package appointmenttype manages the practice's consultation type
// configuration.
package appointmenttype

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

// Servicer defines the appointment type operations.
type Servicer interface {
	List(ctx context.Context, token string) ([]*model.AppointmentType, error)
	Create(ctx context.Context, token string, req *model.CreateAppointmentTypeRequest) error
}

// Service implements Servicer over the upstream client with a read cache.
type Service struct {
	api   apiclient.AppointmentTypeAPI
	cache store.Store
	ttl   time.Duration
}

// NewService creates an appointment type service. cache may be nil.
func NewService(api apiclient.AppointmentTypeAPI, cache store.Store, ttl time.Duration) *Service {
	return &Service{api: api, cache: cache, ttl: ttl}
}

// List returns the configured appointment types, served from cache while
// fresh.
func (s *Service) List(ctx context.Context, token string) ([]*model.AppointmentType, error) {
	key := store.Key("appointment_types", token)
	var cached []*model.AppointmentType
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	types, err := s.api.ListAppointmentTypes(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointment types: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, types, s.ttl)
	}
	return types, nil
}

// Create adds an appointment type and invalidates the list. The duration
// travels as a string upstream but must parse to a positive whole number of
// minutes.
func (s *Service) Create(ctx context.Context, token string, req *model.CreateAppointmentTypeRequest) error {
	if err := s.validateCreate(req); err != nil {
		return err
	}
	if err := s.api.CreateAppointmentType(ctx, token, req); err != nil {
		return fmt.Errorf("failed to create appointment type: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, store.Key("appointment_types", token))
	}
	return nil
}

func (s *Service) validateCreate(req *model.CreateAppointmentTypeRequest) error {
	if req == nil {
		return errors.NewValidation("request body is required")
	}
	minutes, err := strconv.Atoi(req.AppointmentPatientDuration)
	if err != nil || minutes <= 0 {
		return errors.NewValidation("duration must be a positive number of minutes")
	}
	return nil
}
