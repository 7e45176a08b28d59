// Package member manages practice staff membership through the upstream API.
package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

// Servicer defines the member management operations.
type Servicer interface {
	List(ctx context.Context, token string) ([]*model.PracticeMember, error)
	Add(ctx context.Context, token string, req *model.AddMemberRequest) error
	Edit(ctx context.Context, token, memberEmail string, req *model.EditMemberRequest) error
}

// Service implements Servicer over the upstream client with a read cache.
type Service struct {
	api   apiclient.MemberAPI
	cache store.Store
	ttl   time.Duration
}

// NewService creates a member service. cache may be nil.
func NewService(api apiclient.MemberAPI, cache store.Store, ttl time.Duration) *Service {
	return &Service{api: api, cache: cache, ttl: ttl}
}

// List returns the practice's members, served from cache while fresh.
func (s *Service) List(ctx context.Context, token string) ([]*model.PracticeMember, error) {
	key := store.Key("members", token)
	var cached []*model.PracticeMember
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	members, err := s.api.ListMembers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, members, s.ttl)
	}
	return members, nil
}

// Add invites a member and invalidates the member list.
func (s *Service) Add(ctx context.Context, token string, req *model.AddMemberRequest) error {
	if err := s.validateAdd(ctx, token, req); err != nil {
		return err
	}
	if err := s.api.AddMember(ctx, token, req); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	s.invalidate(ctx, token)
	return nil
}

// Edit updates a member's role or active flag and invalidates the list.
func (s *Service) Edit(ctx context.Context, token, memberEmail string, req *model.EditMemberRequest) error {
	if memberEmail == "" {
		return errors.NewValidation("member email is required")
	}
	if req.Role == nil && req.IsActive == nil {
		return errors.NewValidation("nothing to update")
	}
	if req.Role != nil && *req.Role == model.RoleOwner {
		return errors.NewValidation("ownership cannot be assigned")
	}
	if err := s.api.EditMember(ctx, token, memberEmail, req); err != nil {
		return fmt.Errorf("failed to edit member: %w", err)
	}
	s.invalidate(ctx, token)
	return nil
}

func (s *Service) validateAdd(ctx context.Context, token string, req *model.AddMemberRequest) error {
	if req == nil || req.Email == "" {
		return errors.NewValidation("member email is required")
	}
	members, err := s.List(ctx, token)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m != nil && strings.EqualFold(m.Email, req.Email) {
			return errors.NewValidation("member already exists")
		}
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, token string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, store.Key("members", token))
	}
}
