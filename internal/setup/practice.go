// Package setup holds the orchestrators behind the practice and practitioner
// setup screens. An orchestrator owns the canonical upstream record, seeds the
// form sections from it, merges their edits into a draft, and tracks which
// fields the user actually touched so saves stay sparse.
package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/form"
	"github.com/practiceos/console/internal/mapping"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

// Mode says whether a setup screen creates a new record or edits an existing
// one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// PracticeSetup drives the practice profile and timings screens.
type PracticeSetup struct {
	api   apiclient.PracticeAPI
	cache store.Store
	ttl   time.Duration

	mode      Mode
	loaded    bool
	canonical *model.PracticeRecord

	profile *form.ProfileSection
	timings *form.TimingsSection

	draftProfile model.PracticeProfile
	draftTimings model.PracticeTimings
	dirty        mapping.FieldSet
	saveErr      error
}

// NewPracticeSetup creates an orchestrator. ModeCreate starts from the
// default draft without touching the upstream; ModeEdit expects a Load before
// edits.
func NewPracticeSetup(api apiclient.PracticeAPI, cache store.Store, ttl time.Duration, mode Mode) *PracticeSetup {
	s := &PracticeSetup{
		api:   api,
		cache: cache,
		ttl:   ttl,
		mode:  mode,
		dirty: mapping.NewFieldSet(),
	}
	s.profile = form.NewProfileSection(func(p model.PracticeProfile) { s.draftProfile = p })
	s.timings = form.NewTimingsSection(func(t model.PracticeTimings) { s.draftTimings = t })

	if mode == ModeCreate {
		s.seedSections(model.PracticeProfile{}, model.PracticeTimings{})
		s.loaded = true
	}
	return s
}

// Load fetches the practice record once and seeds the sections from it.
// Repeat calls are no-ops; Refresh forces a refetch.
func (s *PracticeSetup) Load(ctx context.Context, token string) error {
	if s.loaded {
		return nil
	}
	return s.Refresh(ctx, token)
}

// Refresh refetches the canonical record, preferring the shared cache, and
// re-seeds the sections. Unsaved edits are discarded.
func (s *PracticeSetup) Refresh(ctx context.Context, token string) error {
	record, err := s.fetch(ctx, token)
	if err != nil {
		return err
	}
	s.canonical = record
	profile, timings := mapping.PracticeFromUpstream(record)
	s.seedSections(profile, timings)
	s.dirty.Clear()
	s.saveErr = nil
	s.loaded = true
	return nil
}

func (s *PracticeSetup) fetch(ctx context.Context, token string) (*model.PracticeRecord, error) {
	key := store.Key("practice", token)
	var cached model.PracticeRecord
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return &cached, nil
		}
	}
	record, err := s.api.GetCurrentPractice(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load practice: %w", err)
	}
	if s.cache != nil && record != nil {
		_ = s.cache.Set(ctx, key, record, s.ttl)
	}
	return record, nil
}

func (s *PracticeSetup) seedSections(profile model.PracticeProfile, timings model.PracticeTimings) {
	s.profile.Seed(profile)
	s.timings.SeedOrDefault(timings)
	s.draftProfile = s.profile.Value()
	s.draftTimings = s.timings.Value()
}

// Profile and Timings expose the sections for reads; edits go through the
// orchestrator's typed methods so dirtiness stays accurate.
func (s *PracticeSetup) Profile() model.PracticeProfile   { return s.profile.Value() }
func (s *PracticeSetup) Timings() model.PracticeTimings   { return s.timings.Value() }
func (s *PracticeSetup) Mode() Mode                       { return s.mode }
func (s *PracticeSetup) Dirty() bool                      { return !s.dirty.Empty() }
func (s *PracticeSetup) DirtyFields() []string            { return fieldNames(s.dirty) }
func (s *PracticeSetup) Canonical() *model.PracticeRecord { return s.canonical }

// SaveError reports the most recent failed save. Any subsequent edit clears
// it.
func (s *PracticeSetup) SaveError() error { return s.saveErr }

func (s *PracticeSetup) touch(field string) {
	s.saveErr = nil
	s.dirty.Mark(field)
}

func (s *PracticeSetup) SetPracticeName(name string) {
	s.touch(mapping.FieldPracticeName)
	s.profile.SetPracticeName(name)
}

func (s *PracticeSetup) SetPhoneNumber(phone string) {
	s.touch(mapping.FieldPhoneNumber)
	s.profile.SetPhoneNumber(phone)
}

func (s *PracticeSetup) SetWebsite(website string) {
	s.touch(mapping.FieldWebsite)
	s.profile.SetWebsite(website)
}

func (s *PracticeSetup) SetAccreditation(body string) {
	s.touch(mapping.FieldAccreditation)
	s.profile.SetAccreditation(body)
}

func (s *PracticeSetup) SetFacebookURL(u string) {
	s.touch(mapping.FieldFacebookURL)
	s.profile.SetFacebookURL(u)
}

func (s *PracticeSetup) SetTwitterURL(u string) {
	s.touch(mapping.FieldTwitterURL)
	s.profile.SetTwitterURL(u)
}

func (s *PracticeSetup) SetAboutPractice(text string) {
	s.touch(mapping.FieldAboutPractice)
	s.profile.SetAboutPractice(text)
}

func (s *PracticeSetup) SetWheelchairAccess(enabled bool) {
	s.touch(mapping.FieldWheelchairAccess)
	s.profile.SetWheelchairAccess(enabled)
}

func (s *PracticeSetup) AddFacility(facility string) {
	s.touch(mapping.FieldFacilities)
	s.profile.AddFacility(facility)
}

func (s *PracticeSetup) RemoveFacility(index int) {
	s.touch(mapping.FieldFacilities)
	s.profile.RemoveFacility(index)
}

func (s *PracticeSetup) ToggleDay(day model.Weekday) {
	s.touch(mapping.FieldOpeningHours)
	s.timings.ToggleDay(day)
}

func (s *PracticeSetup) AddTimeSlot(day model.Weekday) {
	s.touch(mapping.FieldOpeningHours)
	s.timings.AddTimeSlot(day)
}

func (s *PracticeSetup) RemoveTimeSlot(day model.Weekday, index int) {
	s.touch(mapping.FieldOpeningHours)
	s.timings.RemoveTimeSlot(day, index)
}

func (s *PracticeSetup) UpdateTimeSlot(day model.Weekday, index int, start, end string) {
	s.touch(mapping.FieldOpeningHours)
	s.timings.UpdateTimeSlot(day, index, start, end)
}

func (s *PracticeSetup) AddException() {
	s.touch(mapping.FieldExceptions)
	s.timings.AddException()
}

func (s *PracticeSetup) RemoveException(index int) {
	s.touch(mapping.FieldExceptions)
	s.timings.RemoveException(index)
}

func (s *PracticeSetup) UpdateException(index int, date, reason string) {
	s.touch(mapping.FieldExceptions)
	s.timings.UpdateException(index, date, reason)
}

func (s *PracticeSetup) SetAlertMessage(message string) {
	s.touch(mapping.FieldAlertMessage)
	s.timings.SetAlertMessage(message)
}

// Save persists the draft. Edit mode sends only the touched fields; create
// mode sends everything value-bearing. On success the cache entry is dropped,
// the canonical record is refetched and the sections re-seed from it.
func (s *PracticeSetup) Save(ctx context.Context, token string) error {
	if !s.loaded {
		return errors.NewValidation("practice setup not loaded")
	}
	if s.mode == ModeEdit && s.dirty.Empty() {
		return nil
	}

	var err error
	switch s.mode {
	case ModeCreate:
		record := mapping.PracticeToUpstream(s.draftProfile, s.draftTimings, nil)
		_, err = s.api.CreatePractice(ctx, token, record)
	default:
		record := mapping.PracticeToUpstream(s.draftProfile, s.draftTimings, s.dirty)
		_, err = s.api.UpdatePractice(ctx, token, record)
	}
	if err != nil {
		s.saveErr = err
		return fmt.Errorf("failed to save practice: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, store.Key("practice", token))
	}
	s.mode = ModeEdit
	return s.Refresh(ctx, token)
}

// Cancel discards the draft, re-seeding the sections from the canonical
// record without an upstream round trip.
func (s *PracticeSetup) Cancel() {
	profile, timings := mapping.PracticeFromUpstream(s.canonical)
	s.seedSections(profile, timings)
	s.dirty.Clear()
	s.saveErr = nil
}

func fieldNames(set mapping.FieldSet) []string {
	names := make([]string, 0, len(set))
	for name, touched := range set {
		if touched {
			names = append(names, name)
		}
	}
	return names
}
