package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/availability"
	"github.com/practiceos/console/internal/form"
	"github.com/practiceos/console/internal/mapping"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

// PractitionerSetup drives the practitioner profile screens: basic info,
// professional info and the weekly availability editor.
type PractitionerSetup struct {
	api   apiclient.PractitionerAPI
	cache store.Store
	ttl   time.Duration

	mode             Mode
	loaded           bool
	practitionerUUID string
	canonical        *model.Practitioner

	basic        *form.BasicInfoSection
	professional *form.ProfessionalInfoSection
	editor       *availability.Editor

	draftBasic        model.PractitionerBasicInfo
	draftProfessional model.PractitionerProfessionalInfo
	dirty             mapping.FieldSet
	saveErr           error
}

// NewPractitionerSetup creates an orchestrator. An empty practitionerUUID
// means create mode; the availability editor binds to the created record
// after the first save.
func NewPractitionerSetup(api apiclient.PractitionerAPI, cache store.Store, ttl time.Duration, practitionerUUID string) *PractitionerSetup {
	s := &PractitionerSetup{
		api:              api,
		cache:            cache,
		ttl:              ttl,
		practitionerUUID: practitionerUUID,
		mode:             ModeEdit,
		dirty:            mapping.NewFieldSet(),
	}
	if practitionerUUID == "" {
		s.mode = ModeCreate
	}
	s.basic = form.NewBasicInfoSection(func(b model.PractitionerBasicInfo) { s.draftBasic = b })
	s.professional = form.NewProfessionalInfoSection(func(p model.PractitionerProfessionalInfo) { s.draftProfessional = p })
	s.editor = availability.NewEditor(api, practitionerUUID)

	if s.mode == ModeCreate {
		s.seedSections(model.PractitionerBasicInfo{}, model.PractitionerProfessionalInfo{})
		s.loaded = true
	}
	return s
}

// Load fetches the practitioner record and availability once and seeds the
// sections. Repeat calls are no-ops.
func (s *PractitionerSetup) Load(ctx context.Context, token string) error {
	if s.loaded {
		return nil
	}
	return s.Refresh(ctx, token)
}

// Refresh refetches the practitioner and availability and re-seeds,
// discarding unsaved edits.
func (s *PractitionerSetup) Refresh(ctx context.Context, token string) error {
	record, err := s.fetch(ctx, token)
	if err != nil {
		return err
	}
	if record == nil {
		return errors.NewNotFound("practitioner", nil)
	}
	s.canonical = record
	basic, professional := mapping.PractitionerFromUpstream(record)
	s.seedSections(basic, professional)
	if err := s.editor.Load(ctx, token); err != nil {
		return err
	}
	s.dirty.Clear()
	s.saveErr = nil
	s.loaded = true
	return nil
}

func (s *PractitionerSetup) fetch(ctx context.Context, token string) (*model.Practitioner, error) {
	key := store.Key("practitioners", token)
	var cached []*model.Practitioner
	found := false
	if s.cache != nil {
		_, found = s.cache.Get(ctx, key, &cached)
	}
	if !found {
		list, err := s.api.ListPractitioners(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("failed to load practitioners: %w", err)
		}
		cached = list
		if s.cache != nil {
			_ = s.cache.Set(ctx, key, list, s.ttl)
		}
	}
	for _, p := range cached {
		if p != nil && p.PractitionerUUID == s.practitionerUUID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *PractitionerSetup) seedSections(basic model.PractitionerBasicInfo, professional model.PractitionerProfessionalInfo) {
	s.basic.Seed(basic)
	s.professional.Seed(professional)
	s.draftBasic = s.basic.Value()
	s.draftProfessional = s.professional.Value()
}

func (s *PractitionerSetup) BasicInfo() model.PractitionerBasicInfo {
	return s.basic.Value()
}

func (s *PractitionerSetup) ProfessionalInfo() model.PractitionerProfessionalInfo {
	return s.professional.Value()
}

// Availability exposes the slot editor; its edits are saved alongside the
// profile.
func (s *PractitionerSetup) Availability() *availability.Editor { return s.editor }
func (s *PractitionerSetup) Mode() Mode                         { return s.mode }
func (s *PractitionerSetup) Dirty() bool                        { return !s.dirty.Empty() }
func (s *PractitionerSetup) PractitionerUUID() string           { return s.practitionerUUID }

// SaveError reports the most recent failed save. Any subsequent edit clears
// it.
func (s *PractitionerSetup) SaveError() error { return s.saveErr }

func (s *PractitionerSetup) touch(field string) {
	s.saveErr = nil
	s.dirty.Mark(field)
}

func (s *PractitionerSetup) SetDisplayName(name string) {
	s.touch(mapping.FieldDisplayName)
	s.basic.SetDisplayName(name)
}

func (s *PractitionerSetup) SetProfession(profession string) {
	s.touch(mapping.FieldProfession)
	s.basic.SetProfession(profession)
}

func (s *PractitionerSetup) SetQualifications(q string) {
	s.touch(mapping.FieldQualifications)
	s.basic.SetQualifications(q)
}

func (s *PractitionerSetup) SetEducation(education string) {
	s.touch(mapping.FieldEducation)
	s.basic.SetEducation(education)
}

func (s *PractitionerSetup) SetLanguagesSpoken(languages string) {
	s.touch(mapping.FieldLanguagesSpoken)
	s.basic.SetLanguagesSpoken(languages)
}

func (s *PractitionerSetup) SetGender(gender string) {
	s.touch(mapping.FieldGender)
	s.basic.SetGender(gender)
}

func (s *PractitionerSetup) SetLinkToBestPractice(link string) {
	s.touch(mapping.FieldLinkToBestPractice)
	s.professional.SetLinkToBestPractice(link)
}

func (s *PractitionerSetup) SetProfessionalStatement(statement string) {
	s.touch(mapping.FieldProfessionalStatement)
	s.professional.SetProfessionalStatement(statement)
}

func (s *PractitionerSetup) SetAreaOfInterest(name string, interested bool) {
	s.touch(mapping.FieldAreasOfInterest)
	s.professional.SetAreaOfInterest(name, interested)
}

// Save persists the profile draft and then the availability draft. Create
// mode posts the full record and binds the editor to the returned uuid before
// saving slots; edit mode sends only touched fields.
func (s *PractitionerSetup) Save(ctx context.Context, token string) error {
	if !s.loaded {
		return errors.NewValidation("practitioner setup not loaded")
	}

	switch s.mode {
	case ModeCreate:
		if s.draftBasic.DisplayName == "" {
			return errors.NewValidation("display name is required")
		}
		record := mapping.PractitionerToUpstream(s.draftBasic, s.draftProfessional, nil)
		created, err := s.api.CreatePractitioner(ctx, token, record)
		if err != nil {
			s.saveErr = err
			return fmt.Errorf("failed to create practitioner: %w", err)
		}
		if created == nil || created.PractitionerUUID == "" {
			return errors.NewUpstream("practitioner created without a uuid", nil)
		}
		s.practitionerUUID = created.PractitionerUUID
		s.canonical = created
		s.editor = s.editor.Rebind(created.PractitionerUUID)
		s.mode = ModeEdit
	default:
		if s.dirty.Empty() {
			break
		}
		record := mapping.PractitionerToUpstream(s.draftBasic, s.draftProfessional, s.dirty)
		updated, err := s.api.UpdatePractitioner(ctx, token, s.practitionerUUID, record)
		if err != nil {
			s.saveErr = err
			return fmt.Errorf("failed to update practitioner: %w", err)
		}
		if updated != nil {
			s.canonical = updated
		}
	}

	if err := s.editor.Save(ctx, token); err != nil {
		s.saveErr = err
		return err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, store.Key("practitioners", token))
	}
	return s.Refresh(ctx, token)
}

// Cancel discards profile edits, re-seeding from the canonical record. The
// availability draft is reloaded on the next Refresh.
func (s *PractitionerSetup) Cancel() {
	basic, professional := mapping.PractitionerFromUpstream(s.canonical)
	s.seedSections(basic, professional)
	s.dirty.Clear()
	s.saveErr = nil
}
