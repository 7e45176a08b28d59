// Package availability implements the weekly availability editor for a
// practitioner. Slots are tracked by a locally assigned id so edits stay
// addressable before the upstream has persisted them.
package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
)

// Editor holds the draft slot list for one practitioner.
type Editor struct {
	api              apiclient.PractitionerAPI
	practitionerUUID string
	slots            []model.AvailabilitySlot
}

// NewEditor creates an empty editor bound to one practitioner.
func NewEditor(api apiclient.PractitionerAPI, practitionerUUID string) *Editor {
	return &Editor{
		api:              api,
		practitionerUUID: practitionerUUID,
		slots:            []model.AvailabilitySlot{},
	}
}

// Rebind returns an editor for another practitioner carrying the current
// draft. Used when a create flow learns the upstream id after the first save.
func (e *Editor) Rebind(practitionerUUID string) *Editor {
	return &Editor{api: e.api, practitionerUUID: practitionerUUID, slots: e.slots}
}

// Load replaces the draft with the persisted slots. Each slot gets a fresh
// local id.
func (e *Editor) Load(ctx context.Context, token string) error {
	persisted, err := e.api.ListAvailability(ctx, token, e.practitionerUUID)
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}
	slots := make([]model.AvailabilitySlot, 0, len(persisted))
	for _, persistedSlot := range persisted {
		if persistedSlot == nil {
			continue
		}
		slot := *persistedSlot
		slot.LocalID = uuid.New()
		slot.DayName = slot.DayOfWeek.Name()
		slots = append(slots, slot)
	}
	e.slots = slots
	return nil
}

// AddSlot appends a new active slot after validating the time range and
// checking for overlap against the active slots already on that day.
// Intervals are half-open, so a slot starting exactly when another ends is
// accepted.
func (e *Editor) AddSlot(day model.Day, start, end string) (model.AvailabilitySlot, error) {
	if !day.Valid() {
		return model.AvailabilitySlot{}, errors.NewValidation("invalid day of week")
	}
	if start == "" || end == "" {
		return model.AvailabilitySlot{}, errors.NewValidation("start and end times are required")
	}
	if start >= end {
		return model.AvailabilitySlot{}, errors.NewValidation("start time must be before end time")
	}
	for _, existing := range e.slots {
		if !existing.IsActive || existing.DayOfWeek != day {
			continue
		}
		if start < existing.EndTime && existing.StartTime < end {
			return model.AvailabilitySlot{}, errors.NewValidation(
				fmt.Sprintf("slot overlaps existing %s slot %s-%s", day.Name(), existing.StartTime, existing.EndTime))
		}
	}

	slot := model.AvailabilitySlot{
		LocalID:   uuid.New(),
		DayOfWeek: day,
		DayName:   day.Name(),
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
	e.slots = append(e.slots, slot)
	return slot, nil
}

// RemoveSlot drops a draft slot by its local id.
func (e *Editor) RemoveSlot(localID uuid.UUID) bool {
	for i, slot := range e.slots {
		if slot.LocalID == localID {
			e.slots = append(e.slots[:i], e.slots[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleActive flips a slot's active flag by its local id. Inactive slots are
// excluded from overlap checks and from saves.
func (e *Editor) ToggleActive(localID uuid.UUID) bool {
	for i := range e.slots {
		if e.slots[i].LocalID == localID {
			e.slots[i].IsActive = !e.slots[i].IsActive
			return true
		}
	}
	return false
}

// Slots returns a copy of the draft list.
func (e *Editor) Slots() []model.AvailabilitySlot {
	out := make([]model.AvailabilitySlot, len(e.slots))
	copy(out, e.slots)
	return out
}

// SlotsByDay groups the draft by weekday, preserving insertion order within a
// day.
func (e *Editor) SlotsByDay() map[model.Day][]model.AvailabilitySlot {
	grouped := make(map[model.Day][]model.AvailabilitySlot)
	for _, slot := range e.slots {
		grouped[slot.DayOfWeek] = append(grouped[slot.DayOfWeek], slot)
	}
	return grouped
}

// Save persists every active slot that has no upstream id yet, one create per
// slot, then reloads the list so local ids map onto persisted records. A
// failed create aborts the batch; earlier creates in the batch are already
// persisted at that point.
func (e *Editor) Save(ctx context.Context, token string) error {
	for _, slot := range e.slots {
		if !slot.IsActive || slot.AvailabilityUUID != "" {
			continue
		}
		req := apiclient.CreateAvailabilityRequest{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
		if err := e.api.CreateAvailability(ctx, token, e.practitionerUUID, req); err != nil {
			return fmt.Errorf("failed to save %s slot %s-%s: %w", slot.DayName, slot.StartTime, slot.EndTime, err)
		}
	}
	return e.Load(ctx, token)
}
