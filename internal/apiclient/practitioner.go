package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/practiceos/console/internal/model"
)

// CreateAvailabilityRequest is the availability creation payload. The
// upstream assigns the availability_uuid.
type CreateAvailabilityRequest struct {
	DayOfWeek model.Day `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type practitionersResponse struct {
	Practitioners []*model.Practitioner `json:"practitioners"`
}

type availabilityResponse struct {
	AvailabilitySlots []*model.AvailabilitySlot `json:"availability_slots"`
}

func (c *Client) ListPractitioners(ctx context.Context, token string) ([]*model.Practitioner, error) {
	var resp practitionersResponse
	if err := c.doAuthed(ctx, http.MethodGet, "/practice/practitioners", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Practitioners, nil
}

func (c *Client) CreatePractitioner(ctx context.Context, token string, record *model.Practitioner) (*model.Practitioner, error) {
	var created model.Practitioner
	if err := c.doAuthed(ctx, http.MethodPost, "/practice/add-practitioner", token, nil, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePractitioner(ctx context.Context, token, practitionerUUID string, record *model.Practitioner) (*model.Practitioner, error) {
	query := url.Values{"practitioner_uuid": {practitionerUUID}}
	var updated model.Practitioner
	if err := c.doAuthed(ctx, http.MethodPut, "/practice/edit-practitioner", token, query, record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ListAvailability(ctx context.Context, token, practitionerUUID string) ([]*model.AvailabilitySlot, error) {
	path := fmt.Sprintf("/practice/practitioners/%s/availability", practitionerUUID)
	var resp availabilityResponse
	if err := c.doAuthed(ctx, http.MethodGet, path, token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AvailabilitySlots, nil
}

func (c *Client) CreateAvailability(ctx context.Context, token, practitionerUUID string, slot CreateAvailabilityRequest) error {
	path := fmt.Sprintf("/practice/practitioners/%s/availability", practitionerUUID)
	return c.doAuthed(ctx, http.MethodPost, path, token, nil, slot, nil)
}
