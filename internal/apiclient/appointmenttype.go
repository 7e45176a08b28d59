package apiclient

import (
	"context"
	"net/http"

	"github.com/practiceos/console/internal/model"
)

type appointmentTypesResponse struct {
	Appointments []*model.AppointmentType `json:"appointments"`
}

func (c *Client) ListAppointmentTypes(ctx context.Context, token string) ([]*model.AppointmentType, error) {
	var resp appointmentTypesResponse
	if err := c.doAuthed(ctx, http.MethodGet, "/practice/appointment-types", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

func (c *Client) CreateAppointmentType(ctx context.Context, token string, req *model.CreateAppointmentTypeRequest) error {
	return c.doAuthed(ctx, http.MethodPost, "/practice/create-appointment-type", token, nil, req, nil)
}
