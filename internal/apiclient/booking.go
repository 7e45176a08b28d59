package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/practiceos/console/internal/model"
)

func (c *Client) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	var doctors []*model.Doctor
	if err := c.do(ctx, http.MethodGet, "/booking/doctors", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *Client) ListDoctorAvailability(ctx context.Context, doctorID int, includeBooked bool) ([]*model.BookingSlot, error) {
	path := fmt.Sprintf("/booking/doctors/%d/availability", doctorID)
	query := url.Values{}
	if includeBooked {
		query.Set("include_booked", "true")
	}
	var slots []*model.BookingSlot
	if err := c.do(ctx, http.MethodGet, path, query, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, "/booking/", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
