package apiclient

import (
	"context"
	"net/http"

	"github.com/practiceos/console/internal/model"
)

func (c *Client) PracticeLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/practice/login", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) PracticeRegister(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/practice/register", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Patient login/registration responses arrive wrapped in a status envelope.
type patientAuthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    *model.AuthResult `json:"data,omitempty"`
}

func (c *Client) PatientLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error) {
	var resp patientAuthResponse
	if err := c.do(ctx, http.MethodPost, "/patient/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Data == nil {
		return nil, upstreamEnvelopeError(resp.Message)
	}
	return resp.Data, nil
}

func (c *Client) PatientRegister(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error) {
	var resp patientAuthResponse
	if err := c.do(ctx, http.MethodPost, "/patient/register", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Data == nil {
		return nil, upstreamEnvelopeError(resp.Message)
	}
	return resp.Data, nil
}
