package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/pkg/errors"
)

type practicesResponse struct {
	Status    string                   `json:"status,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Practices []*model.PracticeListing `json:"practices"`
}

func (c *Client) ListPractices(ctx context.Context) ([]*model.PracticeListing, error) {
	var resp practicesResponse
	if err := c.do(ctx, http.MethodGet, "/patient/practices", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Practices, nil
}

func (c *Client) GetPractice(ctx context.Context, practiceUUID string) (*model.PracticeRecord, error) {
	path := fmt.Sprintf("/patient/practice/%s", practiceUUID)
	var record model.PracticeRecord
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// upstreamEnvelopeError converts a status:error envelope into an upstream
// error, falling back to generic text when the envelope carries none.
func upstreamEnvelopeError(message string) error {
	return errors.NewUpstream(message, fmt.Errorf("upstream rejected request"))
}
