package apiclient

import (
	"context"
	"net/http"

	"github.com/practiceos/console/internal/model"
)

func (c *Client) GetCurrentPractice(ctx context.Context, token string) (*model.PracticeRecord, error) {
	var record model.PracticeRecord
	if err := c.doAuthed(ctx, http.MethodGet, "/practice/current-practice-details", token, nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) CreatePractice(ctx context.Context, token string, record *model.PracticeRecord) (*model.PracticeRecord, error) {
	var created model.PracticeRecord
	if err := c.doAuthed(ctx, http.MethodPost, "/practice/add-practice-setup", token, nil, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePractice(ctx context.Context, token string, record *model.PracticeRecord) (*model.PracticeRecord, error) {
	var updated model.PracticeRecord
	if err := c.doAuthed(ctx, http.MethodPut, "/practice/edit-practice-setup", token, nil, record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
