package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/practiceos/console/internal/model"
)

type membersResponse struct {
	Members []*model.PracticeMember `json:"members"`
}

func (c *Client) ListMembers(ctx context.Context, token string) ([]*model.PracticeMember, error) {
	var resp membersResponse
	if err := c.doAuthed(ctx, http.MethodGet, "/practice/members", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func (c *Client) AddMember(ctx context.Context, token string, req *model.AddMemberRequest) error {
	return c.doAuthed(ctx, http.MethodPost, "/practice/members", token, nil, req, nil)
}

func (c *Client) EditMember(ctx context.Context, token, memberEmail string, req *model.EditMemberRequest) error {
	query := url.Values{"member_email": {memberEmail}}
	return c.doAuthed(ctx, http.MethodPut, "/practice/members", token, query, req, nil)
}
