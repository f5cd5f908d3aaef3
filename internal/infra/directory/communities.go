package directory

import (
	"context"
	"net/http"

	"ummana/internal/domain/entity"
)

const (
	pathCatchmentAreas        = "/catchment-areas"
	pathRegisterCatchmentArea = "/register-catchment-area"
	opListCommunities         = "list_communities"
	opCreateCommunity         = "create_community"
	opUpdateCommunity         = "update_community"
	opDeleteCommunity         = "delete_community"
)

// ListCommunities fetches every community.
func (c *Client) ListCommunities(ctx context.Context) ([]entity.Community, error) {
	var records []communityRecord
	if err := c.do(ctx, opListCommunities, http.MethodGet, pathCatchmentAreas, nil, &records); err != nil {
		return nil, err
	}

	communities := make([]entity.Community, 0, len(records))
	for _, r := range records {
		communities = append(communities, r.toEntity())
	}

	return communities, nil
}

// CreateCommunity registers a community and returns the ID assigned by the directory.
func (c *Client) CreateCommunity(ctx context.Context, community *entity.Community) (string, error) {
	var created createdResponse
	if err := c.do(ctx, opCreateCommunity, http.MethodPost, pathRegisterCatchmentArea, newCommunityBody(community), &created); err != nil {
		return "", err
	}

	return string(created.ID), nil
}

// UpdateCommunity replaces the community's editable fields.
func (c *Client) UpdateCommunity(ctx context.Context, community *entity.Community) error {
	return c.do(ctx, opUpdateCommunity, http.MethodPut, resource(pathCatchmentAreas, community.ID), newCommunityBody(community), nil)
}

// DeleteCommunity removes the community with the given ID.
func (c *Client) DeleteCommunity(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteCommunity, http.MethodDelete, resource(pathCatchmentAreas, id), nil, nil)
}
