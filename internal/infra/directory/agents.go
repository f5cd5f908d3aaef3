package directory

import (
	"context"
	"net/http"

	"ummana/internal/domain/entity"
)

const (
	pathChipsAgents      = "/chips-agents"
	pathRegisterChips    = "/register-chips"
	pathUpdateChipsAgent = "/update-chips-agent"
	opListAgents         = "list_agents"
	opCreateAgent        = "create_agent"
	opUpdateAgent        = "update_agent"
	opDeleteAgent        = "delete_agent"
)

// ListAgents fetches every CHIPS agent from GET /chips-agents.
func (c *Client) ListAgents(ctx context.Context) ([]entity.Agent, error) {
	var records []agentRecord
	if err := c.do(ctx, opListAgents, http.MethodGet, pathChipsAgents, nil, &records); err != nil {
		return nil, err
	}

	agents := make([]entity.Agent, 0, len(records))
	for _, r := range records {
		agents = append(agents, r.toEntity())
	}

	return agents, nil
}

// CreateAgent registers an agent and returns the ID assigned by the directory.
func (c *Client) CreateAgent(ctx context.Context, agent *entity.Agent) (string, error) {
	var created createdResponse
	if err := c.do(ctx, opCreateAgent, http.MethodPost, pathRegisterChips, newAgentBody(agent), &created); err != nil {
		return "", err
	}

	return string(created.ID), nil
}

// UpdateAgent replaces the agent's editable fields.
func (c *Client) UpdateAgent(ctx context.Context, agent *entity.Agent) error {
	return c.do(ctx, opUpdateAgent, http.MethodPatch, resource(pathUpdateChipsAgent, agent.ID), newAgentBody(agent), nil)
}

// DeleteAgent removes the agent with the given ID.
func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteAgent, http.MethodDelete, resource(pathChipsAgents, id), nil, nil)
}
