package repository

import (
	"context"

	"ummana/internal/domain/entity"
)

// AgentRepository manages CHIPS agents.
type AgentRepository interface {
	ListAgents(ctx context.Context) ([]entity.Agent, error)

	// CreateAgent registers an agent and returns the ID assigned by the directory.
	CreateAgent(ctx context.Context, agent *entity.Agent) (string, error)

	UpdateAgent(ctx context.Context, agent *entity.Agent) error

	DeleteAgent(ctx context.Context, id string) error
}
