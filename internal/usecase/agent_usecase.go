package usecase

import (
	"context"

	"ummana/internal/domain/entity"
)

// AgentQuery narrows the agent list. Ward and LGA match any linked community.
type AgentQuery struct {
	Search string
	Ward   string
	LGA    string
}

// AgentRow is an agent with its linked communities resolved for display.
type AgentRow struct {
	entity.Agent
	Name           string           `json:"name"`
	Areas          []entity.AreaRef `json:"areas"`
	PrimaryArea    entity.AreaRef   `json:"primaryArea"`
	CatchmentCount int              `json:"catchmentCount"`
}

type AgentPage struct {
	Items []AgentRow `json:"items"`
	Total int        `json:"total"`
	Wards []string   `json:"wards"`
	LGAs  []string   `json:"lgas"`
}

// AgentInput is the raw form input. CatchmentAreaIDs has one entry per picker slot.
type AgentInput struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds"`
}

// AgentUsecase manages CHIPS agents.
type AgentUsecase interface {
	List(ctx context.Context, query AgentQuery) (*AgentPage, error)
	Get(ctx context.Context, id string) (*AgentRow, error)

	// Reload discards the cached agents and communities.
	Reload(ctx context.Context)

	Create(ctx context.Context, input *AgentInput) (*AgentRow, error)
	Update(ctx context.Context, id string, input *AgentInput) (*AgentRow, error)
	Delete(ctx context.Context, id string) error
}
