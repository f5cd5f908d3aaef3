package handler

import (
	"log/slog"
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AgentHandlerParams holds dependencies for AgentHandler, injected by Fx.
type AgentHandlerParams struct {
	fx.In

	AgentUC usecase.AgentUsecase
	Logger  *slog.Logger
}

// AgentHandler holds dependencies for CHIPS agent handlers
type AgentHandler struct {
	agentUC usecase.AgentUsecase
	logger  *slog.Logger
}

// NewAgentHandler is the constructor for AgentHandler
func NewAgentHandler(params AgentHandlerParams) *AgentHandler {
	return &AgentHandler{
		agentUC: params.AgentUC,
		logger:  params.Logger,
	}
}

// ListAgentsRequest carries the search box and the ward and LGA filters.
type ListAgentsRequest struct {
	Search string `query:"q" validate:"max=200"`
	Ward   string `query:"ward" validate:"max=200"`
	LGA    string `query:"lga" validate:"max=200"`
}

// AgentRequest is the body of an agent create or update.
// Empty catchment entries stand for unfilled picker slots.
type AgentRequest struct {
	FirstName        string   `json:"firstName" validate:"max=100"`
	LastName         string   `json:"lastName" validate:"max=100"`
	PhoneNumber      string   `json:"phoneNumber" validate:"max=32"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds" validate:"max=32,dive,max=64"`
}

func (r *AgentRequest) toInput() *usecase.AgentInput {
	return &usecase.AgentInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		CatchmentAreaIDs: r.CatchmentAreaIDs,
	}
}

// ListAgents handles the filtered agent list
func (h *AgentHandler) ListAgents(c echo.Context) error {
	var req ListAgentsRequest
	if err := bindQuery(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent filters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.agentUC.List(c.Request().Context(), usecase.AgentQuery{
		Search: req.Search,
		Ward:   req.Ward,
		LGA:    req.LGA,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "CHIPS agents retrieved successfully")
}

// ReloadAgents drops the cached agents and communities and lists again
func (h *AgentHandler) ReloadAgents(c echo.Context) error {
	h.agentUC.Reload(c.Request().Context())

	return h.ListAgents(c)
}

// CreateAgent handles creating a CHIPS agent
func (h *AgentHandler) CreateAgent(c echo.Context) error {
	var req AgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	agent, err := h.agentUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, agent, "CHIPS agent created successfully")
}

// UpdateAgent handles updating a CHIPS agent
func (h *AgentHandler) UpdateAgent(c echo.Context) error {
	var req AgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	agent, err := h.agentUC.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agent, "CHIPS agent updated successfully")
}
