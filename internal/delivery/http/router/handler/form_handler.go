package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ummana/internal/delivery/http/response"
	"ummana/internal/domain/entity"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FormHandlerParams holds dependencies for FormHandler, injected by Fx.
type FormHandlerParams struct {
	fx.In

	FormUC usecase.FormUsecase
	Logger *slog.Logger
}

// FormHandler drives open create and edit forms.
type FormHandler struct {
	formUC usecase.FormUsecase
	logger *slog.Logger
}

// NewFormHandler is the constructor for FormHandler
func NewFormHandler(params FormHandlerParams) *FormHandler {
	return &FormHandler{
		formUC: params.FormUC,
		logger: params.Logger,
	}
}

// OpenFormRequest opens a create form, or an edit form when EditID is set.
type OpenFormRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=community agent driver facility"`
	EditID string `json:"editId" validate:"max=64"`
}

// SetFieldsRequest overwrites text fields of the form.
type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,max=16,dive,max=200"`
}

// SlotSearchRequest is the text typed into a community slot.
type SlotSearchRequest struct {
	Text string `json:"text" validate:"max=200"`
}

// SlotSelectionRequest picks a community from a slot's dropdown.
type SlotSelectionRequest struct {
	CommunityID string `json:"communityId" validate:"required,max=64"`
}

// PointerRequest reports a pointer press; Region is empty outside any slot.
type PointerRequest struct {
	Region string `json:"region" validate:"max=64"`
}

// OpenForm handles opening a form draft
func (h *FormHandler) OpenForm(c echo.Context) error {
	var req OpenFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.formUC.Open(c.Request().Context(), entity.Kind(req.Kind), req.EditID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, draft, "Form opened successfully")
}

// GetForm handles reading a form draft
func (h *FormHandler) GetForm(c echo.Context) error {
	draft, err := h.formUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Form retrieved successfully")
}

// CloseForm discards a form draft without saving
func (h *FormHandler) CloseForm(c echo.Context) error {
	if err := h.formUC.Close(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Form closed")
}

// SetFields handles typing into text fields
func (h *FormHandler) SetFields(c echo.Context) error {
	var req SetFieldsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form fields")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.formUC.SetFields(c.Request().Context(), c.Param("id"), req.Fields)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Form updated")
}

// AddSlot appends an empty community slot
func (h *FormHandler) AddSlot(c echo.Context) error {
	draft, err := h.formUC.AddSlot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Community slot added")
}

// RemoveSlot removes a community slot
func (h *FormHandler) RemoveSlot(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid slot index")
	}

	draft, err := h.formUC.RemoveSlot(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Community slot removed")
}

// SearchSlot filters the communities offered by a slot
func (h *FormHandler) SearchSlot(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid slot index")
	}

	var req SlotSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.formUC.SearchSlot(c.Request().Context(), c.Param("id"), index, req.Text)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Community search updated")
}

// SelectSlot picks a community for a slot
func (h *FormHandler) SelectSlot(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid slot index")
	}

	var req SlotSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.formUC.SelectSlot(c.Request().Context(), c.Param("id"), index, req.CommunityID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Community selected")
}

// PointerDown closes the dropdowns of every slot outside the pressed region
func (h *FormHandler) PointerDown(c echo.Context) error {
	var req PointerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pointer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.formUC.PointerDown(c.Request().Context(), c.Param("id"), req.Region)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Form updated")
}

// ToggleCapability flips one capability checkbox of a facility form
func (h *FormHandler) ToggleCapability(c echo.Context) error {
	key := entity.CapabilityKey(c.Param("key"))

	draft, err := h.formUC.ToggleCapability(c.Request().Context(), c.Param("id"), key)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Capability updated")
}

// SubmitForm validates and saves the form. A failed save keeps the form open.
func (h *FormHandler) SubmitForm(c echo.Context) error {
	result, err := h.formUC.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	status := http.StatusOK
	if result.Mode == usecase.FormModeCreate {
		status = http.StatusCreated
	}

	return response.Success(c, status, result, "Saved successfully")
}

func slotIndex(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}
