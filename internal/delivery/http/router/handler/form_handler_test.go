package handler

import (
	"net/http"
	"testing"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	mockUC "ummana/internal/mocks/usecase"
	"ummana/internal/picker"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFormEcho(t *testing.T) (*mockUC.MockFormUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUC.NewMockFormUsecase(t)
	h := NewFormHandler(FormHandlerParams{FormUC: uc})

	e := newTestEcho()
	e.POST("/forms", h.OpenForm)
	e.GET("/forms/:id", h.GetForm)
	e.DELETE("/forms/:id", h.CloseForm)
	e.PUT("/forms/:id/fields", h.SetFields)
	e.POST("/forms/:id/slots", h.AddSlot)
	e.DELETE("/forms/:id/slots/:index", h.RemoveSlot)
	e.PUT("/forms/:id/slots/:index/search", h.SearchSlot)
	e.PUT("/forms/:id/slots/:index/selection", h.SelectSlot)
	e.POST("/forms/:id/pointer", h.PointerDown)
	e.PUT("/forms/:id/capabilities/:key", h.ToggleCapability)
	e.POST("/forms/:id/submit", h.SubmitForm)

	return uc, e
}

func agentDraft() *usecase.FormDraft {
	return &usecase.FormDraft{
		ID:         "draft-1",
		Kind:       entity.KindAgent,
		Mode:       usecase.FormModeCreate,
		Fields:     map[string]string{"firstName": "", "lastName": "", "phoneNumber": ""},
		Slots:      []picker.Slot{{Region: "slot-0"}},
		MaxSlots:   5,
		CanAddSlot: true,
	}
}

func TestFormHandler_OpenForm(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUC.MockFormUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "create form",
			body: `{"kind":"agent"}`,
			setup: func(uc *mockUC.MockFormUsecase) {
				uc.EXPECT().Open(mock.Anything, entity.KindAgent, "").Return(agentDraft(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "edit of a missing record",
			body: `{"kind":"driver","editId":"nope"}`,
			setup: func(uc *mockUC.MockFormUsecase) {
				uc.EXPECT().Open(mock.Anything, entity.KindDriver, "nope").Return(nil, domainerrors.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown kind rejected before the use case",
			body:       `{"kind":"ride"}`,
			setup:      func(uc *mockUC.MockFormUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, e := newTestFormEcho(t)
			tt.setup(uc)

			rec := serve(e, http.MethodPost, "/forms", tt.body)

			if tt.wantCode != "" {
				requireError(t, rec, tt.wantStatus, tt.wantCode, "")

				return
			}
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			got := decodeData[usecase.FormDraft](t, rec)
			assert.Equal(t, "draft-1", got.ID)
			assert.Len(t, got.Slots, 1)
		})
	}
}

func TestFormHandler_GetAndClose(t *testing.T) {
	uc, e := newTestFormEcho(t)

	uc.EXPECT().Get(mock.Anything, "draft-1").Return(agentDraft(), nil).Once()
	uc.EXPECT().Close(mock.Anything, "draft-1").Return(nil).Once()
	uc.EXPECT().Get(mock.Anything, "draft-1").Return(nil, domainerrors.ErrDraftNotFound).Once()

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/forms/draft-1", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodDelete, "/forms/draft-1", "").Code)
	requireError(t, serve(e, http.MethodGet, "/forms/draft-1", ""), http.StatusNotFound, "DRAFT_NOT_FOUND", "")
}

func TestFormHandler_SetFields(t *testing.T) {
	uc, e := newTestFormEcho(t)

	fields := map[string]string{"firstName": "Amina", "phoneNumber": "080"}
	uc.EXPECT().SetFields(mock.Anything, "draft-1", fields).Return(agentDraft(), nil)

	rec := serve(e, http.MethodPut, "/forms/draft-1/fields", `{"fields":{"firstName":"Amina","phoneNumber":"080"}}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestFormHandler_Slots(t *testing.T) {
	uc, e := newTestFormEcho(t)

	t.Run("add at the cap", func(t *testing.T) {
		uc.EXPECT().AddSlot(mock.Anything, "draft-1").Return(nil, domainerrors.ErrSlotLimitReached).Once()

		requireError(t, serve(e, http.MethodPost, "/forms/draft-1/slots", ""), http.StatusConflict, "SLOT_LIMIT_REACHED", "")
	})

	t.Run("remove by index", func(t *testing.T) {
		uc.EXPECT().RemoveSlot(mock.Anything, "draft-1", 2).Return(agentDraft(), nil).Once()

		assert.Equal(t, http.StatusOK, serve(e, http.MethodDelete, "/forms/draft-1/slots/2", "").Code)
	})

	t.Run("non numeric index", func(t *testing.T) {
		requireError(t, serve(e, http.MethodDelete, "/forms/draft-1/slots/first", ""), http.StatusBadRequest, "INVALID_INDEX", "")
	})

	t.Run("search", func(t *testing.T) {
		draft := agentDraft()
		draft.Slots[0] = picker.Slot{
			SearchTerm: "dal",
			Visible:    true,
			Results:    []entity.Community{{ID: "c1", Name: "Dala"}},
			Region:     "slot-0",
		}
		uc.EXPECT().SearchSlot(mock.Anything, "draft-1", 0, "dal").Return(draft, nil).Once()

		rec := serve(e, http.MethodPut, "/forms/draft-1/slots/0/search", `{"text":"dal"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[usecase.FormDraft](t, rec)
		assert.True(t, got.Slots[0].Visible)
		assert.Equal(t, "c1", got.Slots[0].Results[0].ID)
	})

	t.Run("selection requires a community", func(t *testing.T) {
		requireError(t, serve(e, http.MethodPut, "/forms/draft-1/slots/0/selection", `{}`), http.StatusBadRequest, "VALIDATION_ERROR", "")
	})

	t.Run("select", func(t *testing.T) {
		uc.EXPECT().SelectSlot(mock.Anything, "draft-1", 0, "c1").Return(agentDraft(), nil).Once()

		assert.Equal(t, http.StatusOK, serve(e, http.MethodPut, "/forms/draft-1/slots/0/selection", `{"communityId":"c1"}`).Code)
	})

	t.Run("pointer outside every slot", func(t *testing.T) {
		uc.EXPECT().PointerDown(mock.Anything, "draft-1", "").Return(agentDraft(), nil).Once()

		assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/forms/draft-1/pointer", `{"region":""}`).Code)
	})
}

func TestFormHandler_ToggleCapability(t *testing.T) {
	uc, e := newTestFormEcho(t)

	uc.EXPECT().ToggleCapability(mock.Anything, "draft-2", entity.CapBlood).Return(&usecase.FormDraft{
		ID:           "draft-2",
		Kind:         entity.KindFacility,
		Capabilities: entity.CapabilitySet{entity.CapBlood: true},
	}, nil)

	rec := serve(e, http.MethodPut, "/forms/draft-2/capabilities/has_blood", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[usecase.FormDraft](t, rec).Capabilities[entity.CapBlood])
}

func TestFormHandler_SubmitForm(t *testing.T) {
	tests := []struct {
		name       string
		result     *usecase.FormResult
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "create",
			result:     &usecase.FormResult{Kind: entity.KindAgent, Mode: usecase.FormModeCreate, ID: "a9"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "edit",
			result:     &usecase.FormResult{Kind: entity.KindAgent, Mode: usecase.FormModeEdit, ID: "a1"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing linked",
			err:        domainerrors.NewValidationError("At least one community must be selected."),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantMsg:    "At least one community must be selected.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, e := newTestFormEcho(t)
			uc.EXPECT().Submit(mock.Anything, "draft-1").Return(tt.result, tt.err)

			rec := serve(e, http.MethodPost, "/forms/draft-1/submit", "")

			if tt.wantCode != "" {
				requireError(t, rec, tt.wantStatus, tt.wantCode, tt.wantMsg)

				return
			}
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.result.ID, decodeData[usecase.FormResult](t, rec).ID)
		})
	}
}
