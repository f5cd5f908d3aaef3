package impl

import (
	"context"
	"net/http"
	"testing"

	"ummana/internal/domain/entity"
	"ummana/internal/domain/repository"
	"ummana/internal/domain/service"
	"ummana/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFormService_Open(t *testing.T) {
	t.Run("create agent form starts with one slot", func(t *testing.T) {
		fx := createTestFixture(t)
		fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

		draft, err := fx.forms.Open(context.Background(), entity.KindAgent, "")
		require.NoError(t, err)
		assert.Equal(t, usecase.FormModeCreate, draft.Mode)
		assert.Len(t, draft.Slots, 1)
		assert.Equal(t, 5, draft.MaxSlots)
		assert.True(t, draft.CanAddSlot)
		assert.Equal(t, map[string]string{FieldFirstName: "", FieldLastName: "", FieldPhoneNumber: ""}, draft.Fields)
	})

	t.Run("create forms apply defaults", func(t *testing.T) {
		fx := createTestFixture(t)
		fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

		driver, err := fx.forms.Open(context.Background(), entity.KindDriver, "")
		require.NoError(t, err)
		assert.Equal(t, "car", driver.Fields[FieldVehicleType])

		facility, err := fx.forms.Open(context.Background(), entity.KindFacility, "")
		require.NoError(t, err)
		assert.Equal(t, entity.FacilityPrimaryHealthCenter, facility.Fields[FieldFacilityType])
		assert.Len(t, facility.Capabilities, 19)
		assert.Empty(t, facility.Slots)
	})

	t.Run("edit form is seeded from the record", func(t *testing.T) {
		fx := createTestFixture(t)
		fx.agentRepo.EXPECT().ListAgents(mock.Anything).Return(testAgents(), nil).Once()
		fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

		draft, err := fx.forms.Open(context.Background(), entity.KindAgent, "a1")
		require.NoError(t, err)
		assert.Equal(t, usecase.FormModeEdit, draft.Mode)
		assert.Equal(t, "a1", draft.EditID)
		assert.Equal(t, "08031234567", draft.Fields[FieldPhoneNumber])
		require.Len(t, draft.Slots, 2)
		assert.Equal(t, "Dala", draft.Slots[0].SearchTerm)
		assert.Equal(t, "c2", draft.Slots[1].SelectedID)
	})

	t.Run("edit community formats coordinates", func(t *testing.T) {
		fx := createTestFixture(t)
		fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

		draft, err := fx.forms.Open(context.Background(), entity.KindCommunity, "c2")
		require.NoError(t, err)
		assert.Equal(t, "11.98", draft.Fields[FieldLat])
		assert.Equal(t, "8.49", draft.Fields[FieldLng])
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestFixture(t)

		_, err := fx.forms.Open(context.Background(), entity.Kind("ride"), "")
		assertAppError(t, err, "UNKNOWN_KIND", "")
	})
}

func TestFormService_Slots(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()
	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

	draft, err := fx.forms.Open(ctx, entity.KindDriver, "")
	require.NoError(t, err)

	for i := 1; i < 5; i++ {
		draft, err = fx.forms.AddSlot(ctx, draft.ID)
		require.NoError(t, err)
	}
	assert.Len(t, draft.Slots, 5)
	assert.False(t, draft.CanAddSlot)

	_, err = fx.forms.AddSlot(ctx, draft.ID)
	assertAppError(t, err, "SLOT_LIMIT_REACHED", "")

	draft, err = fx.forms.RemoveSlot(ctx, draft.ID, 0)
	require.NoError(t, err)
	assert.Len(t, draft.Slots, 5)

	draft, err = fx.forms.RemoveSlot(ctx, draft.ID, 4)
	require.NoError(t, err)
	assert.Len(t, draft.Slots, 4)

	_, err = fx.forms.RemoveSlot(ctx, draft.ID, 7)
	assertAppError(t, err, "SLOT_OUT_OF_RANGE", "")
}

func TestFormService_SearchAndSelect(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()
	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

	draft, err := fx.forms.Open(ctx, entity.KindAgent, "")
	require.NoError(t, err)

	draft, err = fx.forms.SearchSlot(ctx, draft.ID, 0, "GWA")
	require.NoError(t, err)
	slot := draft.Slots[0]
	assert.True(t, slot.Visible)
	require.Len(t, slot.Results, 1)
	assert.Equal(t, "c2", slot.Results[0].ID)

	draft, err = fx.forms.SelectSlot(ctx, draft.ID, 0, "c2")
	require.NoError(t, err)
	assert.Equal(t, "c2", draft.Slots[0].SelectedID)
	assert.Equal(t, "Gwale", draft.Slots[0].SearchTerm)
	assert.False(t, draft.Slots[0].Visible)

	// Typing again clears the selection.
	draft, err = fx.forms.SearchSlot(ctx, draft.ID, 0, "Gwale ")
	require.NoError(t, err)
	assert.Empty(t, draft.Slots[0].SelectedID)

	_, err = fx.forms.SelectSlot(ctx, draft.ID, 0, "c404")
	assertAppError(t, err, "UNKNOWN_COMMUNITY", "")

	draft, err = fx.forms.PointerDown(ctx, draft.ID, "elsewhere")
	require.NoError(t, err)
	assert.False(t, draft.Slots[0].Visible)
}

func TestFormService_PickerUnavailable(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	draft, err := fx.forms.Open(ctx, entity.KindFacility, "")
	require.NoError(t, err)

	_, err = fx.forms.AddSlot(ctx, draft.ID)
	assertAppError(t, err, "PICKER_UNAVAILABLE", "")
}

func TestFormService_SetFields(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	draft, err := fx.forms.Open(ctx, entity.KindCommunity, "")
	require.NoError(t, err)

	draft, err = fx.forms.SetFields(ctx, draft.ID, map[string]string{FieldName: "Fagge", FieldLat: "12"})
	require.NoError(t, err)
	assert.Equal(t, "Fagge", draft.Fields[FieldName])
	assert.Equal(t, "12", draft.Fields[FieldLat])

	_, err = fx.forms.SetFields(ctx, draft.ID, map[string]string{FieldName: "Other", FieldPhoneNumber: "0803"})
	assertAppError(t, err, "UNKNOWN_FIELD", "")

	draft, err = fx.forms.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fagge", draft.Fields[FieldName])
}

func TestFormService_ToggleCapability(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	draft, err := fx.forms.Open(ctx, entity.KindFacility, "")
	require.NoError(t, err)

	draft, err = fx.forms.ToggleCapability(ctx, draft.ID, entity.CapIncubator)
	require.NoError(t, err)
	assert.True(t, draft.Capabilities[entity.CapIncubator])

	draft, err = fx.forms.ToggleCapability(ctx, draft.ID, entity.CapIncubator)
	require.NoError(t, err)
	assert.False(t, draft.Capabilities[entity.CapIncubator])

	_, err = fx.forms.ToggleCapability(ctx, draft.ID, "has_helipad")
	assertAppError(t, err, "UNKNOWN_CAPABILITY", "")
}

func TestFormService_Close(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	draft, err := fx.forms.Open(ctx, entity.KindCommunity, "")
	require.NoError(t, err)

	require.NoError(t, fx.forms.Close(ctx, draft.ID))

	_, err = fx.forms.Get(ctx, draft.ID)
	assertAppError(t, err, "DRAFT_NOT_FOUND", "")
	assertAppError(t, fx.forms.Close(ctx, draft.ID), "DRAFT_NOT_FOUND", "")
}

// A new agent with one selected community shows up as exactly one new row
// whose primary settlement is that community's.
func TestFormService_SubmitAgent_AddsOneRow(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.agentRepo.EXPECT().ListAgents(mock.Anything).Return(testAgents(), nil).Once()
	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()
	fx.agentRepo.EXPECT().CreateAgent(mock.Anything, mock.Anything).Return("a9", nil).Once()
	fx.expectEvent(entity.KindAgent, service.DirectoryActionCreated, "a9")

	before, err := fx.agents.List(ctx, usecase.AgentQuery{})
	require.NoError(t, err)

	draft, err := fx.forms.Open(ctx, entity.KindAgent, "")
	require.NoError(t, err)
	_, err = fx.forms.SetFields(ctx, draft.ID, map[string]string{
		FieldFirstName:   "Hauwa",
		FieldLastName:    "Garba",
		FieldPhoneNumber: "08123456789",
	})
	require.NoError(t, err)
	_, err = fx.forms.AddSlot(ctx, draft.ID)
	require.NoError(t, err)
	_, err = fx.forms.SearchSlot(ctx, draft.ID, 1, "kofar")
	require.NoError(t, err)
	_, err = fx.forms.SelectSlot(ctx, draft.ID, 1, "c3")
	require.NoError(t, err)

	result, err := fx.forms.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "a9", result.ID)

	after, err := fx.agents.List(ctx, usecase.AgentQuery{})
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items)+1)

	var added *usecase.AgentRow
	for i := range after.Items {
		if after.Items[i].ID == "a9" {
			added = &after.Items[i]
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, 1, added.CatchmentCount)
	assert.Equal(t, "Old City", added.PrimaryArea.Settlement)

	_, err = fx.forms.Get(ctx, draft.ID)
	assertAppError(t, err, "DRAFT_NOT_FOUND", "")
}

func TestFormService_Submit_FailureKeepsDraftOpen(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

	draft, err := fx.forms.Open(ctx, entity.KindAgent, "")
	require.NoError(t, err)
	_, err = fx.forms.SetFields(ctx, draft.ID, map[string]string{
		FieldFirstName:   "Hauwa",
		FieldLastName:    "Garba",
		FieldPhoneNumber: "08123456789",
	})
	require.NoError(t, err)

	// No community selected yet.
	_, err = fx.forms.Submit(ctx, draft.ID)
	assertAppError(t, err, "VALIDATION_FAILED", "At least one community must be selected.")

	reopened, err := fx.forms.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "At least one community must be selected.", reopened.LastError)

	fx.agentRepo.EXPECT().
		CreateAgent(mock.Anything, mock.Anything).
		Return("", &repository.RemoteError{StatusCode: http.StatusBadRequest, Payload: "Phone number already registered"}).
		Once()

	_, err = fx.forms.SelectSlot(ctx, draft.ID, 0, "c1")
	require.NoError(t, err)
	_, err = fx.forms.Submit(ctx, draft.ID)
	assertAppError(t, err, "DIRECTORY_REJECTED", "Phone number already registered")

	reopened, err = fx.forms.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone number already registered", reopened.LastError)
	assert.Equal(t, "Hauwa", reopened.Fields[FieldFirstName])
}

func TestFormService_SubmitFacilityEdit(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.facilityRepo.EXPECT().ListFacilities(mock.Anything).Return(testFacilities(), nil).Once()
	fx.facilityRepo.EXPECT().
		UpdateFacility(mock.Anything, mock.MatchedBy(func(f *entity.Facility) bool {
			return f.ID == "f3" && f.Capabilities[entity.CapWater] && f.Name == "Gwale Clinic"
		})).
		Return(nil).
		Once()
	fx.expectEvent(entity.KindFacility, service.DirectoryActionUpdated, "f3")

	draft, err := fx.forms.Open(ctx, entity.KindFacility, "f3")
	require.NoError(t, err)
	assert.Equal(t, "11.9", draft.Fields[FieldLat])

	_, err = fx.forms.ToggleCapability(ctx, draft.ID, entity.CapWater)
	require.NoError(t, err)

	result, err := fx.forms.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.FormModeEdit, result.Mode)
	assert.Equal(t, "f3", result.ID)
}
