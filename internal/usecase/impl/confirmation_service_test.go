package impl

import (
	"context"
	"testing"

	"ummana/internal/domain/entity"
	"ummana/internal/domain/service"
	"ummana/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func agentIDs(page *usecase.AgentPage) []string {
	ids := make([]string, 0, len(page.Items))
	for _, row := range page.Items {
		ids = append(ids, row.ID)
	}

	return ids
}

// Cancelling leaves the list untouched; confirming removes exactly the target.
func TestConfirmationService_CancelThenConfirm(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.agentRepo.EXPECT().ListAgents(mock.Anything).Return(testAgents(), nil).Once()
	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

	pending, err := fx.confirmations.RequestDelete(ctx, entity.KindAgent, "a2")
	require.NoError(t, err)
	assert.Equal(t, "Musa Ibrahim", pending.Name)
	assert.NotEmpty(t, pending.Token)

	require.NoError(t, fx.confirmations.Cancel(ctx, pending.Token))

	page, err := fx.agents.List(ctx, usecase.AgentQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, agentIDs(page))

	_, err = fx.confirmations.Confirm(ctx, pending.Token)
	assertAppError(t, err, "CONFIRMATION_NOT_FOUND", "")

	fx.agentRepo.EXPECT().DeleteAgent(mock.Anything, "a2").Return(nil).Once()
	fx.expectEvent(entity.KindAgent, service.DirectoryActionDeleted, "a2")

	pending, err = fx.confirmations.RequestDelete(ctx, entity.KindAgent, "a2")
	require.NoError(t, err)

	confirmed, err := fx.confirmations.Confirm(ctx, pending.Token)
	require.NoError(t, err)
	assert.Equal(t, "a2", confirmed.ID)

	page, err = fx.agents.List(ctx, usecase.AgentQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a3"}, agentIDs(page))
}

func TestConfirmationService_Confirm_FailureKeepsPending(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.facilityRepo.EXPECT().ListFacilities(mock.Anything).Return(testFacilities(), nil).Once()
	fx.facilityRepo.EXPECT().DeleteFacility(mock.Anything, "f1").Return(errors.New("connection reset")).Once()

	pending, err := fx.confirmations.RequestDelete(ctx, entity.KindFacility, "f1")
	require.NoError(t, err)

	_, err = fx.confirmations.Confirm(ctx, pending.Token)
	assertAppError(t, err, "DIRECTORY_UNAVAILABLE", "Failed to delete facility. Please try again.")

	_, err = fx.facilities.Get(ctx, "f1")
	require.NoError(t, err)

	fx.facilityRepo.EXPECT().DeleteFacility(mock.Anything, "f1").Return(nil).Once()
	fx.expectEvent(entity.KindFacility, service.DirectoryActionDeleted, "f1")

	_, err = fx.confirmations.Confirm(ctx, pending.Token)
	require.NoError(t, err)

	_, err = fx.facilities.Get(ctx, "f1")
	assertAppError(t, err, "NOT_FOUND", "")
}

func TestConfirmationService_RequestDelete_Errors(t *testing.T) {
	fx := createTestFixture(t)
	ctx := context.Background()

	fx.communityRepo.EXPECT().ListCommunities(mock.Anything).Return(testCommunities(), nil).Once()

	_, err := fx.confirmations.RequestDelete(ctx, entity.KindCommunity, "c404")
	assertAppError(t, err, "NOT_FOUND", "")

	_, err = fx.confirmations.RequestDelete(ctx, entity.Kind("ride"), "r1")
	assertAppError(t, err, "UNKNOWN_KIND", "")

	assertAppError(t, fx.confirmations.Cancel(ctx, "nope"), "CONFIRMATION_NOT_FOUND", "")
}
