package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"ummana/config"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/service"
	"ummana/internal/errors"
	mockRepo "ummana/internal/mocks/repository"
	mockSvc "ummana/internal/mocks/service"
	"ummana/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	communityRepo *mockRepo.MockCommunityRepository
	agentRepo     *mockRepo.MockAgentRepository
	driverRepo    *mockRepo.MockDriverRepository
	facilityRepo  *mockRepo.MockFacilityRepository
	publisher     *mockSvc.MockEventPublisher
	qrCode        *mockSvc.MockQRCodeService

	views  *Views
	config *config.Config
	logger *slog.Logger

	communities   usecase.CommunityUsecase
	agents        usecase.AgentUsecase
	drivers       usecase.DriverUsecase
	facilities    usecase.FacilityUsecase
	forms         usecase.FormUsecase
	confirmations usecase.ConfirmationUsecase
	maps          usecase.MapUsecase
	sync          usecase.SyncUsecase
}

func createTestFixture(t *testing.T) *testFixture {
	t.Helper()

	fx := &testFixture{
		communityRepo: mockRepo.NewMockCommunityRepository(t),
		agentRepo:     mockRepo.NewMockAgentRepository(t),
		driverRepo:    mockRepo.NewMockDriverRepository(t),
		facilityRepo:  mockRepo.NewMockFacilityRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		qrCode:        mockSvc.NewMockQRCodeService(t),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: &config.Config{
			Forms: &config.FormsConfig{
				MaxLinkedCommunities: 5,
				DraftTTL:             time.Minute,
				MaxDrafts:            16,
			},
		},
	}
	fx.config.Env.InstanceID = "console-a"
	fx.views = NewViews(fx.communityRepo, fx.agentRepo, fx.driverRepo, fx.facilityRepo)

	fx.communities = NewCommunityService(fx.communityRepo, fx.views, fx.publisher, fx.logger)
	fx.agents = NewAgentService(fx.config, fx.agentRepo, fx.views, fx.publisher, fx.logger)
	fx.drivers = NewDriverService(fx.config, fx.driverRepo, fx.views, fx.publisher, fx.logger)
	fx.facilities = NewFacilityService(fx.facilityRepo, fx.views, fx.publisher, fx.logger)
	fx.forms = NewFormService(FormParams{
		Config:      fx.config,
		Views:       fx.views,
		Communities: fx.communities,
		Agents:      fx.agents,
		Drivers:     fx.drivers,
		Facilities:  fx.facilities,
		Logger:      fx.logger,
	})
	fx.confirmations = NewConfirmationService(ConfirmationParams{
		Config:      fx.config,
		Communities: fx.communities,
		Agents:      fx.agents,
		Drivers:     fx.drivers,
		Facilities:  fx.facilities,
		Logger:      fx.logger,
	})
	fx.maps = NewMapService(fx.communities, fx.facilities, fx.qrCode, fx.logger)
	fx.sync = NewSyncService(fx.config, fx.views, fx.logger)

	return fx
}

// expectEvent expects one change event for kind/action/id.
func (fx *testFixture) expectEvent(kind entity.Kind, action service.DirectoryAction, id string) {
	fx.publisher.EXPECT().
		PublishDirectoryEvent(mock.Anything, mock.MatchedBy(func(e *service.DirectoryEvent) bool {
			return e.Kind == kind && e.Action == action && e.ID == id
		})).
		Return(nil).
		Once()
}

func assertAppError(t *testing.T, err error, code, message string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := errors.Find[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %T", err)
	require.Equal(t, code, appErr.ErrorCode())
	if message != "" {
		require.Equal(t, message, appErr.Message())
	}
}

func testCommunities() []entity.Community {
	return []entity.Community{
		{
			ID: "c1", Name: "Dala", Settlement: "Dala Hill", Ward: "Dala", LGA: "Dala",
			Location: &entity.Coordinates{Lat: 12.0, Lng: 8.5},
		},
		{
			ID: "c2", Name: "Gwale", Settlement: "Gwale Town", Ward: "Gwale", LGA: "Gwale",
			Location: &entity.Coordinates{Lat: 11.98, Lng: 8.49},
		},
		{
			ID: "c3", Name: "Kofar Mata", Settlement: "Old City", Ward: "Kofar Mata", LGA: "Kano Municipal",
		},
	}
}
