package impl

import (
	"context"
	"log/slog"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	"ummana/internal/domain/repository"
	"ummana/internal/domain/service"
	"ummana/internal/domain/validation"
	"ummana/internal/listing"
	"ummana/internal/usecase"
)

type agentService struct {
	agentRepo repository.AgentRepository
	views     *Views
	maxLinked int
	notifier  changeNotifier
	logger    *slog.Logger
}

// NewAgentService creates a new CHIPS agent service instance
func NewAgentService(
	cfg *config.Config,
	agentRepo repository.AgentRepository,
	views *Views,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AgentUsecase {
	return &agentService{
		agentRepo: agentRepo,
		views:     views,
		maxLinked: maxLinkedCommunities(cfg),
		notifier:  newChangeNotifier(publisher, logger),
		logger:    logger,
	}
}

func (srv *agentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *agentService) load(ctx context.Context) ([]entity.Agent, []entity.Community, error) {
	agents, communities, err := loadWithCommunities(ctx, srv.views.Agents, srv.views.Communities)
	if err != nil {
		srv.log(ctx).Error("Failed to load agents", slog.Any("error", err))

		return nil, nil, loadError(err, msgLoadData)
	}

	return agents, communities, nil
}

// List resolves every agent's communities, then applies the search and filters.
// Ward and LGA filters match when any linked community matches.
func (srv *agentService) List(ctx context.Context, query usecase.AgentQuery) (*usecase.AgentPage, error) {
	agents, communities, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	index := entity.IndexCommunities(communities)
	rows := make([]usecase.AgentRow, 0, len(agents))
	for _, a := range agents {
		row := agentRow(a, index)

		fields := append([]string{row.Name, a.PhoneNumber}, areaSearchFields(row.Areas)...)
		if !listing.Contains(query.Search, fields...) || !areaFieldsMatch(row.Areas, query.Ward, query.LGA) {
			continue
		}
		rows = append(rows, row)
	}
	wards, lgas := wardsAndLGAs(communities)

	return &usecase.AgentPage{
		Items: rows,
		Total: len(agents),
		Wards: wards,
		LGAs:  lgas,
	}, nil
}

func (srv *agentService) Get(ctx context.Context, id string) (*usecase.AgentRow, error) {
	_, communities, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	agent, ok := srv.views.Agents.Get(id)
	if !ok {
		return nil, notFound(entity.KindAgent, id)
	}
	row := agentRow(agent, entity.IndexCommunities(communities))

	return &row, nil
}

// Reload discards both cached lists, like remounting the page.
func (srv *agentService) Reload(ctx context.Context) {
	srv.log(ctx).Debug("Reloading agents")
	srv.views.Agents.Reset()
	srv.views.Communities.Reset()
}

func (srv *agentService) Create(ctx context.Context, input *usecase.AgentInput) (*usecase.AgentRow, error) {
	agent, err := validation.Agent(agentFields(input, srv.maxLinked))
	if err != nil {
		return nil, err
	}
	index, err := resolveLinked(ctx, srv.views.Communities, agent.CatchmentAreaIDs)
	if err != nil {
		return nil, err
	}

	id, err := srv.agentRepo.CreateAgent(ctx, &agent)
	if err != nil {
		srv.log(ctx).Error("Failed to create agent", slog.Any("error", err))

		return nil, saveError(err, msgSaveAgent)
	}
	agent.ID = id

	srv.views.Agents.Upsert(agent)
	srv.notifier.notify(ctx, entity.KindAgent, service.DirectoryActionCreated, id)
	srv.log(ctx).Info("Agent created", slog.String("agent_id", id))

	row := agentRow(agent, index)

	return &row, nil
}

func (srv *agentService) Update(ctx context.Context, id string, input *usecase.AgentInput) (*usecase.AgentRow, error) {
	agent, err := validation.Agent(agentFields(input, srv.maxLinked))
	if err != nil {
		return nil, err
	}
	index, err := resolveLinked(ctx, srv.views.Communities, agent.CatchmentAreaIDs)
	if err != nil {
		return nil, err
	}
	agent.ID = id

	if err := srv.agentRepo.UpdateAgent(ctx, &agent); err != nil {
		srv.log(ctx).Error("Failed to update agent", slog.Any("error", err), slog.String("agent_id", id))

		return nil, saveError(err, msgSaveAgent)
	}

	srv.views.Agents.Replace(agent)
	srv.notifier.notify(ctx, entity.KindAgent, service.DirectoryActionUpdated, id)
	srv.log(ctx).Info("Agent updated", slog.String("agent_id", id))

	row := agentRow(agent, index)

	return &row, nil
}

func (srv *agentService) Delete(ctx context.Context, id string) error {
	if err := srv.agentRepo.DeleteAgent(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete agent", slog.Any("error", err), slog.String("agent_id", id))

		return saveError(err, deleteMessage(entity.KindAgent))
	}

	srv.views.Agents.Remove(id)
	srv.notifier.notify(ctx, entity.KindAgent, service.DirectoryActionDeleted, id)
	srv.log(ctx).Info("Agent deleted", slog.String("agent_id", id))

	return nil
}

func agentRow(a entity.Agent, index map[string]entity.Community) usecase.AgentRow {
	areas := entity.ResolveAreas(a.CatchmentAreaIDs, index)

	return usecase.AgentRow{
		Agent:          a,
		Name:           a.FullName(),
		Areas:          areas,
		PrimaryArea:    entity.PrimaryArea(areas),
		CatchmentCount: len(a.CatchmentAreaIDs),
	}
}

func agentFields(input *usecase.AgentInput, maxLinked int) validation.AgentFields {
	return validation.AgentFields{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		PhoneNumber:      input.PhoneNumber,
		CatchmentAreaIDs: input.CatchmentAreaIDs,
		MaxLinked:        maxLinked,
	}
}
