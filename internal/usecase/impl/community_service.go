package impl

import (
	"context"
	"log/slog"

	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	"ummana/internal/domain/repository"
	"ummana/internal/domain/service"
	"ummana/internal/domain/validation"
	"ummana/internal/listing"
	"ummana/internal/usecase"
)

type communityService struct {
	communityRepo repository.CommunityRepository
	views         *Views
	notifier      changeNotifier
	logger        *slog.Logger
}

// NewCommunityService creates a new community service instance
func NewCommunityService(
	communityRepo repository.CommunityRepository,
	views *Views,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CommunityUsecase {
	return &communityService{
		communityRepo: communityRepo,
		views:         views,
		notifier:      newChangeNotifier(publisher, logger),
		logger:        logger,
	}
}

func (srv *communityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// List filters the loaded communities
func (srv *communityService) List(ctx context.Context, query usecase.CommunityQuery) (*usecase.CommunityPage, error) {
	communities, err := srv.All(ctx)
	if err != nil {
		return nil, err
	}

	items := listing.Filter(communities, func(c entity.Community) bool {
		return listing.Contains(query.Search, c.Name, c.Settlement, c.Ward, c.LGA) &&
			listing.MatchesExact(query.Ward, c.Ward) &&
			listing.MatchesExact(query.LGA, c.LGA)
	})
	wards, lgas := wardsAndLGAs(communities)

	return &usecase.CommunityPage{
		Items: items,
		Total: len(communities),
		Wards: wards,
		LGAs:  lgas,
	}, nil
}

func (srv *communityService) All(ctx context.Context) ([]entity.Community, error) {
	communities, err := srv.views.Communities.Load(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load communities", slog.Any("error", err))

		return nil, loadError(err, msgLoadCommunities)
	}

	return communities, nil
}

func (srv *communityService) Get(ctx context.Context, id string) (*entity.Community, error) {
	if _, err := srv.All(ctx); err != nil {
		return nil, err
	}

	community, ok := srv.views.Communities.Get(id)
	if !ok {
		return nil, notFound(entity.KindCommunity, id)
	}

	return &community, nil
}

func (srv *communityService) Reload(ctx context.Context) {
	srv.log(ctx).Debug("Reloading communities")
	srv.views.Communities.Reset()
}

// Create registers a community and adds it to the loaded list
func (srv *communityService) Create(ctx context.Context, input *usecase.CommunityInput) (*entity.Community, error) {
	community, err := validation.Community(communityFields(input))
	if err != nil {
		return nil, err
	}

	id, err := srv.communityRepo.CreateCommunity(ctx, &community)
	if err != nil {
		srv.log(ctx).Error("Failed to create community", slog.Any("error", err))

		return nil, saveError(err, msgCreateCommunity)
	}
	community.ID = id

	srv.views.Communities.Upsert(community)
	srv.notifier.notify(ctx, entity.KindCommunity, service.DirectoryActionCreated, id)
	srv.log(ctx).Info("Community created", slog.String("community_id", id))

	return &community, nil
}

// Update saves a community and merges it into the loaded list
func (srv *communityService) Update(ctx context.Context, id string, input *usecase.CommunityInput) (*entity.Community, error) {
	community, err := validation.Community(communityFields(input))
	if err != nil {
		return nil, err
	}
	community.ID = id

	if err := srv.communityRepo.UpdateCommunity(ctx, &community); err != nil {
		srv.log(ctx).Error("Failed to update community", slog.Any("error", err), slog.String("community_id", id))

		return nil, saveError(err, msgUpdateCommunity)
	}

	srv.views.Communities.Replace(community)
	srv.notifier.notify(ctx, entity.KindCommunity, service.DirectoryActionUpdated, id)
	srv.log(ctx).Info("Community updated", slog.String("community_id", id))

	return &community, nil
}

func (srv *communityService) Delete(ctx context.Context, id string) error {
	if err := srv.communityRepo.DeleteCommunity(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete community", slog.Any("error", err), slog.String("community_id", id))

		return saveError(err, deleteMessage(entity.KindCommunity))
	}

	srv.views.Communities.Remove(id)
	srv.notifier.notify(ctx, entity.KindCommunity, service.DirectoryActionDeleted, id)
	srv.log(ctx).Info("Community deleted", slog.String("community_id", id))

	return nil
}

func communityFields(input *usecase.CommunityInput) validation.CommunityFields {
	return validation.CommunityFields{
		Name:       input.Name,
		Settlement: input.Settlement,
		Ward:       input.Ward,
		LGA:        input.LGA,
		Lat:        input.Lat,
		Lng:        input.Lng,
	}
}
