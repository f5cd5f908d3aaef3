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

type facilityService struct {
	facilityRepo repository.FacilityRepository
	views        *Views
	notifier     changeNotifier
	logger       *slog.Logger
}

// NewFacilityService creates a new facility service instance
func NewFacilityService(
	facilityRepo repository.FacilityRepository,
	views *Views,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FacilityUsecase {
	return &facilityService{
		facilityRepo: facilityRepo,
		views:        views,
		notifier:     newChangeNotifier(publisher, logger),
		logger:       logger,
	}
}

func (srv *facilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *facilityService) load(ctx context.Context) ([]entity.Facility, error) {
	facilities, err := srv.views.Facilities.Load(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load facilities", slog.Any("error", err))

		return nil, loadError(err, msgLoadFacilities)
	}

	return facilities, nil
}

// List filters the loaded facilities. Ward, LGA and type are exact matches;
// a facility must offer every requested capability.
func (srv *facilityService) List(ctx context.Context, query usecase.FacilityQuery) (*usecase.FacilityPage, error) {
	facilities, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := listing.Filter(facilities, func(f entity.Facility) bool {
		return listing.Contains(query.Search, f.Name, f.Ward, f.LGA, f.FacilityType) &&
			listing.MatchesExact(query.Ward, f.Ward) &&
			listing.MatchesExact(query.LGA, f.LGA) &&
			listing.MatchesExact(query.FacilityType, f.FacilityType) &&
			f.Capabilities.HasAll(query.Capabilities)
	})

	rows := make([]usecase.FacilityRow, 0, len(matched))
	for _, f := range matched {
		rows = append(rows, facilityRow(f))
	}

	wards := make([]string, 0, len(facilities))
	lgas := make([]string, 0, len(facilities))
	types := make([]string, 0, len(facilities))
	for _, f := range facilities {
		wards = append(wards, f.Ward)
		lgas = append(lgas, f.LGA)
		types = append(types, f.FacilityType)
	}

	return &usecase.FacilityPage{
		Items:         rows,
		Total:         len(facilities),
		Wards:         listing.UniqueSorted(wards),
		LGAs:          listing.UniqueSorted(lgas),
		FacilityTypes: listing.UniqueSorted(types),
	}, nil
}

func (srv *facilityService) Get(ctx context.Context, id string) (*usecase.FacilityRow, error) {
	if _, err := srv.load(ctx); err != nil {
		return nil, err
	}

	facility, ok := srv.views.Facilities.Get(id)
	if !ok {
		return nil, notFound(entity.KindFacility, id)
	}
	row := facilityRow(facility)

	return &row, nil
}

func (srv *facilityService) Reload(ctx context.Context) {
	srv.log(ctx).Debug("Reloading facilities")
	srv.views.Facilities.Reset()
}

func (srv *facilityService) Catalog() *usecase.FacilityCatalog {
	return &usecase.FacilityCatalog{
		FacilityTypes:    entity.FacilityTypes(),
		Capabilities:     entity.Capabilities(),
		CapabilityGroups: entity.CapabilityGroups(),
	}
}

func (srv *facilityService) Create(ctx context.Context, input *usecase.FacilityInput) (*usecase.FacilityRow, error) {
	facility, err := validation.Facility(facilityFields(input))
	if err != nil {
		return nil, err
	}

	id, err := srv.facilityRepo.CreateFacility(ctx, &facility)
	if err != nil {
		srv.log(ctx).Error("Failed to create facility", slog.Any("error", err))

		return nil, saveError(err, msgCreateFacility)
	}
	facility.ID = id

	srv.views.Facilities.Upsert(facility)
	srv.notifier.notify(ctx, entity.KindFacility, service.DirectoryActionCreated, id)
	srv.log(ctx).Info("Facility created", slog.String("facility_id", id))

	row := facilityRow(facility)

	return &row, nil
}

func (srv *facilityService) Update(ctx context.Context, id string, input *usecase.FacilityInput) (*usecase.FacilityRow, error) {
	facility, err := validation.Facility(facilityFields(input))
	if err != nil {
		return nil, err
	}
	facility.ID = id

	if err := srv.facilityRepo.UpdateFacility(ctx, &facility); err != nil {
		srv.log(ctx).Error("Failed to update facility", slog.Any("error", err), slog.String("facility_id", id))

		return nil, saveError(err, msgUpdateFacility)
	}

	srv.views.Facilities.Replace(facility)
	srv.notifier.notify(ctx, entity.KindFacility, service.DirectoryActionUpdated, id)
	srv.log(ctx).Info("Facility updated", slog.String("facility_id", id))

	row := facilityRow(facility)

	return &row, nil
}

func (srv *facilityService) Delete(ctx context.Context, id string) error {
	if err := srv.facilityRepo.DeleteFacility(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete facility", slog.Any("error", err), slog.String("facility_id", id))

		return saveError(err, deleteMessage(entity.KindFacility))
	}

	srv.views.Facilities.Remove(id)
	srv.notifier.notify(ctx, entity.KindFacility, service.DirectoryActionDeleted, id)
	srv.log(ctx).Info("Facility deleted", slog.String("facility_id", id))

	return nil
}

func facilityRow(f entity.Facility) usecase.FacilityRow {
	return usecase.FacilityRow{
		Facility:          f,
		CapabilityCount:   f.Capabilities.Count(),
		CapabilitySummary: f.Capabilities.Summary(),
		CapabilityDetails: f.Capabilities.Details(),
	}
}

func facilityFields(input *usecase.FacilityInput) validation.FacilityFields {
	return validation.FacilityFields{
		Name:         input.Name,
		Ward:         input.Ward,
		LGA:          input.LGA,
		Lat:          input.Lat,
		Lng:          input.Lng,
		FacilityType: input.FacilityType,
		Capabilities: input.Capabilities,
	}
}
