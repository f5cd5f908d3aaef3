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

type driverService struct {
	driverRepo repository.DriverRepository
	views      *Views
	maxLinked  int
	notifier   changeNotifier
	logger     *slog.Logger
}

// NewDriverService creates a new ETS driver service instance
func NewDriverService(
	cfg *config.Config,
	driverRepo repository.DriverRepository,
	views *Views,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DriverUsecase {
	return &driverService{
		driverRepo: driverRepo,
		views:      views,
		maxLinked:  maxLinkedCommunities(cfg),
		notifier:   newChangeNotifier(publisher, logger),
		logger:     logger,
	}
}

func (srv *driverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *driverService) load(ctx context.Context) ([]entity.Driver, []entity.Community, error) {
	drivers, communities, err := loadWithCommunities(ctx, srv.views.Drivers, srv.views.Communities)
	if err != nil {
		srv.log(ctx).Error("Failed to load drivers", slog.Any("error", err))

		return nil, nil, loadError(err, msgLoadData)
	}

	return drivers, communities, nil
}

// List resolves every driver's communities, then applies the search and filters.
func (srv *driverService) List(ctx context.Context, query usecase.DriverQuery) (*usecase.DriverPage, error) {
	drivers, communities, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	index := entity.IndexCommunities(communities)
	rows := make([]usecase.DriverRow, 0, len(drivers))
	vehicles := make([]string, 0, len(drivers))
	for _, d := range drivers {
		vehicles = append(vehicles, string(d.VehicleType))
		row := driverRow(d, index)

		fields := append([]string{row.Name, d.PhoneNumber, string(d.VehicleType)}, areaSearchFields(row.Areas)...)
		if !listing.Contains(query.Search, fields...) ||
			!areaFieldsMatch(row.Areas, query.Ward, query.LGA) ||
			!listing.MatchesExact(query.VehicleType, string(d.VehicleType)) {
			continue
		}
		rows = append(rows, row)
	}
	wards, lgas := wardsAndLGAs(communities)

	return &usecase.DriverPage{
		Items:        rows,
		Total:        len(drivers),
		Wards:        wards,
		LGAs:         lgas,
		VehicleTypes: listing.UniqueSorted(vehicles),
	}, nil
}

func (srv *driverService) Get(ctx context.Context, id string) (*usecase.DriverRow, error) {
	_, communities, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	driver, ok := srv.views.Drivers.Get(id)
	if !ok {
		return nil, notFound(entity.KindDriver, id)
	}
	row := driverRow(driver, entity.IndexCommunities(communities))

	return &row, nil
}

// Reload discards both cached lists, like remounting the page.
func (srv *driverService) Reload(ctx context.Context) {
	srv.log(ctx).Debug("Reloading drivers")
	srv.views.Drivers.Reset()
	srv.views.Communities.Reset()
}

func (srv *driverService) Create(ctx context.Context, input *usecase.DriverInput) (*usecase.DriverRow, error) {
	driver, err := validation.Driver(driverFields(input, srv.maxLinked))
	if err != nil {
		return nil, err
	}
	index, err := resolveLinked(ctx, srv.views.Communities, driver.CatchmentAreaIDs)
	if err != nil {
		return nil, err
	}

	id, err := srv.driverRepo.CreateDriver(ctx, &driver)
	if err != nil {
		srv.log(ctx).Error("Failed to create driver", slog.Any("error", err))

		return nil, saveError(err, msgSaveDriver)
	}
	driver.ID = id

	srv.views.Drivers.Upsert(driver)
	srv.notifier.notify(ctx, entity.KindDriver, service.DirectoryActionCreated, id)
	srv.log(ctx).Info("Driver created", slog.String("driver_id", id))

	row := driverRow(driver, index)

	return &row, nil
}

// Update keeps the availability flag of the loaded record; the form does not edit it.
func (srv *driverService) Update(ctx context.Context, id string, input *usecase.DriverInput) (*usecase.DriverRow, error) {
	driver, err := validation.Driver(driverFields(input, srv.maxLinked))
	if err != nil {
		return nil, err
	}
	index, err := resolveLinked(ctx, srv.views.Communities, driver.CatchmentAreaIDs)
	if err != nil {
		return nil, err
	}
	driver.ID = id
	if existing, ok := srv.views.Drivers.Get(id); ok {
		driver.IsAvailable = existing.IsAvailable
	}

	if err := srv.driverRepo.UpdateDriver(ctx, &driver); err != nil {
		srv.log(ctx).Error("Failed to update driver", slog.Any("error", err), slog.String("driver_id", id))

		return nil, saveError(err, msgSaveDriver)
	}

	srv.views.Drivers.Replace(driver)
	srv.notifier.notify(ctx, entity.KindDriver, service.DirectoryActionUpdated, id)
	srv.log(ctx).Info("Driver updated", slog.String("driver_id", id))

	row := driverRow(driver, index)

	return &row, nil
}

func (srv *driverService) Delete(ctx context.Context, id string) error {
	if err := srv.driverRepo.DeleteDriver(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete driver", slog.Any("error", err), slog.String("driver_id", id))

		return saveError(err, deleteMessage(entity.KindDriver))
	}

	srv.views.Drivers.Remove(id)
	srv.notifier.notify(ctx, entity.KindDriver, service.DirectoryActionDeleted, id)
	srv.log(ctx).Info("Driver deleted", slog.String("driver_id", id))

	return nil
}

func driverRow(d entity.Driver, index map[string]entity.Community) usecase.DriverRow {
	areas := entity.ResolveAreas(d.CatchmentAreaIDs, index)

	return usecase.DriverRow{
		Driver:         d,
		Name:           d.FullName(),
		Areas:          areas,
		PrimaryArea:    entity.PrimaryArea(areas),
		CatchmentCount: len(d.CatchmentAreaIDs),
	}
}

func driverFields(input *usecase.DriverInput, maxLinked int) validation.DriverFields {
	return validation.DriverFields{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		PhoneNumber:      input.PhoneNumber,
		VehicleType:      input.VehicleType,
		CatchmentAreaIDs: input.CatchmentAreaIDs,
		MaxLinked:        maxLinked,
	}
}
