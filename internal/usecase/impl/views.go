package impl

import (
	"context"

	"ummana/internal/domain/entity"
	"ummana/internal/domain/repository"
	"ummana/internal/listing"

	"golang.org/x/sync/errgroup"
)

// Views holds the cached collections shared by every use case.
// The community view also feeds the pickers and the map layers.
type Views struct {
	Communities *listing.View[entity.Community]
	Agents      *listing.View[entity.Agent]
	Drivers     *listing.View[entity.Driver]
	Facilities  *listing.View[entity.Facility]
}

// NewViews creates idle views backed by the directory repositories.
func NewViews(
	communityRepo repository.CommunityRepository,
	agentRepo repository.AgentRepository,
	driverRepo repository.DriverRepository,
	facilityRepo repository.FacilityRepository,
) *Views {
	return &Views{
		Communities: listing.NewView(func(c entity.Community) string { return c.ID }, communityRepo.ListCommunities),
		Agents:      listing.NewView(func(a entity.Agent) string { return a.ID }, agentRepo.ListAgents),
		Drivers:     listing.NewView(func(d entity.Driver) string { return d.ID }, driverRepo.ListDrivers),
		Facilities:  listing.NewView(func(f entity.Facility) string { return f.ID }, facilityRepo.ListFacilities),
	}
}

// loadWithCommunities loads view and the community view concurrently.
func loadWithCommunities[T any](
	ctx context.Context,
	view *listing.View[T],
	communities *listing.View[entity.Community],
) ([]T, []entity.Community, error) {
	var (
		items []T
		areas []entity.Community
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = view.Load(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		areas, err = communities.Load(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return items, areas, nil
}

func wardsAndLGAs(communities []entity.Community) (wards, lgas []string) {
	wards = make([]string, 0, len(communities))
	lgas = make([]string, 0, len(communities))
	for _, c := range communities {
		wards = append(wards, c.Ward)
		lgas = append(lgas, c.LGA)
	}

	return listing.UniqueSorted(wards), listing.UniqueSorted(lgas)
}

// areaFieldsMatch reports whether each non-empty filter is met by at least one area.
func areaFieldsMatch(areas []entity.AreaRef, ward, lga string) bool {
	return anyArea(areas, ward, func(a entity.AreaRef) string { return a.Ward }) &&
		anyArea(areas, lga, func(a entity.AreaRef) string { return a.LGA })
}

func anyArea(areas []entity.AreaRef, want string, field func(entity.AreaRef) string) bool {
	if want == "" {
		return true
	}
	for _, a := range areas {
		if listing.MatchesExact(want, field(a)) {
			return true
		}
	}

	return false
}

func areaSearchFields(areas []entity.AreaRef) []string {
	fields := make([]string, 0, len(areas)*4)
	for _, a := range areas {
		fields = append(fields, a.Name, a.Settlement, a.Ward, a.LGA)
	}

	return fields
}
