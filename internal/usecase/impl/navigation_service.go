package impl

import "ummana/internal/usecase"

var navigation = []usecase.NavItem{
	{Key: "dashboard", Label: "Dashboard", Path: "/dashboard"},
	{Key: "communities", Label: "Communities", Path: "/communities"},
	{Key: "chips", Label: "CHIPS Agents", Path: "/chips"},
	{Key: "drivers", Label: "ETS Drivers", Path: "/drivers"},
	{Key: "facilities", Label: "Facilities", Path: "/facilities"},
	{Key: "rides", Label: "Rides", Path: "/rides"},
	{Key: "analytics", Label: "Analytics", Path: "/analytics"},
}

type navigationService struct{}

// NewNavigationService creates a new navigation service instance
func NewNavigationService() usecase.NavigationUsecase {
	return navigationService{}
}

func (navigationService) Items(active string) []usecase.NavItem {
	items := make([]usecase.NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Key == active
		items[i] = item
	}

	return items
}
