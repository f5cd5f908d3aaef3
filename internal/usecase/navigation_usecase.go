package usecase

// NavItem is one sidebar entry.
type NavItem struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// NavigationUsecase describes the sidebar.
type NavigationUsecase interface {
	// Items lists the sidebar entries with the active one flagged.
	// An unknown key leaves every entry inactive.
	Items(active string) []NavItem
}
