// Package entity contains the core business objects of the console.
package entity

import "github.com/paulmach/orb"

// Coordinates is a WGS84 position as the directory service stores it.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts to an orb point (x = longitude, y = latitude).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Community is a catchment area: a named settlement with its ward and LGA labels.
// Agents, drivers and facilities reference communities by ID and never own them.
type Community struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Settlement string       `json:"settlement"`
	Ward       string       `json:"ward"`
	LGA        string       `json:"lga"`
	Location   *Coordinates `json:"location,omitempty"` // nil when the directory has no coordinates
}

// Ref returns the compact area reference used in agent and driver rows.
func (c Community) Ref() AreaRef {
	return AreaRef{
		ID:         c.ID,
		Name:       c.Name,
		Settlement: c.Settlement,
		Ward:       c.Ward,
		LGA:        c.LGA,
	}
}

// IndexCommunities builds an ID lookup over a loaded community set.
func IndexCommunities(communities []Community) map[string]Community {
	index := make(map[string]Community, len(communities))
	for _, c := range communities {
		index[c.ID] = c
	}

	return index
}
