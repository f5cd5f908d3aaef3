package directory

import (
	"bytes"
	"encoding/json"

	"ummana/internal/domain/entity"

	"github.com/pkg/errors"
)

// flexID accepts record IDs encoded as JSON strings or numbers.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.WithStack(err)
		}
		*id = flexID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.Wrap(err, "record id must be a string or a number")
		}
		*id = flexID(n.String())
	}

	return nil
}

func idStrings(ids []flexID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}

	return out
}

// createdResponse is the body of every successful create call.
type createdResponse struct {
	ID flexID `json:"id"`
}

type communityRecord struct {
	ID         flexID              `json:"id"`
	Name       string              `json:"name"`
	Settlement string              `json:"settlement"`
	Ward       string              `json:"ward"`
	LGA        string              `json:"lga"`
	Location   *entity.Coordinates `json:"location"`
	Lat        *float64            `json:"lat"`
	Lng        *float64            `json:"lng"`
}

func (r communityRecord) toEntity() entity.Community {
	c := entity.Community{
		ID:         string(r.ID),
		Name:       r.Name,
		Settlement: r.Settlement,
		Ward:       r.Ward,
		LGA:        r.LGA,
		Location:   r.Location,
	}
	if c.Location == nil && r.Lat != nil && r.Lng != nil {
		c.Location = &entity.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
	}

	return c
}

// communityBody is sent on both create and update.
type communityBody struct {
	Name       string  `json:"name"`
	Settlement string  `json:"settlement"`
	Ward       string  `json:"ward"`
	LGA        string  `json:"lga"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

func newCommunityBody(c *entity.Community) communityBody {
	body := communityBody{
		Name:       c.Name,
		Settlement: c.Settlement,
		Ward:       c.Ward,
		LGA:        c.LGA,
	}
	if c.Location != nil {
		body.Lat = c.Location.Lat
		body.Lng = c.Location.Lng
	}

	return body
}

type agentRecord struct {
	ID               flexID   `json:"id"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	CatchmentAreaIDs []flexID `json:"catchmentAreaIds"`
}

func (r agentRecord) toEntity() entity.Agent {
	return entity.Agent{
		ID:               string(r.ID),
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		CatchmentAreaIDs: idStrings(r.CatchmentAreaIDs),
		Status:           entity.AgentStatusActive,
	}
}

// agentBody is sent on both create and update.
type agentBody struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds"`
}

func newAgentBody(a *entity.Agent) agentBody {
	return agentBody{
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		PhoneNumber:      a.PhoneNumber,
		CatchmentAreaIDs: nonNil(a.CatchmentAreaIDs),
	}
}

// driverRecord is a listed driver. The directory lists links as
// assignedCatchmentAreas; catchmentAreaIds is read when that is absent.
type driverRecord struct {
	ID                     flexID   `json:"id"`
	FirstName              string   `json:"firstName"`
	LastName               string   `json:"lastName"`
	PhoneNumber            string   `json:"phoneNumber"`
	VehicleType            string   `json:"vehicleType"`
	AssignedCatchmentAreas []flexID `json:"assignedCatchmentAreas"`
	CatchmentAreaIDs       []flexID `json:"catchmentAreaIds"`
	IsAvailable            *bool    `json:"isAvailable"`
}

func (r driverRecord) toEntity() entity.Driver {
	ids := r.AssignedCatchmentAreas
	if ids == nil {
		ids = r.CatchmentAreaIDs
	}

	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return entity.Driver{
		ID:               string(r.ID),
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		VehicleType:      entity.VehicleType(r.VehicleType),
		CatchmentAreaIDs: idStrings(ids),
		IsAvailable:      available,
	}
}

type driverCreateBody struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	VehicleType      string   `json:"vehicleType"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds"`
}

// driverUpdateBody names the links assignedCatchmentAreas, unlike create.
type driverUpdateBody struct {
	FirstName              string   `json:"firstName"`
	LastName               string   `json:"lastName"`
	PhoneNumber            string   `json:"phoneNumber"`
	VehicleType            string   `json:"vehicleType"`
	AssignedCatchmentAreas []string `json:"assignedCatchmentAreas"`
}

// facilityRecord is a listed facility. Capabilities may arrive nested or
// as top-level flags.
type facilityRecord struct {
	ID           flexID               `json:"id"`
	Name         string               `json:"name"`
	Ward         string               `json:"ward"`
	LGA          string               `json:"lga"`
	Lat          float64              `json:"lat"`
	Lng          float64              `json:"lng"`
	FacilityType string               `json:"facilityType"`
	Capabilities entity.CapabilitySet `json:"capabilities"`
}

func (r *facilityRecord) UnmarshalJSON(b []byte) error {
	type plain facilityRecord
	if err := json.Unmarshal(b, (*plain)(r)); err != nil {
		return errors.WithStack(err)
	}
	if r.Capabilities != nil {
		return nil
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return errors.WithStack(err)
	}
	for _, c := range entity.Capabilities() {
		raw, ok := flat[string(c.Key)]
		if !ok {
			continue
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if r.Capabilities == nil {
			r.Capabilities = entity.CapabilitySet{}
		}
		r.Capabilities[c.Key] = v
	}

	return nil
}

func (r facilityRecord) toEntity() entity.Facility {
	return entity.Facility{
		ID:           string(r.ID),
		Name:         r.Name,
		Ward:         r.Ward,
		LGA:          r.LGA,
		Lat:          r.Lat,
		Lng:          r.Lng,
		FacilityType: r.FacilityType,
		Capabilities: r.Capabilities,
	}
}

// newFacilityCreateBody flattens every capability flag into the top level.
func newFacilityCreateBody(f *entity.Facility) map[string]any {
	body := map[string]any{
		"name":         f.Name,
		"ward":         f.Ward,
		"lga":          f.LGA,
		"lat":          f.Lat,
		"lng":          f.Lng,
		"facilityType": f.FacilityType,
	}
	for key, v := range f.Capabilities.Normalize() {
		body[string(key)] = v
	}

	return body
}

// facilityUpdateBody nests the flags under capabilities.
type facilityUpdateBody struct {
	Name         string               `json:"name"`
	Ward         string               `json:"ward"`
	LGA          string               `json:"lga"`
	Lat          float64              `json:"lat"`
	Lng          float64              `json:"lng"`
	FacilityType string               `json:"facilityType"`
	Capabilities entity.CapabilitySet `json:"capabilities"`
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
