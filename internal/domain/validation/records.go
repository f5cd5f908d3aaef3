package validation

import (
	"strings"

	"ummana/internal/domain/entity"
)

// CommunityFields is the raw input of the community form.
type CommunityFields struct {
	Name       string
	Settlement string
	Ward       string
	LGA        string
	Lat        string
	Lng        string
}

// Community validates f and builds the record to send. The ID is left empty.
func Community(f CommunityFields) (entity.Community, error) {
	if err := RequireFields(MsgCommunityRequired, f.Name, f.Settlement, f.Ward, f.LGA); err != nil {
		return entity.Community{}, err
	}

	coords, err := ParseCoordinates(f.Lat, f.Lng)
	if err != nil {
		return entity.Community{}, err
	}

	return entity.Community{
		Name:       strings.TrimSpace(f.Name),
		Settlement: strings.TrimSpace(f.Settlement),
		Ward:       strings.TrimSpace(f.Ward),
		LGA:        strings.TrimSpace(f.LGA),
		Location:   &coords,
	}, nil
}

// AgentFields is the raw input of the CHIPS agent form.
// CatchmentAreaIDs holds one entry per picker slot, empty for unresolved slots.
type AgentFields struct {
	FirstName        string
	LastName         string
	PhoneNumber      string
	CatchmentAreaIDs []string

	// MaxLinked caps CatchmentAreaIDs; zero means DefaultMaxLinked.
	MaxLinked int
}

// Agent checks required fields, then the phone, then the linked communities.
func Agent(f AgentFields) (entity.Agent, error) {
	if err := RequireFields(MsgAgentRequired, f.FirstName, f.LastName, f.PhoneNumber); err != nil {
		return entity.Agent{}, err
	}

	phone := strings.TrimSpace(f.PhoneNumber)
	if err := ValidatePhone(phone); err != nil {
		return entity.Agent{}, err
	}

	ids, err := CollectLinkedIDs(f.CatchmentAreaIDs, f.MaxLinked)
	if err != nil {
		return entity.Agent{}, err
	}

	return entity.Agent{
		FirstName:        strings.TrimSpace(f.FirstName),
		LastName:         strings.TrimSpace(f.LastName),
		PhoneNumber:      phone,
		CatchmentAreaIDs: ids,
		Status:           entity.AgentStatusActive,
	}, nil
}

// DriverFields is the raw input of the ETS driver form.
type DriverFields struct {
	FirstName        string
	LastName         string
	PhoneNumber      string
	VehicleType      string
	CatchmentAreaIDs []string
	MaxLinked        int
}

// Driver checks required fields, phone, linked communities and vehicle type in that order.
func Driver(f DriverFields) (entity.Driver, error) {
	if err := RequireFields(MsgDriverRequired, f.FirstName, f.LastName, f.PhoneNumber, f.VehicleType); err != nil {
		return entity.Driver{}, err
	}

	phone := strings.TrimSpace(f.PhoneNumber)
	if err := ValidatePhone(phone); err != nil {
		return entity.Driver{}, err
	}

	ids, err := CollectLinkedIDs(f.CatchmentAreaIDs, f.MaxLinked)
	if err != nil {
		return entity.Driver{}, err
	}

	vehicle := strings.TrimSpace(f.VehicleType)
	if err := ValidateVehicleType(vehicle); err != nil {
		return entity.Driver{}, err
	}

	return entity.Driver{
		FirstName:        strings.TrimSpace(f.FirstName),
		LastName:         strings.TrimSpace(f.LastName),
		PhoneNumber:      phone,
		VehicleType:      entity.VehicleType(vehicle),
		CatchmentAreaIDs: ids,
		IsAvailable:      true,
	}, nil
}

// FacilityFields is the raw input of the facility form.
type FacilityFields struct {
	Name         string
	Ward         string
	LGA          string
	Lat          string
	Lng          string
	FacilityType string
	Capabilities entity.CapabilitySet
}

// Facility validates f. Capabilities are normalized onto the full catalog.
func Facility(f FacilityFields) (entity.Facility, error) {
	if err := RequireFields(MsgFacilityRequired, f.Name, f.Ward, f.LGA, f.FacilityType); err != nil {
		return entity.Facility{}, err
	}

	coords, err := ParseCoordinates(f.Lat, f.Lng)
	if err != nil {
		return entity.Facility{}, err
	}

	facilityType := strings.TrimSpace(f.FacilityType)
	if err := ValidateFacilityType(facilityType); err != nil {
		return entity.Facility{}, err
	}

	return entity.Facility{
		Name:         strings.TrimSpace(f.Name),
		Ward:         strings.TrimSpace(f.Ward),
		LGA:          strings.TrimSpace(f.LGA),
		Lat:          coords.Lat,
		Lng:          coords.Lng,
		FacilityType: facilityType,
		Capabilities: f.Capabilities.Normalize(),
	}, nil
}
