package usecase

import (
	"context"

	"ummana/internal/domain/entity"
)

// FacilityQuery narrows the facility list. A facility must have every listed capability.
type FacilityQuery struct {
	Search       string
	Ward         string
	LGA          string
	FacilityType string
	Capabilities []entity.CapabilityKey
}

// FacilityRow is a facility with its capability summaries.
type FacilityRow struct {
	entity.Facility
	CapabilityCount   int                       `json:"capabilityCount"`
	CapabilitySummary string                    `json:"capabilitySummary"`
	CapabilityDetails []entity.CapabilityDetail `json:"capabilityDetails"`
}

type FacilityPage struct {
	Items         []FacilityRow `json:"items"`
	Total         int           `json:"total"`
	Wards         []string      `json:"wards"`
	LGAs          []string      `json:"lgas"`
	FacilityTypes []string      `json:"facilityTypes"`
}

type FacilityInput struct {
	Name         string               `json:"name"`
	Ward         string               `json:"ward"`
	LGA          string               `json:"lga"`
	Lat          string               `json:"lat"`
	Lng          string               `json:"lng"`
	FacilityType string               `json:"facilityType"`
	Capabilities entity.CapabilitySet `json:"capabilities"`
}

// FacilityCatalog lists the choices offered by the facility form.
type FacilityCatalog struct {
	FacilityTypes    []string                 `json:"facilityTypes"`
	Capabilities     []entity.Capability      `json:"capabilities"`
	CapabilityGroups []entity.CapabilityGroup `json:"capabilityGroups"`
}

// FacilityUsecase manages health facilities.
type FacilityUsecase interface {
	List(ctx context.Context, query FacilityQuery) (*FacilityPage, error)
	Get(ctx context.Context, id string) (*FacilityRow, error)
	Reload(ctx context.Context)
	Catalog() *FacilityCatalog

	Create(ctx context.Context, input *FacilityInput) (*FacilityRow, error)
	Update(ctx context.Context, id string, input *FacilityInput) (*FacilityRow, error)
	Delete(ctx context.Context, id string) error
}
