package directory

import (
	"context"
	"net/http"

	"ummana/internal/domain/entity"
)

const (
	pathHospitals        = "/hospitals"
	pathRegisterHospital = "/register-hospital"
	pathUpdateHospital   = "/update-hospital"
	opListFacilities     = "list_facilities"
	opCreateFacility     = "create_facility"
	opUpdateFacility     = "update_facility"
	opDeleteFacility     = "delete_facility"
)

// ListFacilities fetches every facility, reading capability flags flat or nested.
func (c *Client) ListFacilities(ctx context.Context) ([]entity.Facility, error) {
	var records []facilityRecord
	if err := c.do(ctx, opListFacilities, http.MethodGet, pathHospitals, nil, &records); err != nil {
		return nil, err
	}

	facilities := make([]entity.Facility, 0, len(records))
	for _, r := range records {
		facilities = append(facilities, r.toEntity())
	}

	return facilities, nil
}

// CreateFacility registers a facility with its capability flags flattened into the body.
func (c *Client) CreateFacility(ctx context.Context, facility *entity.Facility) (string, error) {
	var created createdResponse
	if err := c.do(ctx, opCreateFacility, http.MethodPost, pathRegisterHospital, newFacilityCreateBody(facility), &created); err != nil {
		return "", err
	}

	return string(created.ID), nil
}

// UpdateFacility sends the capability flags nested under capabilities.
func (c *Client) UpdateFacility(ctx context.Context, facility *entity.Facility) error {
	body := facilityUpdateBody{
		Name:         facility.Name,
		Ward:         facility.Ward,
		LGA:          facility.LGA,
		Lat:          facility.Lat,
		Lng:          facility.Lng,
		FacilityType: facility.FacilityType,
		Capabilities: facility.Capabilities.Normalize(),
	}

	return c.do(ctx, opUpdateFacility, http.MethodPatch, resource(pathUpdateHospital, facility.ID), body, nil)
}

// DeleteFacility removes the facility with the given ID.
func (c *Client) DeleteFacility(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteFacility, http.MethodDelete, resource(pathHospitals, id), nil, nil)
}
