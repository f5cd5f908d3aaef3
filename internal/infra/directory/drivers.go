package directory

import (
	"context"
	"net/http"

	"ummana/internal/domain/entity"
)

const (
	pathETSDrivers        = "/ets-drivers"
	pathRegisterETSDriver = "/register-ets-driver"
	pathUpdateETSDriver   = "/update-ets-driver"
	opListDrivers         = "list_drivers"
	opCreateDriver        = "create_driver"
	opUpdateDriver        = "update_driver"
	opDeleteDriver        = "delete_driver"
)

// ListDrivers fetches every ETS driver; a missing availability flag reads as available.
func (c *Client) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	var records []driverRecord
	if err := c.do(ctx, opListDrivers, http.MethodGet, pathETSDrivers, nil, &records); err != nil {
		return nil, err
	}

	drivers := make([]entity.Driver, 0, len(records))
	for _, r := range records {
		drivers = append(drivers, r.toEntity())
	}

	return drivers, nil
}

// CreateDriver registers a driver with its communities under catchmentAreaIds.
func (c *Client) CreateDriver(ctx context.Context, driver *entity.Driver) (string, error) {
	body := driverCreateBody{
		FirstName:        driver.FirstName,
		LastName:         driver.LastName,
		PhoneNumber:      driver.PhoneNumber,
		VehicleType:      string(driver.VehicleType),
		CatchmentAreaIDs: nonNil(driver.CatchmentAreaIDs),
	}

	var created createdResponse
	if err := c.do(ctx, opCreateDriver, http.MethodPost, pathRegisterETSDriver, body, &created); err != nil {
		return "", err
	}

	return string(created.ID), nil
}

// UpdateDriver sends the communities under assignedCatchmentAreas, as the update endpoint expects.
func (c *Client) UpdateDriver(ctx context.Context, driver *entity.Driver) error {
	body := driverUpdateBody{
		FirstName:              driver.FirstName,
		LastName:               driver.LastName,
		PhoneNumber:            driver.PhoneNumber,
		VehicleType:            string(driver.VehicleType),
		AssignedCatchmentAreas: nonNil(driver.CatchmentAreaIDs),
	}

	return c.do(ctx, opUpdateDriver, http.MethodPatch, resource(pathUpdateETSDriver, driver.ID), body, nil)
}

// DeleteDriver removes the driver with the given ID.
func (c *Client) DeleteDriver(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteDriver, http.MethodDelete, resource(pathETSDrivers, id), nil, nil)
}
