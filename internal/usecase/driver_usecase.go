package usecase

import (
	"context"

	"ummana/internal/domain/entity"
)

// DriverQuery narrows the driver list. Ward and LGA match any linked community.
type DriverQuery struct {
	Search      string
	Ward        string
	LGA         string
	VehicleType string
}

// DriverRow is a driver with its linked communities resolved for display.
type DriverRow struct {
	entity.Driver
	Name           string           `json:"name"`
	Areas          []entity.AreaRef `json:"areas"`
	PrimaryArea    entity.AreaRef   `json:"primaryArea"`
	CatchmentCount int              `json:"catchmentCount"`
}

type DriverPage struct {
	Items        []DriverRow `json:"items"`
	Total        int         `json:"total"`
	Wards        []string    `json:"wards"`
	LGAs         []string    `json:"lgas"`
	VehicleTypes []string    `json:"vehicleTypes"`
}

type DriverInput struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	VehicleType      string   `json:"vehicleType"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds"`
}

// DriverUsecase manages ETS drivers.
type DriverUsecase interface {
	List(ctx context.Context, query DriverQuery) (*DriverPage, error)
	Get(ctx context.Context, id string) (*DriverRow, error)
	Reload(ctx context.Context)

	Create(ctx context.Context, input *DriverInput) (*DriverRow, error)
	Update(ctx context.Context, id string, input *DriverInput) (*DriverRow, error)
	Delete(ctx context.Context, id string) error
}
