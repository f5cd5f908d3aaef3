package entity

// VehicleType is the kind of vehicle an ETS driver operates.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

// VehicleTypes lists the supported vehicle types in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleMotorcycle}
}

// Valid reports whether v is one of the supported vehicle types.
func (v VehicleType) Valid() bool {
	return v == VehicleCar || v == VehicleMotorcycle
}

// Driver is an emergency transport driver.
type Driver struct {
	ID               string      `json:"id"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	PhoneNumber      string      `json:"phoneNumber"`
	VehicleType      VehicleType `json:"vehicleType"`
	CatchmentAreaIDs []string    `json:"catchmentAreaIds"`
	IsAvailable      bool        `json:"isAvailable"`
}

func (d Driver) FullName() string {
	return joinName(d.FirstName, d.LastName)
}

// PrimaryAreaID returns the first linked community, if any.
func (d Driver) PrimaryAreaID() (string, bool) {
	if len(d.CatchmentAreaIDs) == 0 {
		return "", false
	}

	return d.CatchmentAreaIDs[0], true
}
