package govhk

// Loosely-typed upstream record shapes for the two carpark JSON datasets.
// Optional fields are pointers; validation happens at the normalization
// boundary, every derived field has an explicit fallback there.

// CarparkInfoResponse is the static "info" dataset.
type CarparkInfoResponse struct {
	Results []CarparkInfo `json:"results"`
}

// CarparkInfo carries the static attributes of one carpark.
type CarparkInfo struct {
	ParkID         string          `json:"park_Id"`
	Name           string          `json:"name"`
	Nature         string          `json:"nature"`
	DisplayAddress string          `json:"displayAddress"`
	DistrictName   string          `json:"district"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	Address        *CarparkAddress `json:"address"`
	PrivateCar     *VehicleClass   `json:"privateCar"`
	HeightLimits   []HeightLimit   `json:"heightLimits"`
	Facilities     []string        `json:"facilities"`
}

type CarparkAddress struct {
	Region     string `json:"region"`
	StreetName string `json:"streetName"`
}

// VehicleClass holds per-vehicle-type capacity and pricing.
type VehicleClass struct {
	Space         *int           `json:"space"`
	SpaceUNL      *int           `json:"spaceUNL"`
	SpaceEV       *int           `json:"spaceEV"`
	SpaceDIS      *int           `json:"spaceDIS"`
	HourlyCharges []HourlyCharge `json:"hourlyCharges"`
}

type HourlyCharge struct {
	Price           *float64         `json:"price"`
	UsageThresholds []UsageThreshold `json:"usageThresholds"`
}

type UsageThreshold struct {
	Price *float64 `json:"price"`
}

type HeightLimit struct {
	Height *float64 `json:"height"`
}

// CarparkVacancyResponse is the live "vacancy" dataset.
type CarparkVacancyResponse struct {
	Results []CarparkVacancy `json:"results"`
}

// CarparkVacancy carries the live counts of one carpark. The upstream feed
// reports -1 for unknown vacancy.
type CarparkVacancy struct {
	ParkID     string           `json:"park_Id"`
	PrivateCar []VehicleVacancy `json:"privateCar"`
}

type VehicleVacancy struct {
	Vacancy *float64 `json:"vacancy"`
}
