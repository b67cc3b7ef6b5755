package domain

import "strings"

// District is the coarse Hong Kong region a record belongs to.
type District string

const (
	DistrictHongKongIsland District = "Hong Kong Island"
	DistrictKowloon        District = "Kowloon"
	DistrictNewTerritories District = "New Territories"
)

// Availability buckets the open/total slot ratio into the four categories
// the frontend renders. It is a view over the slot counts, never stored
// independently of them.
type Availability string

const (
	AvailabilityFull   Availability = "full"
	AvailabilityLow    Availability = "low"
	AvailabilityMedium Availability = "medium"
	AvailabilityHigh   Availability = "high"
)

// AvailabilityFromRatio maps an occupancy ratio to its bucket.
// Thresholds: <=0 full, >=0.6 high, >=0.35 medium, otherwise low.
func AvailabilityFromRatio(ratio float64) Availability {
	switch {
	case ratio <= 0:
		return AvailabilityFull
	case ratio >= 0.6:
		return AvailabilityHigh
	case ratio >= 0.35:
		return AvailabilityMedium
	default:
		return AvailabilityLow
	}
}

// ParkingSpace is the normalized carpark record served to consumers.
// JSON field names are part of the payload contract and must not change.
type ParkingSpace struct {
	// ID is the upstream-assigned carpark identifier (park_Id).
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Host     string   `json:"host"`
	District District `json:"district"`
	Address  string   `json:"address"`

	// HourlyRate is a positive integer, currency-agnostic. Synthesized
	// deterministically when upstream publishes no charge table.
	HourlyRate int    `json:"hourlyRate"`
	EVFriendly bool   `json:"evFriendly"`
	Clearance  string `json:"clearance"`

	Availability Availability `json:"availability"`
	TotalSlots   int          `json:"totalSlots"`
	OpenSlots    int          `json:"openSlots"`

	// Rating and Reviews are best-effort derived values, stable per ID.
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`

	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Image string  `json:"image"`
}

// regionMap maps known upstream region codes and names to districts.
var regionMap = map[string]District{
	"HK":               DistrictHongKongIsland,
	"HKI":              DistrictHongKongIsland,
	"HONG KONG":        DistrictHongKongIsland,
	"HONG KONG ISLAND": DistrictHongKongIsland,
	"ISLAND":           DistrictHongKongIsland,
	"KLN":              DistrictKowloon,
	"KOWLOON":          DistrictKowloon,
	"NT":               DistrictNewTerritories,
	"NEW TERRITORIES":  DistrictNewTerritories,
	"NEW TERRITORY":    DistrictNewTerritories,
}

// DistrictFromRegion resolves a district from a carpark's region code and
// district name, in that priority order. Defaults to Hong Kong Island.
func DistrictFromRegion(region, districtName string) District {
	if key := strings.ToUpper(strings.TrimSpace(region)); key != "" {
		if d, ok := regionMap[key]; ok {
			return d
		}
	}
	key := strings.ToUpper(strings.TrimSpace(districtName))
	switch {
	case strings.Contains(key, "KOWLOON"):
		return DistrictKowloon
	case strings.Contains(key, "ISLAND"):
		return DistrictHongKongIsland
	case strings.Contains(key, "NEW"):
		return DistrictNewTerritories
	}
	return DistrictHongKongIsland
}
