package staticset

import (
	"fmt"

	"github.com/harborpark/transport/internal/domain"
)

// Mapper converts curated records to domain.ParkingSpace entries.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSpaces validates and converts the file's records. Records without an
// id or with a non-positive total are skipped; open slots are clamped into
// [0, total] and availability recomputed so the slot invariant holds for
// static records exactly as it does for live ones.
func (m *Mapper) MapSpaces(file *SpacesFile) ([]domain.ParkingSpace, error) {
	spaces := make([]domain.ParkingSpace, 0, len(file.Spaces))
	for _, rec := range file.Spaces {
		if rec.ID == "" || rec.TotalSlots <= 0 {
			continue
		}

		open := rec.OpenSlots
		if open < 0 {
			open = 0
		}
		if open > rec.TotalSlots {
			open = rec.TotalSlots
		}

		spaces = append(spaces, domain.ParkingSpace{
			ID:           rec.ID,
			Title:        rec.Title,
			Host:         rec.Host,
			District:     domain.DistrictFromRegion(rec.District, rec.District),
			Address:      rec.Address,
			HourlyRate:   rec.HourlyRate,
			EVFriendly:   rec.EVFriendly,
			Clearance:    rec.Clearance,
			Availability: domain.AvailabilityFromRatio(float64(open) / float64(rec.TotalSlots)),
			TotalSlots:   rec.TotalSlots,
			OpenSlots:    open,
			Rating:       rec.Rating,
			Reviews:      rec.Reviews,
			Lat:          rec.Lat,
			Lng:          rec.Lng,
			Image:        rec.Image,
		})
	}

	if len(spaces) == 0 {
		return nil, fmt.Errorf("no valid parking spaces found in static dataset")
	}
	return spaces, nil
}
