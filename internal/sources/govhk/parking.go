package govhk

import (
	"fmt"
	"math"
	"strings"

	"github.com/harborpark/transport/internal/domain"
)

// maxParkingSpaces bounds the normalized result, in vacancy-dataset order.
const maxParkingSpaces = 80

// fallbackImages is a fixed gallery; the seeded hash picks one per carpark
// so the choice is stable across refreshes.
var fallbackImages = []string{
	"https://images.unsplash.com/photo-1506521781263-d8422e82f27a?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1502877338535-766e1452684a?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=800&q=80",
}

// NormalizeParkingSpaces joins the vacancy dataset against the info dataset
// by park_Id and derives one ParkingSpace per joined record. Vacancy records
// with no matching info, or whose info lacks numeric coordinates, are
// dropped: a space that cannot be plotted is not usable downstream.
func NormalizeParkingSpaces(info *CarparkInfoResponse, vacancy *CarparkVacancyResponse) []domain.ParkingSpace {
	infoByID := make(map[string]*CarparkInfo, len(info.Results))
	for i := range info.Results {
		if rec := &info.Results[i]; rec.ParkID != "" {
			infoByID[rec.ParkID] = rec
		}
	}

	spaces := make([]domain.ParkingSpace, 0, maxParkingSpaces)
	for i := range vacancy.Results {
		vac := &vacancy.Results[i]
		rec, ok := infoByID[vac.ParkID]
		if !ok {
			continue
		}
		if rec.Latitude == nil || rec.Longitude == nil {
			continue
		}

		openSlots := deriveOpenSlots(vac, rec)
		totalSlots := deriveTotalSlots(rec, openSlots)
		ratio := 0.0
		if totalSlots > 0 {
			ratio = float64(openSlots) / float64(totalSlots)
		}

		region := ""
		address := "Hong Kong"
		if rec.Address != nil {
			region = rec.Address.Region
			if rec.Address.StreetName != "" {
				address = rec.Address.StreetName
			}
		}
		if rec.DisplayAddress != "" {
			address = rec.DisplayAddress
		}

		title := rec.Name
		if title == "" {
			title = "Transport Department Carpark"
		}

		spaces = append(spaces, domain.ParkingSpace{
			ID:           vac.ParkID,
			Title:        title,
			Host:         deriveHost(rec.Nature, rec.Name),
			District:     domain.DistrictFromRegion(region, rec.DistrictName),
			Address:      address,
			HourlyRate:   deriveHourlyRate(rec, vac.ParkID),
			EVFriendly:   hasEVCharger(rec.Facilities),
			Clearance:    deriveClearance(rec.HeightLimits),
			Availability: domain.AvailabilityFromRatio(ratio),
			TotalSlots:   totalSlots,
			OpenSlots:    clampInt(openSlots, 0, totalSlots),
			Rating:       math.Round((4+domain.SeededRandom(vac.ParkID)*0.9)*10) / 10,
			Reviews:      40 + int(math.Round(domain.SeededRandom(vac.ParkID+"-reviews")*350)),
			Lat:          *rec.Latitude,
			Lng:          *rec.Longitude,
			Image:        pickImage(vac.ParkID),
		})
		if len(spaces) == maxParkingSpaces {
			break
		}
	}
	return spaces
}

// deriveOpenSlots prefers the live private-car vacancy count when present
// and non-negative, falling back to the stated capacity floored at zero.
func deriveOpenSlots(vac *CarparkVacancy, rec *CarparkInfo) int {
	if len(vac.PrivateCar) > 0 {
		if v := vac.PrivateCar[0].Vacancy; v != nil && *v >= 0 {
			return int(*v)
		}
	}
	if rec.PrivateCar != nil && rec.PrivateCar.Space != nil && *rec.PrivateCar.Space > 0 {
		return *rec.PrivateCar.Space
	}
	return 0
}

// deriveTotalSlots takes the first positive declared space count, or
// synthesizes a plausible total when the carpark declares none. The
// synthetic value is a deliberately rough estimate.
func deriveTotalSlots(rec *CarparkInfo, openSlots int) int {
	if pc := rec.PrivateCar; pc != nil {
		for _, count := range []*int{pc.Space, pc.SpaceUNL, pc.SpaceEV, pc.SpaceDIS} {
			if count != nil && *count > 0 {
				return *count
			}
		}
	}
	estimate := int(math.Round(float64(openSlots) * 1.4))
	if estimate == 0 {
		estimate = 12
	}
	return clampInt(estimate, 8, 500)
}

// deriveHourlyRate takes the first positive price from the hourly-charge
// structure, otherwise synthesizes a stable value from the carpark
// identifier. Every charge entry is scanned for a direct price before any
// nested usage threshold is consulted: a direct price anywhere in the list
// beats a threshold price in an earlier entry.
func deriveHourlyRate(rec *CarparkInfo, id string) int {
	if pc := rec.PrivateCar; pc != nil {
		for _, charge := range pc.HourlyCharges {
			if charge.Price != nil && *charge.Price > 0 {
				return int(math.Round(*charge.Price))
			}
		}
		for _, charge := range pc.HourlyCharges {
			for _, threshold := range charge.UsageThresholds {
				if threshold.Price != nil && *threshold.Price > 0 {
					return int(math.Round(*threshold.Price))
				}
			}
		}
	}
	return 20 + int(math.Round(domain.SeededRandom(id)*25))
}

func deriveClearance(limits []HeightLimit) string {
	for _, limit := range limits {
		if limit.Height != nil && *limit.Height > 0 {
			return fmt.Sprintf("%.1fm", *limit.Height)
		}
	}
	return "2.2m"
}

func hasEVCharger(facilities []string) bool {
	for _, facility := range facilities {
		if strings.Contains(strings.ToLower(facility), "ev") {
			return true
		}
	}
	return false
}

// deriveHost labels the operator from the carpark's operating nature,
// falling back to the first word of its name, then a generic label.
func deriveHost(nature, name string) string {
	if nature != "" {
		return titleCase(strings.ReplaceAll(nature, "_", " ")) + " operator"
	}
	if words := strings.Fields(name); len(words) > 0 {
		return words[0] + " management"
	}
	return "Transport Department"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func pickImage(id string) string {
	idx := int(domain.SeededRandom(id) * float64(len(fallbackImages)))
	if idx >= len(fallbackImages) {
		idx = 0
	}
	return fallbackImages[idx]
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
