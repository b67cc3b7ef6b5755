package domain

import "strings"

// Severity classifies a traffic incident by upstream status code.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityModerate Severity = "moderate"
)

// SeverityFromStatus maps the feed's CurrentStatus code to a severity.
// 1 is critical, 2 is major, everything else (including unparsable codes)
// is moderate.
func SeverityFromStatus(status int) Severity {
	switch status {
	case 1:
		return SeverityCritical
	case 2:
		return SeverityMajor
	default:
		return SeverityModerate
	}
}

// TrafficIncident is a normalized special-traffic-news message.
type TrafficIncident struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Region      District `json:"region"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	// StartTime is RFC 3339 UTC, empty when the upstream reference date
	// could not be parsed.
	StartTime string   `json:"startTime,omitempty"`
	Severity  Severity `json:"severity"`
}

// regionHints is checked in order; the first district with a matching
// keyword wins. Island first, then Kowloon, then the New Territories.
var regionHints = []struct {
	district District
	keywords []string
}{
	{
		district: DistrictHongKongIsland,
		keywords: []string{"central", "sheung wan", "sai ying pun", "wan chai", "causeway bay", "north point", "belcher", "pok fu lam", "happy valley"},
	},
	{
		district: DistrictKowloon,
		keywords: []string{"kowloon", "yau tong", "tsim sha tsui", "mong kok", "sham shui po", "kwun tong", "kowloon bay", "hung hom", "yau ma tei", "cheung sha wan"},
	},
	{
		district: DistrictNewTerritories,
		keywords: []string{"yuen long", "tuen mun", "tin shui wai", "sha tin", "tai po", "fanling", "sheung shui", "sai kung", "tsuen wan", "ma on shan"},
	},
}

// DistrictFromText infers the district an incident text refers to by
// scanning the ordered keyword table, then falling back to plain district
// names for text the hint lists miss. Defaults to Hong Kong Island.
func DistrictFromText(text string) District {
	if text == "" {
		return DistrictHongKongIsland
	}
	normalized := strings.ToLower(text)
	for _, hint := range regionHints {
		for _, keyword := range hint.keywords {
			if strings.Contains(normalized, keyword) {
				return hint.district
			}
		}
	}
	if strings.Contains(normalized, "kowloon") {
		return DistrictKowloon
	}
	if strings.Contains(normalized, "new territories") {
		return DistrictNewTerritories
	}
	return DistrictHongKongIsland
}
