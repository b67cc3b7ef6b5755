package domain

import "testing"

func TestAvailabilityFromRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Availability
	}{
		{"zero is full", 0, AvailabilityFull},
		{"negative is full", -0.5, AvailabilityFull},
		{"just above zero is low", 0.01, AvailabilityLow},
		{"below medium threshold is low", 0.34, AvailabilityLow},
		{"medium threshold", 0.35, AvailabilityMedium},
		{"below high threshold is medium", 0.59, AvailabilityMedium},
		{"high threshold", 0.6, AvailabilityHigh},
		{"everything open", 1.0, AvailabilityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailabilityFromRatio(tt.ratio); got != tt.want {
				t.Errorf("AvailabilityFromRatio(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestDistrictFromRegion(t *testing.T) {
	tests := []struct {
		name         string
		region       string
		districtName string
		want         District
	}{
		{"region code HK", "HK", "", DistrictHongKongIsland},
		{"region code KLN", "KLN", "", DistrictKowloon},
		{"region code NT", "NT", "", DistrictNewTerritories},
		{"full region name", "New Territories", "", DistrictNewTerritories},
		{"lowercase region", "kowloon", "", DistrictKowloon},
		{"region wins over district name", "NT", "Kowloon City", DistrictNewTerritories},
		{"unknown region falls back to district name", "XX", "Kowloon City", DistrictKowloon},
		{"district name island", "", "Islands District", DistrictHongKongIsland},
		{"district name new territories", "", "New Territories North", DistrictNewTerritories},
		{"both empty defaults to island", "", "", DistrictHongKongIsland},
		{"whitespace region", "  KLN  ", "", DistrictKowloon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistrictFromRegion(tt.region, tt.districtName); got != tt.want {
				t.Errorf("DistrictFromRegion(%q, %q) = %v, want %v", tt.region, tt.districtName, got, tt.want)
			}
		})
	}
}
