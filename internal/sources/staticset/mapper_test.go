package staticset

import (
	"testing"

	"github.com/harborpark/transport/internal/domain"
)

func TestMapSpaces(t *testing.T) {
	file := &SpacesFile{Spaces: []SpaceRecord{
		{ID: "hp-1", Title: "Central Carpark", District: "HK", TotalSlots: 100, OpenSlots: 70},
		{ID: "hp-2", Title: "Mong Kok Carpark", District: "KLN", TotalSlots: 50, OpenSlots: 0},
	}}

	spaces, err := NewMapper().MapSpaces(file)
	if err != nil {
		t.Fatalf("MapSpaces() error = %v", err)
	}
	if len(spaces) != 2 {
		t.Fatalf("got %d spaces, want 2", len(spaces))
	}

	if spaces[0].District != domain.DistrictHongKongIsland {
		t.Errorf("district = %v", spaces[0].District)
	}
	if spaces[0].Availability != domain.AvailabilityHigh {
		t.Errorf("availability = %v, want high for 70/100", spaces[0].Availability)
	}
	if spaces[1].Availability != domain.AvailabilityFull {
		t.Errorf("availability = %v, want full for 0/50", spaces[1].Availability)
	}
}

func TestMapSpacesSkipsInvalidRecords(t *testing.T) {
	file := &SpacesFile{Spaces: []SpaceRecord{
		{ID: "", TotalSlots: 10},
		{ID: "no-total", TotalSlots: 0},
		{ID: "ok", TotalSlots: 10, OpenSlots: 5},
	}}

	spaces, err := NewMapper().MapSpaces(file)
	if err != nil {
		t.Fatalf("MapSpaces() error = %v", err)
	}
	if len(spaces) != 1 || spaces[0].ID != "ok" {
		t.Fatalf("got %+v, want only the valid record", spaces)
	}
}

func TestMapSpacesClampsOpenSlots(t *testing.T) {
	file := &SpacesFile{Spaces: []SpaceRecord{
		{ID: "over", TotalSlots: 10, OpenSlots: 25},
		{ID: "under", TotalSlots: 10, OpenSlots: -3},
	}}

	spaces, err := NewMapper().MapSpaces(file)
	if err != nil {
		t.Fatalf("MapSpaces() error = %v", err)
	}
	if spaces[0].OpenSlots != 10 {
		t.Errorf("over: OpenSlots = %d, want clamped to 10", spaces[0].OpenSlots)
	}
	if spaces[1].OpenSlots != 0 {
		t.Errorf("under: OpenSlots = %d, want clamped to 0", spaces[1].OpenSlots)
	}
	if spaces[1].Availability != domain.AvailabilityFull {
		t.Errorf("under: Availability = %v, want full", spaces[1].Availability)
	}
}

func TestMapSpacesAllInvalid(t *testing.T) {
	file := &SpacesFile{Spaces: []SpaceRecord{{ID: "", TotalSlots: 0}}}
	if _, err := NewMapper().MapSpaces(file); err == nil {
		t.Error("MapSpaces() = nil error when no record is valid")
	}
}
