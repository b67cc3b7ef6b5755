package domain

import "time"

// SourceTimestamps carries the last-updated markers reported by (or derived
// from) each auxiliary source.
type SourceTimestamps struct {
	Incidents string `json:"incidents,omitempty"`
}

// TrafficSection groups the incident list with its source timestamps.
type TrafficSection struct {
	Incidents        []TrafficIncident `json:"incidents"`
	SourceTimestamps SourceTimestamps  `json:"sourceTimestamps"`
}

// TransportLivePayload is the unit the aggregator caches and serves.
// Once assembled it is treated as an immutable snapshot; a refresh builds
// a whole new payload rather than mutating this one.
type TransportLivePayload struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Parking     []ParkingSpace `json:"parking"`
	Traffic     TrafficSection `json:"traffic"`
}
