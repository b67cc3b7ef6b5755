package staticset

// SpacesFile is the top-level structure of the curated spaces YAML file.
type SpacesFile struct {
	Spaces []SpaceRecord `yaml:"spaces"`
}

// SpaceRecord is one curated parking space. Availability is intentionally
// absent: it is always recomputed from the slot counts.
type SpaceRecord struct {
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Host       string  `yaml:"host"`
	District   string  `yaml:"district"`
	Address    string  `yaml:"address"`
	HourlyRate int     `yaml:"hourlyRate"`
	EVFriendly bool    `yaml:"evFriendly"`
	Clearance  string  `yaml:"clearance"`
	TotalSlots int     `yaml:"totalSlots"`
	OpenSlots  int     `yaml:"openSlots"`
	Rating     float64 `yaml:"rating"`
	Reviews    int     `yaml:"reviews"`
	Lat        float64 `yaml:"lat"`
	Lng        float64 `yaml:"lng"`
	Image      string  `yaml:"image"`
}
