package catalog

// YAML mapping types for the catalog file.

type fileDTO struct {
	Documents []documentDTO `yaml:"documents"`
	Profiles  []profileDTO  `yaml:"profiles"`
}

type documentDTO struct {
	ID       string `yaml:"id"`
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
	Region   string `yaml:"region"`
	Vendor   string `yaml:"vendor"`
}

type profileDTO struct {
	UserID               string   `yaml:"user_id"`
	Name                 string   `yaml:"name"`
	HomeCity             string   `yaml:"home_city"`
	PreferredAirline     string   `yaml:"preferred_airline"`
	BudgetLimit          float64  `yaml:"budget_limit"`
	Language             string   `yaml:"language"`
	SeatPreference       string   `yaml:"seat_preference"`
	FrequentDestinations []string `yaml:"frequent_destinations"`
}
