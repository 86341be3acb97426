package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultRoll RollSpec `json:"default_roll"`
	DefaultRoom RoomSpec `json:"default_room"`

	// Sizes given to newly added openings
	DefaultWindowWidthM  float64 `json:"default_window_width_m"`
	DefaultWindowHeightM float64 `json:"default_window_height_m"`
	DefaultDoorWidthM    float64 `json:"default_door_width_m"`
	DefaultDoorHeightM   float64 `json:"default_door_height_m"`

	// Pricing
	DefaultPricePerRoll float64 `json:"default_price_per_roll"`
	Currency            string  `json:"currency"`

	// Application preferences
	DefaultPreset  string   `json:"default_preset"` // Roll preset name, empty = use DefaultRoll
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with the built-in defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultRoll:          DefaultRoll(),
		DefaultRoom:          DefaultRoom(),
		DefaultWindowWidthM:  DefaultWindowWidthM,
		DefaultWindowHeightM: DefaultWindowHeightM,
		DefaultDoorWidthM:    DefaultDoorWidthM,
		DefaultDoorHeightM:   DefaultDoorHeightM,
		DefaultPricePerRoll:  0,
		Currency:             "EUR",
		RecentProjects:       []string{},
	}
}

// NewProject creates a project seeded with this config's defaults.
func (c AppConfig) NewProject(name string) Project {
	p := NewProject()
	p.Name = name
	c.ApplyToProject(&p)
	return p
}

// ApplyToProject copies the default roll and room into a project.
// Openings are left alone.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Roll = c.DefaultRoll
	p.Room = c.DefaultRoom
}

// AddWindow adds a window to the project using the configured default size.
func (c AppConfig) AddWindow(p *Project) Opening {
	return p.Windows.Add(c.DefaultWindowWidthM, c.DefaultWindowHeightM)
}

// AddDoor adds a door to the project using the configured default size.
func (c AppConfig) AddDoor(p *Project) Opening {
	return p.Doors.Add(c.DefaultDoorWidthM, c.DefaultDoorHeightM)
}

// AddRecentProject moves path to the front of the recent list, keeping at most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
