package model

import "github.com/google/uuid"

// RollPreset is a wallpaper product the user buys regularly.
type RollPreset struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	WidthCm         float64 `json:"width_cm"`
	LengthM         float64 `json:"length_m"`
	PatternRepeatCm float64 `json:"pattern_repeat_cm"`
	PricePerRoll    float64 `json:"price_per_roll"`
}

// NewRollPreset creates a new RollPreset with a generated ID.
func NewRollPreset(name string, widthCm, lengthM, repeatCm, price float64) RollPreset {
	return RollPreset{
		ID:              uuid.New().String()[:8],
		Name:            name,
		WidthCm:         widthCm,
		LengthM:         lengthM,
		PatternRepeatCm: repeatCm,
		PricePerRoll:    price,
	}
}

// ToRollSpec converts the preset into calculator input.
func (rp RollPreset) ToRollSpec() RollSpec {
	return RollSpec{
		WidthCm:         rp.WidthCm,
		LengthM:         rp.LengthM,
		PatternRepeatCm: rp.PatternRepeatCm,
	}
}

// RollCatalog holds the user's saved roll presets.
type RollCatalog struct {
	Rolls []RollPreset `json:"rolls"`
}

// DefaultRollCatalog returns a catalog of common roll formats.
func DefaultRollCatalog() RollCatalog {
	return RollCatalog{
		Rolls: []RollPreset{
			NewRollPreset("Standard 0.53 x 10.05 m", 53, 10.05, 0, 0),
			NewRollPreset("Standard 0.53 x 10.05 m, 64 cm repeat", 53, 10.05, 64, 0),
			NewRollPreset("Wide 0.70 x 10.05 m", 70, 10.05, 0, 0),
			NewRollPreset("Metre 1.06 x 10.05 m", 106, 10.05, 0, 0),
			NewRollPreset("Metre 1.06 x 25 m", 106, 25, 0, 0),
			NewRollPreset("US 0.52 x 10.05 m (double roll)", 52, 10.05, 0, 0),
		},
	}
}

// Add appends a preset to the catalog.
func (c *RollCatalog) Add(rp RollPreset) {
	c.Rolls = append(c.Rolls, rp)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (c *RollCatalog) Remove(id string) bool {
	for i, r := range c.Rolls {
		if r.ID == id {
			c.Rolls = append(c.Rolls[:i], c.Rolls[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (c *RollCatalog) FindByID(id string) *RollPreset {
	for i := range c.Rolls {
		if c.Rolls[i].ID == id {
			return &c.Rolls[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (c *RollCatalog) FindByName(name string) *RollPreset {
	for i := range c.Rolls {
		if c.Rolls[i].Name == name {
			return &c.Rolls[i]
		}
	}
	return nil
}

// Names returns the preset names in catalog order.
func (c *RollCatalog) Names() []string {
	names := make([]string, len(c.Rolls))
	for i, r := range c.Rolls {
		names[i] = r.Name
	}
	return names
}
