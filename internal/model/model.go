package model

// RollSpec describes one wallpaper roll as sold.
type RollSpec struct {
	WidthCm         float64 `json:"width_cm" toml:"width_cm"`                   // Roll width in cm
	LengthM         float64 `json:"length_m" toml:"length_m"`                   // Roll length in m
	PatternRepeatCm float64 `json:"pattern_repeat_cm" toml:"pattern_repeat_cm"` // Vertical pattern repeat in cm, 0 = none
}

// HasPatternRepeat reports whether strips must be cut in whole repeats.
func (r RollSpec) HasPatternRepeat() bool {
	return r.PatternRepeatCm > 0
}

// RepeatM returns the pattern repeat in meters.
func (r RollSpec) RepeatM() float64 {
	return r.PatternRepeatCm / 100.0
}

// RoomSpec describes the walls to cover.
type RoomSpec struct {
	PerimeterM float64 `json:"perimeter_m" toml:"perimeter_m"` // Total wall run in m
	HeightM    float64 `json:"height_m" toml:"height_m"`       // Floor to ceiling in m
}

// WallArea returns perimeter times height in m².
func (r RoomSpec) WallArea() float64 {
	return r.PerimeterM * r.HeightM
}

// Opening is a window or a door cut out of the wall.
// ID is only a handle for the caller; it plays no part in the math.
type Opening struct {
	ID      int     `json:"id" toml:"id"`
	WidthM  float64 `json:"width_m" toml:"width_m"`
	HeightM float64 `json:"height_m" toml:"height_m"`
}

// Area returns the opening area in m².
func (o Opening) Area() float64 {
	return o.WidthM * o.HeightM
}

// TotalOpeningWidth sums the widths of the given openings.
func TotalOpeningWidth(openings []Opening) float64 {
	var total float64
	for _, o := range openings {
		total += o.WidthM
	}
	return total
}

// TotalOpeningArea sums the areas of the given openings.
func TotalOpeningArea(openings []Opening) float64 {
	var total float64
	for _, o := range openings {
		total += o.Area()
	}
	return total
}

// CalculationResult holds everything derived from one input snapshot.
// It is always recomputed as a whole.
type CalculationResult struct {
	StripsPerRoll     int     `json:"strips_per_roll"`     // Full-height strips one roll yields
	TotalStripsNeeded int     `json:"total_strips_needed"` // Strips to cover the effective perimeter
	RollsNeeded       int     `json:"rolls_needed"`        // Minimum rolls
	RollsWithMargin   int     `json:"rolls_with_margin"`   // Rolls including the 10% margin
	WastePercentage   float64 `json:"waste_percentage"`    // Unused share of purchased material
	WallAreaM2        float64 `json:"wall_area_m2"`
	OpeningsAreaM2    float64 `json:"openings_area_m2"`
	EffectiveAreaM2   float64 `json:"effective_area_m2"`

	StripHeightM        float64 `json:"strip_height_m"`        // Cut length per strip, pattern aligned
	EffectivePerimeterM float64 `json:"effective_perimeter_m"` // Perimeter minus opening widths
}

// Project is the caller-side parameter store: everything a calculation needs.
// Results are never stored with it.
type Project struct {
	Name    string      `json:"name" toml:"name"`
	Roll    RollSpec    `json:"roll" toml:"roll"`
	Room    RoomSpec    `json:"room" toml:"room"`
	Windows OpeningList `json:"windows" toml:"windows"`
	Doors   OpeningList `json:"doors" toml:"doors"`
}

// Default input values used when nothing else is configured.
const (
	DefaultRollWidthCm     = 53.0
	DefaultRollLengthM     = 10.0
	DefaultPatternRepeatCm = 0.0
	DefaultPerimeterM      = 16.0
	DefaultRoomHeightM     = 2.7

	DefaultWindowWidthM  = 1.2
	DefaultWindowHeightM = 1.5
	DefaultDoorWidthM    = 0.8
	DefaultDoorHeightM   = 2.0
)

// DefaultRoll returns the standard 0.53 x 10 m roll without pattern repeat.
func DefaultRoll() RollSpec {
	return RollSpec{
		WidthCm:         DefaultRollWidthCm,
		LengthM:         DefaultRollLengthM,
		PatternRepeatCm: DefaultPatternRepeatCm,
	}
}

// DefaultRoom returns a 16 m perimeter room with 2.7 m ceilings.
func DefaultRoom() RoomSpec {
	return RoomSpec{
		PerimeterM: DefaultPerimeterM,
		HeightM:    DefaultRoomHeightM,
	}
}

func NewProject() Project {
	return Project{
		Name:    "Untitled",
		Roll:    DefaultRoll(),
		Room:    DefaultRoom(),
		Windows: NewOpeningList(),
		Doors:   NewOpeningList(),
	}
}

// AddWindow adds a window with the default 1.2 x 1.5 m size.
func (p *Project) AddWindow() Opening {
	return p.Windows.Add(DefaultWindowWidthM, DefaultWindowHeightM)
}

// AddDoor adds a door with the default 0.8 x 2.0 m size.
func (p *Project) AddDoor() Opening {
	return p.Doors.Add(DefaultDoorWidthM, DefaultDoorHeightM)
}
