package model

import (
	"testing"
)

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject()

	if p.Roll.WidthCm != 53 || p.Roll.LengthM != 10 || p.Roll.PatternRepeatCm != 0 {
		t.Errorf("unexpected default roll: %+v", p.Roll)
	}
	if p.Room.PerimeterM != 16 || p.Room.HeightM != 2.7 {
		t.Errorf("unexpected default room: %+v", p.Room)
	}
	if p.Windows.Len() != 0 || p.Doors.Len() != 0 {
		t.Error("new project should have no openings")
	}
}

func TestProjectAddDefaultOpenings(t *testing.T) {
	p := NewProject()

	w := p.AddWindow()
	if w.WidthM != 1.2 || w.HeightM != 1.5 {
		t.Errorf("expected 1.2 x 1.5 window, got %.2f x %.2f", w.WidthM, w.HeightM)
	}
	d := p.AddDoor()
	if d.WidthM != 0.8 || d.HeightM != 2.0 {
		t.Errorf("expected 0.8 x 2.0 door, got %.2f x %.2f", d.WidthM, d.HeightM)
	}
	// Windows and doors hand out IDs independently
	if w.ID != 1 || d.ID != 1 {
		t.Errorf("expected both first IDs to be 1, got window=%d door=%d", w.ID, d.ID)
	}
}

func TestRollSpecRepeat(t *testing.T) {
	r := RollSpec{WidthCm: 53, LengthM: 10, PatternRepeatCm: 64}
	if !r.HasPatternRepeat() {
		t.Error("expected pattern repeat")
	}
	if r.RepeatM() != 0.64 {
		t.Errorf("expected 0.64 m repeat, got %f", r.RepeatM())
	}

	r.PatternRepeatCm = 0
	if r.HasPatternRepeat() {
		t.Error("0 cm means no pattern repeat")
	}
}

func TestOpeningTotals(t *testing.T) {
	openings := []Opening{
		{ID: 1, WidthM: 1.2, HeightM: 1.5},
		{ID: 2, WidthM: 0.8, HeightM: 2.0},
	}
	if got := TotalOpeningWidth(openings); got != 2.0 {
		t.Errorf("expected total width 2.0, got %f", got)
	}
	if got := TotalOpeningArea(openings); got < 3.4-1e-9 || got > 3.4+1e-9 {
		t.Errorf("expected total area 3.4, got %f", got)
	}
	if TotalOpeningArea(nil) != 0 {
		t.Error("expected zero area for no openings")
	}
}

func TestRoomWallArea(t *testing.T) {
	room := RoomSpec{PerimeterM: 16, HeightM: 2.5}
	if room.WallArea() != 40 {
		t.Errorf("expected 40 m², got %f", room.WallArea())
	}
}
