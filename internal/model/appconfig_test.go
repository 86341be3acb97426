package model

import "testing"

func TestDefaultAppConfigMatchesDefaults(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.DefaultRoll != DefaultRoll() {
		t.Errorf("roll mismatch: config=%+v defaults=%+v", cfg.DefaultRoll, DefaultRoll())
	}
	if cfg.DefaultRoom != DefaultRoom() {
		t.Errorf("room mismatch: config=%+v defaults=%+v", cfg.DefaultRoom, DefaultRoom())
	}
	if cfg.DefaultWindowWidthM != DefaultWindowWidthM || cfg.DefaultDoorHeightM != DefaultDoorHeightM {
		t.Error("opening defaults do not match the built-in sizes")
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestApplyToProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultRoll.WidthCm = 106
	cfg.DefaultRoom.HeightM = 3.0

	p := NewProject()
	p.AddWindow()
	cfg.ApplyToProject(&p)

	if p.Roll.WidthCm != 106 {
		t.Errorf("expected roll width 106, got %f", p.Roll.WidthCm)
	}
	if p.Room.HeightM != 3.0 {
		t.Errorf("expected room height 3.0, got %f", p.Room.HeightM)
	}
	if p.Windows.Len() != 1 {
		t.Error("ApplyToProject should leave openings alone")
	}
}

func TestConfigNewProjectAndOpenings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultWindowWidthM = 1.5
	cfg.DefaultDoorHeightM = 2.1

	p := cfg.NewProject("Bedroom")
	if p.Name != "Bedroom" {
		t.Errorf("expected name Bedroom, got %q", p.Name)
	}

	w := cfg.AddWindow(&p)
	d := cfg.AddDoor(&p)
	if w.WidthM != 1.5 {
		t.Errorf("expected configured window width 1.5, got %f", w.WidthM)
	}
	if d.HeightM != 2.1 {
		t.Errorf("expected configured door height 2.1, got %f", d.HeightM)
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("a.wallcalc", 3)
	cfg.AddRecentProject("b.wallcalc", 3)
	cfg.AddRecentProject("a.wallcalc", 3)
	cfg.AddRecentProject("c.wallcalc", 3)
	cfg.AddRecentProject("d.wallcalc", 3)

	want := []string{"d.wallcalc", "c.wallcalc", "a.wallcalc"}
	if len(cfg.RecentProjects) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), cfg.RecentProjects)
	}
	for i := range want {
		if cfg.RecentProjects[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], cfg.RecentProjects[i])
		}
	}
}
