package model

import (
	"testing"
)

func TestNewRoomTemplate(t *testing.T) {
	p := NewProject()
	p.Room = RoomSpec{PerimeterM: 12.4, HeightM: 2.5}
	p.AddWindow()
	p.AddDoor()

	tmpl := NewRoomTemplate("Bedroom", "North bedroom", p)

	if tmpl.Name != "Bedroom" {
		t.Errorf("expected name 'Bedroom', got %q", tmpl.Name)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if tmpl.Room != p.Room {
		t.Errorf("expected room %+v, got %+v", p.Room, tmpl.Room)
	}
	if len(tmpl.Windows) != 1 || len(tmpl.Doors) != 1 {
		t.Errorf("expected 1 window and 1 door, got %d and %d", len(tmpl.Windows), len(tmpl.Doors))
	}

	// Later edits to the project must not leak into the template
	p.Windows.Update(1, 3, 3)
	if tmpl.Windows[0].WidthM != DefaultWindowWidthM {
		t.Error("template shares opening storage with the project")
	}
}

func TestRoomTemplate_ToProject(t *testing.T) {
	src := NewProject()
	src.Roll.PatternRepeatCm = 64
	w := src.AddWindow()
	src.AddWindow()
	src.Windows.Remove(w.ID)

	tmpl := NewRoomTemplate("Test", "desc", src)
	proj := tmpl.ToProject("My Room")

	if proj.Name != "My Room" {
		t.Errorf("expected project name 'My Room', got %q", proj.Name)
	}
	if proj.Roll.PatternRepeatCm != 64 {
		t.Errorf("expected repeat 64, got %f", proj.Roll.PatternRepeatCm)
	}
	if proj.Windows.Len() != 1 {
		t.Fatalf("expected 1 window, got %d", proj.Windows.Len())
	}
	// The project numbers its openings from 1 again
	if proj.Windows.Items[0].ID != 1 {
		t.Errorf("expected fresh ID 1, got %d", proj.Windows.Items[0].ID)
	}
	if next := proj.Windows.Add(1, 1); next.ID != 2 {
		t.Errorf("expected next ID 2, got %d", next.ID)
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()

	tmpl1 := NewRoomTemplate("T1", "", NewProject())
	tmpl2 := NewRoomTemplate("T2", "", NewProject())

	store.Add(tmpl1)
	store.Add(tmpl2)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}
	if found := store.FindByID(tmpl1.ID); found == nil || found.Name != "T1" {
		t.Errorf("expected to find T1 by ID, got %+v", found)
	}
	if found := store.FindByName("T2"); found == nil || found.ID != tmpl2.ID {
		t.Errorf("expected to find T2 by name, got %+v", found)
	}
	if store.FindByID("nonexistent") != nil {
		t.Error("expected nil for nonexistent ID")
	}

	if !store.Remove(tmpl1.ID) {
		t.Error("expected Remove to return true")
	}
	if store.Remove("nonexistent") {
		t.Error("expected Remove to return false for nonexistent ID")
	}

	names := store.Names()
	if len(names) != 1 || names[0] != "T2" {
		t.Errorf("expected [T2], got %v", names)
	}
}
