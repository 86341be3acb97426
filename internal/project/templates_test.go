package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WallCalc/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	p := model.NewProject()
	p.Room = model.RoomSpec{PerimeterM: 14, HeightM: 2.5}
	p.AddWindow()

	store := model.NewTemplateStore()
	store.Add(model.NewRoomTemplate("Bedroom", "Standard bedroom", p))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Bedroom" {
		t.Errorf("expected 'Bedroom', got %q", loaded.Templates[0].Name)
	}
	if len(loaded.Templates[0].Windows) != 1 {
		t.Errorf("expected 1 window, got %d", len(loaded.Templates[0].Windows))
	}
	if loaded.Templates[0].Room.PerimeterM != 14 {
		t.Errorf("expected perimeter 14, got %f", loaded.Templates[0].Room.PerimeterM)
	}
}

func TestLoadTemplatesNonExistent(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestLoadTemplatesNullList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{"templates":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should not be nil after loading")
	}
}
