package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate is a reusable room setup: roll, walls and openings.
// Like a Project it never carries results.
type RoomTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Roll        RollSpec  `json:"roll"`
	Room        RoomSpec  `json:"room"`
	Windows     []Opening `json:"windows"`
	Doors       []Opening `json:"doors"`
}

// NewRoomTemplate captures the inputs of a project under a new name.
func NewRoomTemplate(name, description string, p Project) RoomTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RoomTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Roll:        p.Roll,
		Room:        p.Room,
		Windows:     p.Windows.Snapshot(),
		Doors:       p.Doors.Snapshot(),
	}
}

// ToProject creates a new Project from this template.
// Openings are re-added so the project's lists hand out their own IDs.
func (t RoomTemplate) ToProject(projectName string) Project {
	p := NewProject()
	p.Name = projectName
	p.Roll = t.Roll
	p.Room = t.Room
	for _, w := range t.Windows {
		p.Windows.Add(w.WidthM, w.HeightM)
	}
	for _, d := range t.Doors {
		p.Doors.Add(d.WidthM, d.HeightM)
	}
	return p
}

// TemplateStore holds a collection of room templates.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []RoomTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RoomTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
