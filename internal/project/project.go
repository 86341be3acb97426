// Package project persists calculator inputs: application config, the roll
// catalog, room templates and project files. Calculation results are never
// written; they are recomputed from the inputs whenever needed.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/WallCalc/internal/model"
)

// Project file extensions. Anything that is not TOML is read as JSON.
const (
	ExtProject = ".wallcalc"
	ExtTOML    = ".toml"
)

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ExtTOML)
}

// SaveProject writes a project's inputs to path, as TOML when the path ends
// in .toml and as indented JSON otherwise.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return fmt.Errorf("failed to encode project: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode project: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project file written by SaveProject or by hand.
// Values missing from the file fall back to the built-in defaults, and the
// opening lists are repaired so new openings get unused IDs.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	p := model.NewProject()
	p.Name = ""
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &p); err != nil {
			return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
		}
	} else if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}

	p.Windows.Normalize()
	p.Doors.Normalize()
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
