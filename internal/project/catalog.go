package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/WallCalc/internal/model"
)

// DefaultCatalogPath returns the default file path for the roll catalog.
// This is located at ~/.wallcalc/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the roll catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.RollCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the roll catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.RollCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultRollCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.RollCatalog{}, err
	}
	var cat model.RollCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.RollCatalog{}, err
	}
	if cat.Rolls == nil {
		cat.Rolls = []model.RollPreset{}
	}
	return cat, nil
}

// ExportCatalog exports the catalog to a user-specified JSON file.
func ExportCatalog(path string, cat model.RollCatalog) error {
	return SaveCatalog(path, cat)
}

// ImportCatalog imports a catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.RollCatalog) (model.RollCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.RollCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}
	return mergeCatalog(existing, imported), nil
}

func mergeCatalog(existing, imported model.RollCatalog) model.RollCatalog {
	ids := make(map[string]bool, len(existing.Rolls))
	for _, r := range existing.Rolls {
		ids[r.ID] = true
	}
	for _, r := range imported.Rolls {
		if !ids[r.ID] {
			existing.Rolls = append(existing.Rolls, r)
			ids[r.ID] = true
		}
	}
	return existing
}
