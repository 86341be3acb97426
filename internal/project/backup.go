package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/WallCalc/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Catalog   model.RollCatalog   `json:"catalog"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData exports config, roll catalog and room templates to a single
// JSON file at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, cat model.RollCatalog, templates model.TemplateStore) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Catalog:   cat,
		Templates: templates,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying it.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	backup := BackupData{Config: model.DefaultAppConfig()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Catalog.Rolls == nil {
		backup.Catalog.Rolls = []model.RollPreset{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.RoomTemplate{}
	}
	return backup, nil
}

// RestoreBackup writes the contents of a backup into the data files under
// paths. The existing catalog is merged with the backup's by preset ID;
// config and templates are replaced.
func RestoreBackup(paths Paths, backup BackupData) error {
	if err := SaveAppConfig(paths.Config(), backup.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}

	existing, err := LoadCatalog(paths.Catalog())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := SaveCatalog(paths.Catalog(), mergeCatalog(existing, backup.Catalog)); err != nil {
		return fmt.Errorf("failed to restore catalog: %w", err)
	}

	if err := SaveTemplates(paths.Templates(), backup.Templates); err != nil {
		return fmt.Errorf("failed to restore templates: %w", err)
	}
	return nil
}
