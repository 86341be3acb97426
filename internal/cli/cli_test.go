package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/piwi3910/WallCalc/internal/project"
)

type testCLI struct {
	*CLI
	out  *bytes.Buffer
	home string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	home := t.TempDir()
	out := &bytes.Buffer{}
	return &testCLI{
		CLI:  New(out, io.Discard, project.Env{Home: home, LogLevel: "error"}),
		out:  out,
		home: home,
	}
}

func (tc *testCLI) run(t *testing.T, args ...string) error {
	t.Helper()
	tc.out.Reset()
	return tc.Execute(context.Background(), args)
}

func (tc *testCLI) calcJSON(t *testing.T, args ...string) calcOutput {
	t.Helper()
	require.NoError(t, tc.run(t, append([]string{"calc", "--json"}, args...)...))
	var out calcOutput
	require.NoError(t, json.Unmarshal(tc.out.Bytes(), &out), tc.out.String())
	return out
}

func TestCalcDefaults(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.calcJSON(t)

	assert.Equal(t, 3, out.Result.StripsPerRoll)
	assert.Equal(t, 31, out.Result.TotalStripsNeeded)
	assert.Equal(t, 11, out.Result.RollsNeeded)
	assert.Equal(t, 13, out.Result.RollsWithMargin)
	assert.Nil(t, out.Cost, "no price configured")
	assert.Len(t, out.Plan, 13)
}

func TestCalcWithWindowFlag(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.calcJSON(t, "--window", "1.2x1.5")

	assert.Equal(t, 28, out.Result.TotalStripsNeeded)
	assert.Equal(t, 10, out.Result.RollsNeeded)
	assert.Equal(t, 11, out.Result.RollsWithMargin)
	require.Equal(t, 1, out.Project.Windows.Len())
	assert.Equal(t, 1, out.Project.Windows.Items[0].ID)
}

func TestCalcDefaultOpeningSizes(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.calcJSON(t, "--window", "default", "--door", "default", "--door", "0.9X2.1")

	require.Equal(t, 1, out.Project.Windows.Len())
	assert.Equal(t, 1.2, out.Project.Windows.Items[0].WidthM)
	require.Equal(t, 2, out.Project.Doors.Len())
	assert.Equal(t, 0.8, out.Project.Doors.Items[0].WidthM)
	assert.Equal(t, 2, out.Project.Doors.Items[1].ID)
}

func TestCalcExplicitFlags(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.calcJSON(t, "--width", "53", "--length", "10", "--repeat", "64", "--perimeter", "16", "--height", "2.7", "--price", "20")

	assert.InDelta(t, 3.2, out.Result.StripHeightM, 1e-9)
	assert.Equal(t, 3, out.Result.StripsPerRoll)
	require.NotNil(t, out.Cost)
	assert.InDelta(t, float64(out.Result.RollsWithMargin)*20, out.Cost.CostWithMargin, 1e-9)
}

func TestCalcDegenerateInput(t *testing.T) {
	tc := newTestCLI(t)

	err := tc.run(t, "calc", "--length", "2", "--height", "2.7")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDegenerateInput))
	assert.Contains(t, err.Error(), "shorter than one")
}

func TestCalcZeroHeight(t *testing.T) {
	tc := newTestCLI(t)

	err := tc.run(t, "calc", "--height", "0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDegenerateInput))
	assert.Contains(t, err.Error(), "room height")
}

func TestCalcBadWindowSize(t *testing.T) {
	tc := newTestCLI(t)
	assert.Error(t, tc.run(t, "calc", "--window", "wide"))
}

func TestCalcTextOutput(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run(t, "calc", "--name", "Hall", "--price", "10"))

	got := tc.out.String()
	assert.Contains(t, got, "Hall")
	assert.Contains(t, got, "Rolls to buy (+10%)")
	assert.Contains(t, got, "13")
	assert.Contains(t, got, "130.00 EUR")
}

func TestCalcSaveAndReloadProject(t *testing.T) {
	tc := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "living.toml")

	first := tc.calcJSON(t, "--name", "Living", "--perimeter", "18.4", "--height", "2.6", "--window", "1x1.4", "--door", "0.8x2", "--save", path)
	second := tc.calcJSON(t, "--project", path)

	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, "Living", second.Project.Name)
	assert.Equal(t, 1, second.Project.Doors.Len())

	cfg, err := project.LoadAppConfig(tc.Paths().Config())
	require.NoError(t, err)
	assert.Equal(t, []string{path}, cfg.RecentProjects)
}

func TestCalcImportOpenings(t *testing.T) {
	tc := newTestCLI(t)
	csv := filepath.Join(t.TempDir(), "openings.csv")
	require.NoError(t, os.WriteFile(csv, []byte("Type,Width,Height,Qty\nwindow,1.2,1.5,1\n"), 0644))

	out := tc.calcJSON(t, "--openings", csv)

	assert.Equal(t, 1, out.Project.Windows.Len())
	assert.Equal(t, 28, out.Result.TotalStripsNeeded)
}

func TestCalcImportOpeningsAllInvalid(t *testing.T) {
	tc := newTestCLI(t)
	csv := filepath.Join(t.TempDir(), "openings.csv")
	require.NoError(t, os.WriteFile(csv, []byte("Type,Width,Height\nskylight,1,1\n"), 0644))

	assert.Error(t, tc.run(t, "calc", "--openings", csv))
}

func TestCalcWritesReports(t *testing.T) {
	tc := newTestCLI(t)
	dir := t.TempDir()
	pdf := filepath.Join(dir, "room.pdf")
	xlsx := filepath.Join(dir, "room.xlsx")

	require.NoError(t, tc.run(t, "calc", "--window", "default", "--pdf", pdf, "--xlsx", xlsx))

	for _, path := range []string{pdf, xlsx} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
		assert.Contains(t, tc.out.String(), path)
	}
}

func TestCalcPreset(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, tc.run(t, "catalog", "add", "Vinyl", "--width", "70", "--length", "10.05", "--price", "30"))

	out := tc.calcJSON(t, "--preset", "Vinyl")

	assert.Equal(t, 70.0, out.Project.Roll.WidthCm)
	require.NotNil(t, out.Cost)
	assert.Equal(t, 30.0, out.Cost.PricePerRoll)

	assert.Error(t, tc.run(t, "calc", "--preset", "Missing"))
}

func TestCatalogCommands(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run(t, "catalog", "list"))
	assert.Contains(t, tc.out.String(), "Wide 0.70 x 10.05 m")

	require.NoError(t, tc.run(t, "catalog", "add", "Mine", "--width", "60"))
	assert.Error(t, tc.run(t, "catalog", "add", "Mine"), "duplicate names are rejected")
	assert.Error(t, tc.run(t, "catalog", "add", "Bad", "--width", "0"))

	exported := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, tc.run(t, "catalog", "export", exported))

	require.NoError(t, tc.run(t, "catalog", "rm", "Mine"))
	assert.Error(t, tc.run(t, "catalog", "rm", "Mine"))

	require.NoError(t, tc.run(t, "catalog", "import", exported))
	assert.Contains(t, tc.out.String(), "Imported 1 new presets")
}

func TestTemplateCommands(t *testing.T) {
	tc := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "bedroom.wallcalc")

	tc.calcJSON(t, "--perimeter", "14", "--window", "1x1.2", "--save", path, "--no-recent")

	require.NoError(t, tc.run(t, "template", "save", "Bedroom", "--project", path, "--description", "Upstairs"))
	assert.Error(t, tc.run(t, "template", "save", "Bedroom", "--project", path))
	require.NoError(t, tc.run(t, "template", "save", "Bedroom", "--project", path, "--replace"))

	require.NoError(t, tc.run(t, "template", "list"))
	assert.Contains(t, tc.out.String(), "Bedroom")
	assert.Contains(t, tc.out.String(), "Upstairs")

	out := tc.calcJSON(t, "--template", "Bedroom")
	assert.Equal(t, 14.0, out.Project.Room.PerimeterM)
	assert.Equal(t, 1, out.Project.Windows.Len())

	require.NoError(t, tc.run(t, "template", "rm", "Bedroom"))
	assert.Error(t, tc.run(t, "calc", "--template", "Bedroom"))
}

func TestConfigCommands(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run(t, "config", "init"))
	assert.FileExists(t, filepath.Join(tc.home, "config.json"))
	assert.FileExists(t, filepath.Join(tc.home, "catalog.json"))
	assert.FileExists(t, filepath.Join(tc.home, "templates.json"))

	assert.Error(t, tc.run(t, "config", "init"), "existing config needs --force")
	require.NoError(t, tc.run(t, "config", "init", "--force"))

	require.NoError(t, tc.run(t, "config", "show"))
	var cfg model.AppConfig
	require.NoError(t, json.Unmarshal(tc.out.Bytes(), &cfg))
	assert.Equal(t, model.DefaultRoll(), cfg.DefaultRoll)

	require.NoError(t, tc.run(t, "config", "path"))
	assert.Equal(t, tc.home, strings.TrimSpace(tc.out.String()))
}

func TestConfigDefaultsFeedCalc(t *testing.T) {
	tc := newTestCLI(t)
	cfg := model.DefaultAppConfig()
	cfg.DefaultRoom.PerimeterM = 10
	cfg.DefaultPricePerRoll = 15
	cfg.Currency = "GBP"
	require.NoError(t, project.SaveAppConfig(tc.Paths().Config(), cfg))

	out := tc.calcJSON(t)

	assert.Equal(t, 10.0, out.Project.Room.PerimeterM)
	require.NotNil(t, out.Cost)
	assert.Equal(t, 15.0, out.Cost.PricePerRoll)
}

func TestBackupCommands(t *testing.T) {
	tc := newTestCLI(t)
	file := filepath.Join(t.TempDir(), "backup.json")

	require.NoError(t, tc.run(t, "catalog", "add", "Keep me"))
	require.NoError(t, tc.run(t, "backup", "export", file))

	other := newTestCLI(t)
	require.NoError(t, other.run(t, "backup", "import", file))

	cat, err := project.LoadCatalog(other.Paths().Catalog())
	require.NoError(t, err)
	assert.NotNil(t, cat.FindByName("Keep me"))

	assert.Error(t, other.run(t, "backup", "import", filepath.Join(t.TempDir(), "missing.json")))
}

func TestHomeFlagOverridesEnv(t *testing.T) {
	tc := newTestCLI(t)
	other := t.TempDir()

	require.NoError(t, tc.run(t, "--home", other, "config", "init"))
	assert.FileExists(t, filepath.Join(other, "config.json"))
	assert.NoFileExists(t, filepath.Join(tc.home, "config.json"))
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    float64
		wantErr bool
	}{
		{"1.2x1.5", 1.2, 1.5, false},
		{" 0.8 X 2 ", 0.8, 2, false},
		{"1*1", 1, 1, false},
		{"default", 9, 8, false},
		{"", 9, 8, false},
		{"1.2", 0, 0, true},
		{"ax1", 0, 0, true},
		{"1xb", 0, 0, true},
		{"0x1", 0, 0, true},
	}

	for _, tt := range tests {
		w, h, err := parseSize(tt.in, 9, 8)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.w, w, tt.in)
		assert.Equal(t, tt.h, h, tt.in)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.InfoLevel, parseLevel(""))
	assert.Equal(t, log.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, parseLevel("warn"))
	assert.Equal(t, log.InfoLevel, parseLevel("chatty"))
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2025-01-01")
	defer SetVersion("dev", "none", "unknown")

	tc := newTestCLI(t)
	require.NoError(t, tc.run(t, "--version"))
	assert.Contains(t, tc.out.String(), "wallcalc 1.0.0")
	assert.Contains(t, tc.out.String(), "abc123")
}
