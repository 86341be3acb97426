package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/engine"
	"github.com/piwi3910/WallCalc/internal/export"
	"github.com/piwi3910/WallCalc/internal/importer"
	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/piwi3910/WallCalc/internal/project"
)

// calcOptions holds the flags of the calc command.
type calcOptions struct {
	widthCm    float64
	lengthM    float64
	repeatCm   float64
	perimeterM float64
	heightM    float64
	windows    []string
	doors      []string

	preset    string
	project   string
	template  string
	name      string
	openings  string
	plan      string
	planUnits float64

	price    float64
	json     bool
	pdf      string
	xlsx     string
	save     string
	noRecent bool
}

// calcOutput is what --json prints.
type calcOutput struct {
	Project model.Project           `json:"project"`
	Result  model.CalculationResult `json:"result"`
	Cost    *model.CostEstimate     `json:"cost,omitempty"`
	Plan    []engine.RollUsage      `json:"plan"`
}

func (c *CLI) calcCommand() *cobra.Command {
	opts := calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the strips and rolls a room needs",
		Long: `Calculate strips per roll, strips needed, rolls to buy and waste.

Inputs start from the configured defaults, a saved project (--project) or a
room template (--template). Roll presets, imported opening lists and floor
plans are applied on top, and explicit flags win over everything.`,
		Example: `  wallcalc calc --perimeter 16 --height 2.7 --window 1.2x1.5 --door 0.8x2
  wallcalc calc --preset "Wide 0.70 x 10.05 m" --repeat 64 --openings openings.csv
  wallcalc calc --project living.toml --price 24.90 --pdf living.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalc(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.widthCm, "width", 0, "roll width in cm")
	f.Float64Var(&opts.lengthM, "length", 0, "roll length in m")
	f.Float64Var(&opts.repeatCm, "repeat", 0, "pattern repeat in cm (0 = none)")
	f.Float64Var(&opts.perimeterM, "perimeter", 0, "room perimeter in m")
	f.Float64Var(&opts.heightM, "height", 0, "room height in m")
	f.StringArrayVar(&opts.windows, "window", nil, "add a window WxH in m, repeatable; bare \"default\" uses the configured size")
	f.StringArrayVar(&opts.doors, "door", nil, "add a door WxH in m, repeatable; bare \"default\" uses the configured size")

	f.StringVar(&opts.preset, "preset", "", "roll preset name or ID from the catalog")
	f.StringVar(&opts.project, "project", "", "load inputs from a project file (.wallcalc or .toml)")
	f.StringVar(&opts.template, "template", "", "start from a saved room template")
	f.StringVar(&opts.name, "name", "", "project name")
	f.StringVar(&opts.openings, "openings", "", "import windows and doors from a CSV or XLSX file")
	f.StringVar(&opts.plan, "plan", "", "take the perimeter from a DXF floor plan")
	f.Float64Var(&opts.planUnits, "plan-units", importer.DefaultDXFUnitsPerMetre, "DXF drawing units per metre")

	f.Float64Var(&opts.price, "price", 0, "price per roll")
	f.BoolVar(&opts.json, "json", false, "print the result as JSON")
	f.StringVar(&opts.pdf, "pdf", "", "write a PDF report")
	f.StringVar(&opts.xlsx, "xlsx", "", "write an Excel report")
	f.StringVar(&opts.save, "save", "", "save the inputs as a project file")
	f.BoolVar(&opts.noRecent, "no-recent", false, "do not record --save in the recent projects list")

	cmd.MarkFlagsMutuallyExclusive("project", "template")

	return cmd
}

func (c *CLI) runCalc(cmd *cobra.Command, opts calcOptions) error {
	logger := loggerFromContext(cmd.Context())
	paths := c.Paths()
	changed := cmd.Flags().Changed

	cfg, err := project.LoadAppConfig(paths.Config())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	p, err := c.baseProject(opts, cfg)
	if err != nil {
		return err
	}

	price := cfg.DefaultPricePerRoll
	presetName := opts.preset
	if presetName == "" && opts.project == "" && opts.template == "" {
		presetName = cfg.DefaultPreset
	}
	if presetName != "" {
		preset, err := findPreset(paths, presetName)
		if err != nil {
			return err
		}
		p.Roll = preset.ToRollSpec()
		if preset.PricePerRoll > 0 {
			price = preset.PricePerRoll
		}
		logger.Debug("applied roll preset", "preset", preset.Name, "width_cm", p.Roll.WidthCm, "length_m", p.Roll.LengthM)
	}

	if opts.plan != "" {
		room := importer.ImportRoomDXF(opts.plan, opts.planUnits)
		for _, w := range room.Warnings {
			logger.Warn(w, "file", opts.plan)
		}
		if len(room.Errors) > 0 {
			return fmt.Errorf("read floor plan %s: %s", opts.plan, strings.Join(room.Errors, "; "))
		}
		p.Room.PerimeterM = room.PerimeterM
		logger.Info("measured floor plan", "perimeter_m", fmt.Sprintf("%.2f", room.PerimeterM), "floor_m2", fmt.Sprintf("%.2f", room.FloorM2))
	}

	if opts.openings != "" {
		imported := importer.ImportFile(opts.openings)
		for _, w := range imported.Warnings {
			logger.Debug(w, "file", opts.openings)
		}
		for _, e := range imported.Errors {
			logger.Warn(e, "file", opts.openings)
		}
		if imported.Count() == 0 && len(imported.Errors) > 0 {
			return fmt.Errorf("import openings from %s: %s", opts.openings, imported.Errors[0])
		}
		imported.Apply(&p)
		logger.Info("imported openings", "windows", len(imported.Windows), "doors", len(imported.Doors))
	}

	if err := addOpenings(opts.windows, &p.Windows, cfg.DefaultWindowWidthM, cfg.DefaultWindowHeightM); err != nil {
		return fmt.Errorf("--window: %w", err)
	}
	if err := addOpenings(opts.doors, &p.Doors, cfg.DefaultDoorWidthM, cfg.DefaultDoorHeightM); err != nil {
		return fmt.Errorf("--door: %w", err)
	}

	if changed("width") {
		p.Roll.WidthCm = opts.widthCm
	}
	if changed("length") {
		p.Roll.LengthM = opts.lengthM
	}
	if changed("repeat") {
		p.Roll.PatternRepeatCm = opts.repeatCm
	}
	if changed("perimeter") {
		p.Room.PerimeterM = opts.perimeterM
	}
	if changed("height") {
		p.Room.HeightM = opts.heightM
	}
	if changed("price") {
		price = opts.price
	}
	if opts.name != "" {
		p.Name = opts.name
	}

	if err := model.Validate(p.Roll, p.Room, p.Windows.Items, p.Doors.Items); err != nil {
		logger.Warn("suspicious input", "err", err)
	}

	prog := newProgress(logger)
	result, err := engine.CalculateProject(p)
	if err != nil {
		return describeCalcError(err)
	}
	prog.done("calculated", "strips", result.TotalStripsNeeded, "rolls", result.RollsNeeded)

	report := export.NewReport(p, result, price, cfg.Currency)

	if opts.json {
		out := calcOutput{Project: p, Result: result, Plan: report.Plan}
		if report.HasPrice() {
			out.Cost = &report.Cost
		}
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printReport(c, report)
	}

	return c.writeOutputs(logger, opts, p, report, &cfg)
}

// baseProject picks the starting inputs: a project file, a template or the
// configured defaults.
func (c *CLI) baseProject(opts calcOptions, cfg model.AppConfig) (model.Project, error) {
	switch {
	case opts.project != "":
		p, err := project.LoadProject(opts.project)
		if err != nil {
			return model.Project{}, err
		}
		return p, nil

	case opts.template != "":
		store, err := project.LoadTemplates(c.Paths().Templates())
		if err != nil {
			return model.Project{}, fmt.Errorf("load templates: %w", err)
		}
		t := store.FindByName(opts.template)
		if t == nil {
			t = store.FindByID(opts.template)
		}
		if t == nil {
			return model.Project{}, fmt.Errorf("template %q not found", opts.template)
		}
		return t.ToProject(t.Name), nil

	default:
		return cfg.NewProject("Untitled"), nil
	}
}

func (c *CLI) writeOutputs(logger *log.Logger, opts calcOptions, p model.Project, report export.Report, cfg *model.AppConfig) error {
	// Keep stdout pure JSON when --json is set
	wrote := func(path string) {
		if opts.json {
			logger.Info("wrote file", "path", path)
		} else {
			printFile(c.Out, path)
		}
	}

	if opts.pdf != "" {
		if err := export.ExportPDF(opts.pdf, report); err != nil {
			return fmt.Errorf("write PDF: %w", err)
		}
		wrote(opts.pdf)
	}
	if opts.xlsx != "" {
		if err := export.ExportXLSX(opts.xlsx, report); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		wrote(opts.xlsx)
	}
	if opts.save != "" {
		if err := project.SaveProject(opts.save, p); err != nil {
			return err
		}
		wrote(opts.save)
		if !opts.noRecent {
			cfg.AddRecentProject(opts.save, recentLimit)
			if err := project.SaveAppConfig(c.Paths().Config(), *cfg); err != nil {
				logger.Warn("could not record recent project", "err", err)
			}
		}
	}
	return nil
}

// describeCalcError turns calculator errors into messages a user can act on.
func describeCalcError(err error) error {
	var degenerate *model.DegenerateInputError
	if errors.As(err, &degenerate) {
		if degenerate.StripHeightM <= 0 {
			return fmt.Errorf("room height must be positive: %w", err)
		}
		return fmt.Errorf("a %.2f m roll is shorter than one %.2f m strip, use a longer roll or a smaller pattern repeat: %w",
			degenerate.LengthM, degenerate.StripHeightM, err)
	}
	return fmt.Errorf("cannot calculate: %w", err)
}

func findPreset(paths project.Paths, nameOrID string) (*model.RollPreset, error) {
	cat, err := project.LoadCatalog(paths.Catalog())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if rp := cat.FindByName(nameOrID); rp != nil {
		return rp, nil
	}
	if rp := cat.FindByID(nameOrID); rp != nil {
		return rp, nil
	}
	return nil, fmt.Errorf("roll preset %q not found", nameOrID)
}

// addOpenings parses WxH values and appends them to list.
func addOpenings(values []string, list *model.OpeningList, defW, defH float64) error {
	for _, v := range values {
		w, h, err := parseSize(v, defW, defH)
		if err != nil {
			return err
		}
		list.Add(w, h)
	}
	return nil
}

// parseSize reads "1.2x1.5", "1.2X1.5" or "1.2*1.5". "default" and the empty
// string give the default size.
func parseSize(s string, defW, defH float64) (float64, float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "default" {
		return defW, defH, nil
	}
	sep := strings.IndexAny(s, "x*")
	if sep < 0 {
		return 0, 0, fmt.Errorf("size %q must look like WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s[:sep]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(s[sep+1:]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}

// printReport renders a report for the terminal.
func printReport(c *CLI, r export.Report) {
	w := c.Out
	p := r.Project
	res := r.Result

	printTitle(w, p.Name)
	repeat := "none"
	if p.Roll.HasPatternRepeat() {
		repeat = fmt.Sprintf("%.1f cm", p.Roll.PatternRepeatCm)
	}
	printDetail(w, "roll %.1f cm x %.2f m, repeat %s · room %.2f m x %.2f m · %d windows, %d doors",
		p.Roll.WidthCm, p.Roll.LengthM, repeat, p.Room.PerimeterM, p.Room.HeightM, p.Windows.Len(), p.Doors.Len())
	printNewline(w)

	printKeyValue(w, "Wall area", fmt.Sprintf("%.2f m²", res.WallAreaM2))
	printKeyValue(w, "Openings area", fmt.Sprintf("%.2f m²", res.OpeningsAreaM2))
	printKeyValue(w, "Area to cover", fmt.Sprintf("%.2f m²", res.EffectiveAreaM2))
	printKeyValue(w, "Strip length", fmt.Sprintf("%.2f m", res.StripHeightM))
	printKeyValue(w, "Strips per roll", strconv.Itoa(res.StripsPerRoll))
	printKeyValue(w, "Strips needed", strconv.Itoa(res.TotalStripsNeeded))
	printKeyValue(w, "Rolls needed", strconv.Itoa(res.RollsNeeded))
	printKeyNumber(w, "Rolls to buy (+10%)", strconv.Itoa(res.RollsWithMargin))
	printKeyValue(w, "Waste", fmt.Sprintf("%.1f%%", res.WastePercentage))

	if r.HasPrice() {
		printNewline(w)
		printKeyValue(w, "Price per roll", fmt.Sprintf("%.2f %s", r.Cost.PricePerRoll, r.Currency))
		printKeyNumber(w, "Total", fmt.Sprintf("%.2f %s", r.Cost.CostWithMargin, r.Currency))
		printKeyValue(w, "Per m² covered", fmt.Sprintf("%.2f %s", r.Cost.CostPerSquareM, r.Currency))
	}

	if res.TotalStripsNeeded == 0 {
		printNewline(w)
		printWarning(w, "Openings take up the whole perimeter, nothing to paper")
	}
}
