package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coursemap/coursemap/cmd/coursemap/app"
	"github.com/coursemap/coursemap/internal/cmd/output"
	"github.com/coursemap/coursemap/pkg/errors"
	"github.com/coursemap/coursemap/pkg/logging"
	"github.com/coursemap/coursemap/pkg/modules"
	"github.com/coursemap/coursemap/pkg/normalize"
)

var (
	flagSrc      string
	flagYear     string
	flagSemester string
	flagFormat   string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize consolidated module records",
	Long: `Normalize reads the consolidated per-module records and the lesson-type
table for one semester, reconciles them into canonical module records, and
writes the module list plus the faculty-department and venue indexes.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&flagSrc, "src", "", "source folder holding the per-semester data tree")
	normalizeCmd.Flags().StringVar(&flagYear, "year", "", `academic year, e.g. "2025/2026"`)
	normalizeCmd.Flags().StringVar(&flagSemester, "semester", "", "semester within the academic year")
	normalizeCmd.Flags().StringVar(&flagFormat, "format", "json", "output file format (json|yaml)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	config, err := app.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(config)

	logger := app.NewLogger(config)
	logging.SetDefault(logger)

	if config.SrcFolder == "" || config.AcademicYear == "" || config.Semester == "" {
		return errors.NewConfigError("normalize",
			"src folder, academic year and semester are required", nil)
	}

	format, err := output.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if format == "" || format == output.FormatSummary {
		format = output.FormatJSON
	}

	basePath := config.BasePath()

	var records []modules.RawRecord
	if err := readJSON(filepath.Join(basePath, config.ConsolidatedFile), &records); err != nil {
		return err
	}

	var lessonTypes map[string]string
	if err := readJSON(filepath.Join(config.SrcFolder, config.LessonTypesFile), &lessonTypes); err != nil {
		return err
	}

	normalizer, err := normalize.New(
		normalize.WithLessonTypes(lessonTypes),
		normalize.WithLogger(&logger),
	)
	if err != nil {
		return err
	}

	result, err := normalizer.Normalize(cmd.Context(), records)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format, config.Indent())
	outputs := []struct {
		file string
		data any
	}{
		{config.ModulesFile, result.Modules},
		{config.FacultyDepartmentsFile, result.FacultyDepartments},
		{config.VenuesFile, result.Venues},
	}
	for _, out := range outputs {
		path := filepath.Join(basePath, withFormatExt(out.file, format))
		if err := writeFile(path, out.data, formatter); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("Wrote output file")
	}

	// Run summary to stdout, format auto-detected from the terminal.
	summary := output.NewFormatter(output.DetectFormat(config.Output), config.Indent())
	return summary.Format(os.Stdout, result.Metadata.Stats)
}

// applyFlags lets explicit command flags override config and environment.
func applyFlags(config *app.Config) {
	if flagSrc != "" {
		config.SrcFolder = flagSrc
	}
	if flagYear != "" {
		config.AcademicYear = flagYear
	}
	if flagSemester != "" {
		config.Semester = flagSemester
	}
	config.Verbose = config.Verbose || flagVerbose
	config.Quiet = config.Quiet || flagQuiet
	if flagOutput != "" {
		config.Output = flagOutput
	}
}

// readJSON reads and decodes one JSON input file.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}

// writeFile encodes one output through the formatter.
func writeFile(path string, data any, formatter output.Formatter) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := formatter.Format(f, data); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// withFormatExt swaps the configured .json extension when emitting YAML.
func withFormatExt(file string, format output.Format) string {
	if format != output.FormatYAML {
		return file
	}
	ext := filepath.Ext(file)
	return file[:len(file)-len(ext)] + ".yaml"
}
