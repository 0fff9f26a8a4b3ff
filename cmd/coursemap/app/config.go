// Package app holds the application configuration and logger wiring for
// the coursemap CLI.
package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default file names within the source tree. They mirror the upstream
// build pipeline and can be overridden through config or environment.
const (
	DefaultConsolidatedFile       = "consolidated.json"
	DefaultModulesFile            = "modules.json"
	DefaultLessonTypesFile        = "lessonTypes.json"
	DefaultFacultyDepartmentsFile = "facultyDepartments.json"
	DefaultVenuesFile             = "venues.json"
	DefaultJSONSpace              = 2
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	Output  string

	// Config file
	ConfigFile string

	// Source tree layout
	SrcFolder    string
	AcademicYear string // e.g. "2025/2026"
	Semester     string // e.g. "1"

	// Input and output file names, plus the JSON indentation width
	ConsolidatedFile       string
	ModulesFile            string
	LessonTypesFile        string
	FacultyDepartmentsFile string
	VenuesFile             string
	JSONSpace              int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.coursemap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".coursemap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		SrcFolder:    viper.GetString("src_folder"),
		AcademicYear: viper.GetString("academic_year"),
		Semester:     viper.GetString("semester"),

		ConsolidatedFile:       viper.GetString("consolidated_file"),
		ModulesFile:            viper.GetString("modules_file"),
		LessonTypesFile:        viper.GetString("lesson_types_file"),
		FacultyDepartmentsFile: viper.GetString("faculty_departments_file"),
		VenuesFile:             viper.GetString("venues_file"),
		JSONSpace:              viper.GetInt("json_space"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Defaults
	if config.ConsolidatedFile == "" {
		config.ConsolidatedFile = DefaultConsolidatedFile
	}
	if config.ModulesFile == "" {
		config.ModulesFile = DefaultModulesFile
	}
	if config.LessonTypesFile == "" {
		config.LessonTypesFile = DefaultLessonTypesFile
	}
	if config.FacultyDepartmentsFile == "" {
		config.FacultyDepartmentsFile = DefaultFacultyDepartmentsFile
	}
	if config.VenuesFile == "" {
		config.VenuesFile = DefaultVenuesFile
	}
	if config.JSONSpace == 0 {
		config.JSONSpace = DefaultJSONSpace
	}

	return config, nil
}

// BasePath returns the per-semester directory under the source folder,
// with the academic year's slash flattened to a dash.
func (c *Config) BasePath() string {
	year := strings.ReplaceAll(c.AcademicYear, "/", "-")
	return filepath.Join(c.SrcFolder, year, c.Semester)
}

// Indent returns the JSON indentation string for the configured width.
func (c *Config) Indent() string {
	return strings.Repeat(" ", c.JSONSpace)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Overload(file)
		}
	}
}

// getEnvOrDefault returns an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
