package config

import "time"

// WriteMode controls how the CSV writer opens its output file.
type WriteMode string

const (
	// ModeOverwrite truncates the file each run, so re-runs are idempotent.
	ModeOverwrite WriteMode = "overwrite"
	// ModeAppend grows the file across runs. The header is written again on
	// every run, so the file accumulates header+rows blocks.
	ModeAppend WriteMode = "append"
)

// Output formats accepted by the CLI.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatBoth = "both"
)

type Config struct {
	RequestTimeout time.Duration
	// RequestDelay is the pause between successive requests. The current
	// flow issues a single request, so this is carried for future
	// multi-page crawling and not applied anywhere yet.
	RequestDelay time.Duration
	// OutputName is the output filename without extension. Empty selects
	// the default names.
	OutputName string
	Format     string
	WriteMode  WriteMode
	SaveDB     bool
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func DefaultConfig() *Config {
	return &Config{
		RequestTimeout: 10 * time.Second,
		RequestDelay:   1 * time.Second,
		Format:         FormatCSV,
		WriteMode:      ModeOverwrite,
		DBHost:         "localhost",
		DBPort:         5432,
		DBUser:         "postgres",
		DBPassword:     "postgres",
		DBName:         "booking_scraper",
		DBSSLMode:      "disable",
	}
}

const (
	defaultCSVName  = "booking_hotels.csv"
	defaultJSONName = "booking_hotels.json"
)

// CSVPath resolves the CSV output path from OutputName.
func (c *Config) CSVPath() string {
	if c.OutputName == "" {
		return defaultCSVName
	}
	return c.OutputName + ".csv"
}

// JSONPath resolves the JSON output path from OutputName.
func (c *Config) JSONPath() string {
	if c.OutputName == "" {
		return defaultJSONName
	}
	return c.OutputName + ".json"
}
