package config

const (
	envOutputDir     = "OUTPUT_DIR"
	envTimestamped   = "TIMESTAMPED_COPIES"
	envRetentionDays = "RETENTION_DAYS"

	defaultOutputDir     = "data"
	defaultTimestamped   = true
	defaultRetentionDays = 14
)

// ExportConfig controls CSV output placement and history retention.
type ExportConfig struct {
	OutputDir         string
	TimestampedCopies bool
	RetentionDays     int
}

// exportFileConfig is the YAML shape of the export section. Booleans are
// pointers so an omitted key keeps the built-in default.
type exportFileConfig struct {
	OutputDir         string `yaml:"output_dir"`
	TimestampedCopies *bool  `yaml:"timestamped_copies"`
	RetentionDays     int    `yaml:"retention_days"`
}

func loadExport(file *exportFileConfig) ExportConfig {
	base := ExportConfig{
		OutputDir:         defaultOutputDir,
		TimestampedCopies: defaultTimestamped,
		RetentionDays:     defaultRetentionDays,
	}
	if file != nil {
		base.OutputDir = stringOr(file.OutputDir, base.OutputDir)
		base.TimestampedCopies = boolOr(file.TimestampedCopies, base.TimestampedCopies)
		base.RetentionDays = intOr(file.RetentionDays, base.RetentionDays)
	}
	return ExportConfig{
		OutputDir:         envOrDefault(envOutputDir, base.OutputDir),
		TimestampedCopies: boolEnvOrDefault(envTimestamped, base.TimestampedCopies),
		RetentionDays:     intEnvOrDefault(envRetentionDays, base.RetentionDays),
	}
}
