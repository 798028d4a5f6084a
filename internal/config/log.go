package config

// LogConfig selects the process logger output.
type LogConfig struct {
	Level   string
	Format  string
	Version string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:   envOrDefault(envLogLevel, defaultLogLevel),
		Format:  envOrDefault(envLogFormat, defaultLogFormat),
		Version: envOrDefault(envServiceVersion, ""),
	}
}
