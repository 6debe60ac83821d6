package config

const (
	defaultDocsPerFile       = 1000
	defaultFilesPerDir       = 100
	defaultFilePrefix        = "wiki_"
	defaultMinDocLength      = 200
	defaultMinHiraganaRatio  = 0.10
	defaultMaxLineRepetition = 0.30
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			DocsPerFile: defaultDocsPerFile,
			FilesPerDir: defaultFilesPerDir,
			FilePrefix:  defaultFilePrefix,
			Manifest:    true,
		},
		Filter: Filter{
			MinDocLength:      defaultMinDocLength,
			MinHiraganaRatio:  defaultMinHiraganaRatio,
			MaxLineRepetition: defaultMaxLineRepetition,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
